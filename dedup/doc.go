// Package dedup collapses supercell.Interface candidates that are
// crystallographically equivalent — same space group, same atom count,
// same area within a fixed epsilon — down to one deterministic
// representative per equivalence class.
package dedup
