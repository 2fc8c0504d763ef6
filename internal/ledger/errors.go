package ledger

import "errors"

// ErrLedgerUnavailable wraps any failure to open or write the ledger
// database. This degrades to logging-only in the CLI and is
// never fatal to build; match continues the sweep without recording
// its points.
var ErrLedgerUnavailable = errors.New("ledger: unavailable")
