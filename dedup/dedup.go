package dedup

import (
	"sort"

	"github.com/katalvlaran/heterolattice/supercell"
)

// classKey identifies an equivalence class: same space group, same atom
// count, and the same area once quantized to supercell.AreaEpsilon.
type classKey struct {
	spaceGroup    int
	atomCount     int
	quantizedArea float64
}

// Dedup collapses ifaces down to one representative per equivalence
// class: two interfaces are equivalent iff they share a space
// group, an atom count, and an area that rounds to the same point of the
// supercell.AreaEpsilon grid (supercell.QuantizeArea).
// Within a class the representative is the one with the smallest atom
// count, ties broken by smallest area, then by smallest angle.
//
// The returned slice is sorted by (spaceGroup, atomCount, area), the
// same key order the orchestrator's final sort uses, so callers that
// only need dedup do not need a second sort pass.
func Dedup(ifaces []supercell.Interface) []supercell.Interface {
	buckets := make(map[classKey][]supercell.Interface, len(ifaces))
	for _, iface := range ifaces {
		key := classKey{
			spaceGroup:    iface.SpaceGroup,
			atomCount:     iface.AtomCount,
			quantizedArea: supercell.QuantizeArea(iface.Area),
		}
		buckets[key] = append(buckets[key], iface)
	}

	reps := make([]supercell.Interface, 0, len(buckets))
	for _, group := range buckets {
		reps = append(reps, representative(group))
	}

	sort.Slice(reps, func(i, j int) bool {
		return byOutputOrder(reps[i], reps[j])
	})

	return reps
}

// representative picks the deterministic winner of one equivalence
// class: smallest atom count, then smallest area, then smallest angle.
func representative(group []supercell.Interface) supercell.Interface {
	best := group[0]
	for _, cand := range group[1:] {
		if byTieBreak(cand, best) {
			best = cand
		}
	}

	return best
}

func byTieBreak(a, b supercell.Interface) bool {
	if a.AtomCount != b.AtomCount {
		return a.AtomCount < b.AtomCount
	}
	if a.Area != b.Area {
		return a.Area < b.Area
	}

	return a.ThetaRad < b.ThetaRad
}

// byOutputOrder implements the (space_group, atom_count, area) ordering
// the orchestrator requires of its final result.
func byOutputOrder(a, b supercell.Interface) bool {
	if a.SpaceGroup != b.SpaceGroup {
		return a.SpaceGroup < b.SpaceGroup
	}
	if a.AtomCount != b.AtomCount {
		return a.AtomCount < b.AtomCount
	}

	return a.Area < b.Area
}
