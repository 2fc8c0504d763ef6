package supercell

import (
	"fmt"

	"github.com/google/uuid"
)

// idNamespace roots every Interface ID in a fixed, private UUID
// namespace so IDs stay stable across process restarts and machines.
var idNamespace = uuid.MustParse("6f2a2f0e-6e4f-4f2f-9f8d-8f2e6b8f2c11")

// computeID derives a content-based UUIDv5 from the interface's dedup
// key plus theta, so interfaces with the same dedup key and the same
// theta get the same ID regardless of discovery order. Equivalent
// interfaces found at different angles get different IDs.
func computeID(spaceGroup, atomCount int, area, thetaRad float64) uuid.UUID {
	name := fmt.Sprintf("sg=%d;atoms=%d;area=%.6f;theta=%.9f", spaceGroup, atomCount, QuantizeArea(area), thetaRad)

	return uuid.NewSHA1(idNamespace, []byte(name))
}
