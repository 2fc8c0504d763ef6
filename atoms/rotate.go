package atoms

import "math"

// RotateAtomsAroundZ rotates both the cell and every Cartesian position
// by thetaRad about the z-axis. The z component of every vector is left
// unchanged, matching a rigid rotation of a 2D layer that is free to sit
// anywhere along z.
func RotateAtomsAroundZ(a Atoms, thetaRad float64) Atoms {
	out := a.clone()
	sin, cos := math.Sincos(thetaRad)

	for i := 0; i < 3; i++ {
		x, y := out.Cell[i][0], out.Cell[i][1]
		out.Cell[i][0] = x*cos - y*sin
		out.Cell[i][1] = x*sin + y*cos
	}
	for i, p := range out.Positions {
		out.Positions[i] = Vec3{
			p[0]*cos - p[1]*sin,
			p[0]*sin + p[1]*cos,
			p[2],
		}
	}

	return out
}
