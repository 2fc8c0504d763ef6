package engine

import "fmt"

// Params bundles every knob of a coincidence-lattice search. Angles are
// expressed in degrees, matching the CLI surface; Run converts to
// radians internally.
type Params struct {
	Nmin, Nmax int64
	Tolerance  float64

	// Angles, if non-empty, is the explicit set of angles (degrees) to
	// search. Otherwise the angle set is AngleLimits[0], +AngleStep, ...,
	// AngleLimits[1] inclusive.
	Angles      []float64
	AngleLimits [2]float64
	AngleStep   float64

	Weight   float64
	Distance float64

	Symprec        float64
	AngleTolerance float64
	ToPrimitive    bool
	NoIdealize     bool

	Workers int // <= 0 selects the runtime default
}

// validate checks the parameter ranges Run itself is responsible for;
// coincidence.Search and supercell.BuildInterfaces re-validate their own
// narrower slice of these on every call.
func (p Params) validate() error {
	if p.Nmax < p.Nmin {
		return fmt.Errorf("engine: Nmax < Nmin: %w", ErrInvalidParameter)
	}
	if p.Tolerance <= 0 {
		return fmt.Errorf("engine: non-positive tolerance: %w", ErrInvalidParameter)
	}
	if p.Weight < 0 || p.Weight > 1 {
		return fmt.Errorf("engine: weight outside [0,1]: %w", ErrInvalidParameter)
	}
	if p.Distance <= 0 {
		return fmt.Errorf("engine: non-positive distance: %w", ErrInvalidParameter)
	}
	if len(p.Angles) == 0 && p.AngleStep <= 0 {
		return fmt.Errorf("engine: empty angle set: %w", ErrInvalidParameter)
	}

	return nil
}

// resolveAngles resolves the angle sweep: the explicit Angles list wins when
// non-empty, otherwise the inclusive AngleLimits/AngleStep sweep.
func (p Params) resolveAngles() []float64 {
	if len(p.Angles) > 0 {
		return p.Angles
	}

	lo, hi, step := p.AngleLimits[0], p.AngleLimits[1], p.AngleStep
	if step <= 0 {
		return nil
	}

	var out []float64
	for a := lo; a <= hi+1e-9; a += step {
		out = append(out, a)
	}

	return out
}
