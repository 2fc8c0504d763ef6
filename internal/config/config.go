package config

// Config bundles every knob of the build/match CLI surface, in the
// units the flags themselves use (angles in degrees).
type Config struct {
	Nmin           int64     `mapstructure:"nmin"`
	Nmax           int64     `mapstructure:"nmax"`
	AngleStepsize  float64   `mapstructure:"angle_stepsize"`
	AngleLimits    [2]float64 `mapstructure:"angle_limits"`
	Angles         []float64 `mapstructure:"angles"`
	Tolerance      float64   `mapstructure:"tolerance"`
	Weight         float64   `mapstructure:"weight"`
	Distance       float64   `mapstructure:"distance"`
	NoIdealize     bool      `mapstructure:"no_idealize"`
	Symprec        float64   `mapstructure:"symprec"`
	AngleTolerance float64   `mapstructure:"angle_tolerance"`
	Verbosity      int       `mapstructure:"verbosity"`
}

// Defaults returns the compiled-in defaults.
func Defaults() Config {
	return Config{
		Nmin:           0,
		Nmax:           10,
		AngleStepsize:  1,
		AngleLimits:    [2]float64{0, 90},
		Tolerance:      0.1,
		Weight:         0.5,
		Distance:       4,
		Symprec:        1e-5,
		AngleTolerance: 5,
	}
}
