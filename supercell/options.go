package supercell

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/heterolattice/symmetry"
)

// buildConfig aggregates the knobs shared by BuildInterfaces, resolved
// once per call from functional options.
type buildConfig struct {
	logger        *zap.SugaredLogger
	workers       int
	standardizer  symmetry.Standardizer
	symprec       float64
	angleTol      float64
	toPrimitive   bool
	noIdealize    bool
}

// BuildOption configures BuildInterfaces.
type BuildOption func(*buildConfig)

// WithLogger attaches a structured logger.
func WithLogger(l *zap.SugaredLogger) BuildOption {
	return func(c *buildConfig) { c.logger = l }
}

// WithWorkers overrides the worker-pool width used to partition the
// pair batch. A value <= 0 restores the default (GOMAXPROCS).
func WithWorkers(n int) BuildOption {
	return func(c *buildConfig) { c.workers = n }
}

// WithStandardizer injects the Standardizer used to assign space groups.
// If omitted, BuildInterfaces uses symmetry.LatticeFallback.
func WithStandardizer(s symmetry.Standardizer) BuildOption {
	return func(c *buildConfig) { c.standardizer = s }
}

// WithSymprec overrides the symmetry-detection length tolerance passed
// to the Standardizer (default 1e-3 angstrom).
func WithSymprec(v float64) BuildOption {
	return func(c *buildConfig) { c.symprec = v }
}

// WithAngleTolerance overrides the symmetry-detection angle tolerance,
// in degrees, passed to the Standardizer (default 1.0).
func WithAngleTolerance(v float64) BuildOption {
	return func(c *buildConfig) { c.angleTol = v }
}

// WithToPrimitive requests the Standardizer reduce to a primitive cell
// before reporting a space group.
func WithToPrimitive(v bool) BuildOption {
	return func(c *buildConfig) { c.toPrimitive = v }
}

// WithNoIdealize requests the Standardizer skip cell idealization.
func WithNoIdealize(v bool) BuildOption {
	return func(c *buildConfig) { c.noIdealize = v }
}

func newBuildConfig(opts ...BuildOption) buildConfig {
	cfg := buildConfig{
		logger:       zap.NewNop().Sugar(),
		standardizer: symmetry.LatticeFallback{},
		symprec:      1e-3,
		angleTol:     1.0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
