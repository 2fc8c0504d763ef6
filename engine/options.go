package engine

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/heterolattice/symmetry"
)

// runConfig aggregates the knobs Run resolves once from functional
// options before dispatching to coincidence and supercell.
type runConfig struct {
	logger       *zap.SugaredLogger
	standardizer symmetry.Standardizer
}

// RunOption configures Run.
type RunOption func(*runConfig)

// WithLogger attaches a structured logger threaded down into
// coincidence.Search and supercell.BuildInterfaces.
func WithLogger(l *zap.SugaredLogger) RunOption {
	return func(c *runConfig) { c.logger = l }
}

// WithStandardizer injects the Standardizer used to assign space groups.
// If omitted, Run uses symmetry.LatticeFallback.
func WithStandardizer(s symmetry.Standardizer) RunOption {
	return func(c *runConfig) { c.standardizer = s }
}

func newRunConfig(opts ...RunOption) runConfig {
	cfg := runConfig{
		logger:       zap.NewNop().Sugar(),
		standardizer: symmetry.LatticeFallback{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
