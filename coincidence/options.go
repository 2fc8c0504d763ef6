package coincidence

import "go.uber.org/zap"

// searchConfig aggregates the knobs shared by Search and ReducePairs.
// It is resolved once per call from functional options; there is no
// package-level global.
type searchConfig struct {
	logger  *zap.SugaredLogger
	workers int // <= 0 selects runtime.GOMAXPROCS(0)
}

// SearchOption configures Search and ReducePairs.
type SearchOption func(*searchConfig)

// WithLogger attaches a structured logger. Search/ReducePairs log the
// accepted-coincidence and accepted-pair counts at debug level; nothing
// is logged if the logger is omitted (a no-op logger is used by default).
func WithLogger(l *zap.SugaredLogger) SearchOption {
	return func(c *searchConfig) { c.logger = l }
}

// WithWorkers overrides the worker-pool width used to partition the
// outer loop. A value <= 0 restores the default (GOMAXPROCS).
func WithWorkers(n int) SearchOption {
	return func(c *searchConfig) { c.workers = n }
}

func newSearchConfig(opts ...SearchOption) searchConfig {
	cfg := searchConfig{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
