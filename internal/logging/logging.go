// Package logging constructs the single zap.Logger used across the
// heterolattice CLI. There is no package-level logger: every component
// that logs receives a *zap.SugaredLogger explicitly, via WithLogger
// functional options, the way the core packages already expect.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger whose level is derived from a counted verbosity
// flag: 0 is warn, 1 is info, 2 or more is debug. Output goes to stderr
// in a human console encoding, matching the CLI's own stdout summary
// tables.
func New(verbosity int) (*zap.SugaredLogger, error) {
	level := levelFor(verbosity)

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging.New: %w", err)
	}

	return logger.Sugar(), nil
}

func levelFor(verbosity int) zapcore.Level {
	switch {
	case verbosity >= 2:
		return zapcore.DebugLevel
	case verbosity == 1:
		return zapcore.InfoLevel
	default:
		return zapcore.WarnLevel
	}
}
