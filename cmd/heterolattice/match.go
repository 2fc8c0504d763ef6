package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heterolattice/atoms"
	"github.com/katalvlaran/heterolattice/engine"
	"github.com/katalvlaran/heterolattice/internal/config"
	"github.com/katalvlaran/heterolattice/internal/ledger"
	"github.com/katalvlaran/heterolattice/internal/xyzio"
)

var matchFlags struct {
	patience        int
	widenStep       int64
	toleranceGrowth float64
}

var matchCmd = &cobra.Command{
	Use:   "match <bottom.xyz> <top.xyz>",
	Short: "Sweep Nmax and tolerance until the interface count stops improving",
	Long: `match runs the core search repeatedly over a widening (Nmin, Nmax)
window and a loosening tolerance, recording every point to the sweep
ledger, until interfaces_found has not improved for a configurable
number of consecutive widenings (default 3). It prints the best sweep
point found instead of running forever.`,
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

func init() {
	f := matchCmd.Flags()
	f.IntVar(&matchFlags.patience, "patience", 3, "consecutive no-improvement widenings before stopping")
	f.Int64Var(&matchFlags.widenStep, "widen-step", 2, "Nmax increment applied per widening")
	f.Float64Var(&matchFlags.toleranceGrowth, "tolerance-growth", 1.5, "multiplicative tolerance increase applied per widening")
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if presetName != "" {
		p, err := config.LoadPreset(presetName)
		if err != nil {
			return err
		}
		cfg = config.ApplyPreset(cfg, p)
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	bottom, err := readStructure(args[0])
	if err != nil {
		return fmt.Errorf("match: bottom layer: %w", err)
	}
	top, err := readStructure(args[1])
	if err != nil {
		return fmt.Errorf("match: top layer: %w", err)
	}

	path := ledgerPath
	if path == "" {
		path = "./heterolattice.db"
	}
	l, err := ledger.Open(path)
	if err != nil {
		logger.Warnw("ledger unavailable, continuing without convergence history", "error", err)
		l = nil
	} else {
		defer l.Close()
	}

	runID := uuid.NewString()
	ctx := context.Background()

	nmax := cfg.Nmax
	tol := cfg.Tolerance
	best := 0
	bestPoint := ledger.SweepPoint{RunID: runID}
	noImprovement := 0
	windows := 0

	for noImprovement < matchFlags.patience {
		windows++
		params := paramsFromConfig(cfg)
		params.Nmax = nmax
		params.Tolerance = tol

		t0 := time.Now()
		ifaces, err := engine.Run(ctx, bottom, top, params, engine.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("match: %w", err)
		}
		elapsed := time.Since(t0).Seconds()

		point := ledger.SweepPoint{
			RunID:           runID,
			Tolerance:       tol,
			Nmin:            cfg.Nmin,
			Nmax:            nmax,
			InterfacesFound: len(ifaces),
			ElapsedSeconds:  elapsed,
		}
		if l != nil {
			if err := l.Record(ctx, point); err != nil {
				logger.Warnw("ledger record failed", "error", err)
			}
		}

		if len(ifaces) > best {
			best = len(ifaces)
			bestPoint = point
			noImprovement = 0
		} else {
			noImprovement++
		}

		nmax += matchFlags.widenStep
		tol *= matchFlags.toleranceGrowth
	}

	fmt.Fprintf(cmd.OutOrStdout(), "converged after %d windows: best window Nmin=%d Nmax=%d tolerance=%.6f found %d interfaces in %.3fs\n",
		windows, bestPoint.Nmin, bestPoint.Nmax, bestPoint.Tolerance, bestPoint.InterfacesFound, bestPoint.ElapsedSeconds)

	return nil
}

func readStructure(path string) (atoms.Atoms, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return atoms.Atoms{}, err
	}
	defer f.Close()

	return xyzio.Read(f)
}
