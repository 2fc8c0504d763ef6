package main

import (
	"context"
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/heterolattice/engine"
	"github.com/katalvlaran/heterolattice/internal/config"
	"github.com/katalvlaran/heterolattice/supercell"
)

var buildFlags struct {
	nmax           int64
	nmin           int64
	angleStepsize  float64
	angleLimits    []float64
	angles         []float64
	tolerance      float64
	weight         float64
	distance       float64
	noIdealize     bool
	symprec        float64
	angleTolerance float64
}

var buildCmd = &cobra.Command{
	Use:   "build <bottom.xyz> <top.xyz>",
	Short: "Search for coincidence-lattice interfaces and print a summary table",
	Args:  cobra.ExactArgs(2),
	RunE:  runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.Int64VarP(&buildFlags.nmax, "Nmax", "N", 10, "maximum supercell coefficient")
	f.Int64Var(&buildFlags.nmin, "Nmin", 0, "minimum supercell coefficient")
	f.Float64Var(&buildFlags.angleStepsize, "angle_stepsize", 1, "angle sweep step, degrees")
	f.Float64SliceVar(&buildFlags.angleLimits, "angle_limits", []float64{0, 90}, "angle sweep bounds, degrees")
	f.Float64SliceVarP(&buildFlags.angles, "angle", "a", nil, "explicit angle, degrees (repeatable)")
	f.Float64VarP(&buildFlags.tolerance, "tolerance", "t", 0.1, "coincidence distance tolerance, angstrom")
	f.Float64VarP(&buildFlags.weight, "weight", "w", 0.5, "interface cell blend weight in [0,1]")
	f.Float64VarP(&buildFlags.distance, "distance", "d", 4, "interlayer stacking distance, angstrom")
	f.BoolVar(&buildFlags.noIdealize, "no_idealize", false, "skip cell idealization during standardization")
	f.Float64Var(&buildFlags.symprec, "symprec", 1e-5, "symmetry-detection length tolerance, angstrom")
	f.Float64Var(&buildFlags.angleTolerance, "angle_tolerance", 5, "symmetry-detection angle tolerance, degrees")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	bottom, err := readStructure(args[0])
	if err != nil {
		return fmt.Errorf("build: bottom layer: %w", err)
	}
	top, err := readStructure(args[1])
	if err != nil {
		return fmt.Errorf("build: top layer: %w", err)
	}

	params := paramsFromConfig(cfg)

	ifaces, err := engine.Run(context.Background(), bottom, top, params, engine.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	printSummary(cmd, ifaces)

	return nil
}

// resolveConfig layers defaults -> TOML file -> preset -> explicitly-set
// build flags, each layer overriding the one before it.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	if presetName != "" {
		p, err := config.LoadPreset(presetName)
		if err != nil {
			return config.Config{}, err
		}
		cfg = config.ApplyPreset(cfg, p)
	}

	flags := cmd.Flags()
	if flags.Changed("Nmax") {
		cfg.Nmax = buildFlags.nmax
	}
	if flags.Changed("Nmin") {
		cfg.Nmin = buildFlags.nmin
	}
	if flags.Changed("angle_stepsize") {
		cfg.AngleStepsize = buildFlags.angleStepsize
	}
	if flags.Changed("angle_limits") && len(buildFlags.angleLimits) == 2 {
		cfg.AngleLimits = [2]float64{buildFlags.angleLimits[0], buildFlags.angleLimits[1]}
	}
	if flags.Changed("angle") {
		cfg.Angles = buildFlags.angles
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance = buildFlags.tolerance
	}
	if flags.Changed("weight") {
		cfg.Weight = buildFlags.weight
	}
	if flags.Changed("distance") {
		cfg.Distance = buildFlags.distance
	}
	if flags.Changed("no_idealize") {
		cfg.NoIdealize = buildFlags.noIdealize
	}
	if flags.Changed("symprec") {
		cfg.Symprec = buildFlags.symprec
	}
	if flags.Changed("angle_tolerance") {
		cfg.AngleTolerance = buildFlags.angleTolerance
	}
	cfg.Verbosity = verbosity

	return cfg, nil
}

func paramsFromConfig(cfg config.Config) engine.Params {
	return engine.Params{
		Nmin:           cfg.Nmin,
		Nmax:           cfg.Nmax,
		Tolerance:      cfg.Tolerance,
		Angles:         cfg.Angles,
		AngleLimits:    cfg.AngleLimits,
		AngleStep:      cfg.AngleStepsize,
		Weight:         cfg.Weight,
		Distance:       cfg.Distance,
		Symprec:        cfg.Symprec,
		AngleTolerance: cfg.AngleTolerance,
		NoIdealize:     cfg.NoIdealize,
	}
}

// printSummary writes a fixed-width table of the admitted interfaces to
// cmd's stdout, one row per candidate, using dustin/go-humanize to
// render the atom count the way a human reads it.
func printSummary(cmd *cobra.Command, ifaces []supercell.Interface) {
	out := cmd.OutOrStdout()

	if len(ifaces) == 0 {
		fmt.Fprintln(out, "no interfaces found")

		return
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSPACE GROUP\tATOMS\tAREA (A^2)\tTHETA (deg)")
	for _, iface := range ifaces {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.4f\t%.3f\n",
			iface.ID.String(), iface.SpaceGroup, humanize.Comma(int64(iface.AtomCount)), iface.Area, iface.ThetaRad*180/math.Pi)
	}
	tw.Flush() //nolint:errcheck

	fmt.Fprintf(out, "%s interfaces found\n", humanize.Comma(int64(len(ifaces))))
}
