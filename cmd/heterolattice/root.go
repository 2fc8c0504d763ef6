package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/heterolattice/internal/logging"
)

var (
	configPath string
	presetName string
	ledgerPath string
	verbosity  int
)

var rootCmd = &cobra.Command{
	Use:   "heterolattice",
	Short: "Build and search coincidence-lattice heterostructure interfaces",
	Long: `heterolattice enumerates coincidence superlattices between two
crystalline atomic layers: integer supercell matrices and a rotation
angle for which the rotated upper layer's lattice vectors coincide with
the lower layer's, within a tolerance. Each accepted pair is stacked,
standardized, and returned as a deduplicated catalogue of candidate
interfaces.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "", "named sweep preset (graphene-graphene, hbn-graphene, tmd-tmd)")
	rootCmd.PersistentFlags().StringVar(&ledgerPath, "ledger", "", "path to the match sweep ledger (sqlite); defaults to ./heterolattice.db")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbosity", "v", "increase logging verbosity (repeatable)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(matchCmd)
}

func newLogger() (*zap.SugaredLogger, error) {
	return logging.New(verbosity)
}
