package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/heterolattice/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or generate heterolattice configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write the compiled-in defaults as a starting TOML config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Create(args[0])
		if err != nil {
			return fmt.Errorf("config init: %w", err)
		}
		defer f.Close()

		return config.WriteDefault(f, config.Defaults())
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
