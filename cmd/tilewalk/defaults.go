package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilewalk/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the default config YAML",
	Long: `Prints the built-in configuration so it can be saved and edited.

Examples:
  tilewalk defaults > ~/.tilewalk/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
