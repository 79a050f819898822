// Package config provides the "refcat config" command.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/klytics/refcat/internal/config"
)

// NewCommand returns the config command.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Prints the configuration refcat is running with, after merging
~/.refcat/config.yaml, REFCAT_* environment variables, and defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonFlag, _ := cmd.Flags().GetBool("json")

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("could not load config: %w", err)
			}

			if jsonFlag {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			fmt.Printf("output.dir:   %s\n", cfg.Output.Dir)
			fmt.Printf("output.color: %t\n", cfg.Output.Color)
			if cfg.Style.File != "" {
				fmt.Printf("style.file:   %s\n", cfg.Style.File)
			}
			return nil
		},
	}
}
