// Package cli implements the adminctl command tree
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var cfg *Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "adminctl",
		Short: "Operator tool for the PawHaven shelter database",
		Long: `adminctl manages the PawHaven shelter database directly.

It creates admin accounts with properly hashed passwords and inspects
the login audit history, without going through the web interface.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "Postgres connection URL (env: DATABASE_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	rootCmd.AddCommand(newCreateAdminCmd())
	rootCmd.AddCommand(newLoginsCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
