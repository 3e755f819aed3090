package main

import (
	"github.com/spf13/cobra"

	"github.com/ecommit/ecommit/internal/xdg"
)

// Global flags available to all subcommands.
var configFile string

// resolveConfigPath prefers the --config flag, then the XDG location.
// Empty means no config file: flag defaults apply.
func resolveConfigPath() string {
	if configFile != "" {
		return configFile
	}
	return xdg.DefaultConfigPath()
}

// NewRootCmd creates the root command for the eCommit CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ecommit",
		Short: "eCommit - session-authenticated feed service",
		Long: `eCommit serves account registration, login, and cookie-based
session authentication in front of the feed pages.`,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
