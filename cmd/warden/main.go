package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/warden-inc/warden/internal/interfaces/cli/keygen"
	"github.com/warden-inc/warden/internal/interfaces/cli/migrate"
	"github.com/warden-inc/warden/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "warden",
		Short: "Warden - session-bound bearer authentication",
		Long:  `Warden issues RS256 tokens, keeps one revocable session per account and guards routes by role.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		keygen.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
