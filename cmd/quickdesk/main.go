package main

import (
	"os"

	"github.com/spf13/cobra"

	"quickdesk/internal/interfaces/cli/migrate"
	"quickdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quickdesk",
		Short: "QuickDesk - a help desk ticketing service",
		Long:  `QuickDesk is a help desk ticketing service with a built-in HTTP server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
