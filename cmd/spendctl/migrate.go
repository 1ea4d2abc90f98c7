package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"spendwise-backend/internal/database"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Open the configured database (DB_DRIVER) and bring its schema up to date.
The server applies the same migrations on boot; this command is for running them ahead of a deploy.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	st, err := database.Open(cmd.Context(), appConfig, slog.Default())
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer func() { _ = st.Close() }()

	fmt.Fprintf(cmd.OutOrStdout(), "database schema is up to date (%s)\n", appConfig.Database.Driver)
	return nil
}
