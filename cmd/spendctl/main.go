package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"spendwise-backend/internal/config"
	"spendwise-backend/internal/log"
)

// appConfig is loaded once by the root command before any subcommand runs.
var appConfig *config.Config

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "spendctl",
		Short: "Operational tooling for the Spendwise backend",
		Long: `spendctl runs maintenance tasks against the configured Spendwise database:
schema migrations, ad-hoc categorization and per-user financial scores.

Configuration is read from the same environment variables (and .env file) as the server.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}

	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(migrateCmd())
	root.AddCommand(categorizeCmd())
	root.AddCommand(scoreCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if override, _ := cmd.Flags().GetString("log-level"); override != "" {
		level = override
	}
	slog.SetDefault(log.New(log.Config{Level: level, Format: cfg.Log.Format, Output: cmd.ErrOrStderr()}))

	appConfig = cfg
	return nil
}
