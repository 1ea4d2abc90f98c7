package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"spendwise-backend/internal/ai"
	"spendwise-backend/internal/categorizer"
)

func categorizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorize <description>",
		Short: "Print the category an expense description would receive",
		Example: `  spendctl categorize "Paid for zomato order"
  spendctl categorize --offline "monthly pg rent"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCategorize,
	}
	cmd.Flags().Bool("offline", false, "use keyword matching only, never call the model")
	return cmd
}

func runCategorize(cmd *cobra.Command, args []string) error {
	description := strings.Join(args, " ")
	offline, _ := cmd.Flags().GetBool("offline")

	var gen ai.Generator = ai.Offline{}
	if !offline {
		g, err := ai.FromConfig(cmd.Context(), appConfig.AI, slog.Default())
		if err != nil {
			return err
		}
		gen = g
	}

	category := categorizer.New(gen, appConfig.AI.Timeout, slog.Default()).Categorize(cmd.Context(), description)
	fmt.Fprintln(cmd.OutOrStdout(), category)
	return nil
}
