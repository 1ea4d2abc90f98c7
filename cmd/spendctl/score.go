package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"spendwise-backend/internal/ai"
	"spendwise-backend/internal/database"
	"spendwise-backend/internal/services"
)

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Show a user's financial score and current-month summary",
		Args:  cobra.NoArgs,
		RunE:  runScore,
	}
	cmd.Flags().String("user", "", "user id (uuid)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func runScore(cmd *cobra.Command, _ []string) error {
	raw, _ := cmd.Flags().GetString("user")
	userID, err := uuid.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid --user %q: %w", raw, err)
	}

	st, err := database.Open(cmd.Context(), appConfig, slog.Default())
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if _, err := st.GetUserByID(cmd.Context(), userID); err != nil {
		return fmt.Errorf("lookup user: %w", err)
	}

	svc := services.NewAnalyticsService(st, st, ai.Offline{}, slog.Default(),
		services.WithLocation(appConfig.Location()))

	score, err := svc.FinancialScore(cmd.Context(), userID)
	if err != nil {
		return err
	}
	summary, err := svc.MonthlySummary(cmd.Context(), userID)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "financial score\t%d\n", score)
	fmt.Fprintf(tw, "spent this month\t%.2f\n", summary.Total)
	for _, ct := range summary.Breakdown {
		fmt.Fprintf(tw, "  %s\t%.2f\n", ct.Category, ct.Total)
	}
	return tw.Flush()
}
