package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/gyeh/journeystats/internal/db"
	"github.com/gyeh/journeystats/internal/exitcode"
	"github.com/gyeh/journeystats/internal/journey"
	"github.com/gyeh/journeystats/internal/logging"
	sqlq "github.com/gyeh/journeystats/internal/sql"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print grouped summaries for a classification run",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&cfg.RunID, "run", "", "Run ID (default: latest complete run)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if cfg.DSN == "" {
		log.Error().Msg("--dsn or JOURNEY_DB_URL is required")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	runID, err := resolveRun(ctx, pool)
	if err != nil {
		log.Error().Err(err).Msg("run resolution failed")
		os.Exit(exitcode.ValidationError)
	}

	groupings := []struct {
		title string
		query string
	}{
		{"By category", sqlq.ReportByCategory},
		{"By threshold tier", sqlq.ReportByTier},
		{"By payment type", sqlq.ReportByPaymentType},
		{"By split pattern", sqlq.ReportBySplitPattern},
		{"By month", sqlq.ReportByMonth},
	}

	fmt.Printf("=== journeyload report: run %s ===\n", runID)
	for _, g := range groupings {
		counts, err := journey.GroupCounts(ctx, pool, g.query, runID)
		if err != nil {
			log.Error().Err(err).Str("grouping", g.title).Msg("report query failed")
			os.Exit(exitcode.ReportError)
		}

		fmt.Printf("\n%s:\n", g.title)
		for _, lc := range counts {
			rate := 0.0
			if lc.Count > 0 {
				rate = float64(lc.Successes) / float64(lc.Count) * 100
			}
			fmt.Printf("  %-24s %8d rows  %8d successes  (%5.1f%%)\n",
				lc.Label, lc.Count, lc.Successes, rate)
		}
	}
	return nil
}

// resolveRun parses --run or falls back to the latest complete run.
func resolveRun(ctx context.Context, pool *pgxpool.Pool) (uuid.UUID, error) {
	if cfg.RunID != "" {
		id, err := uuid.Parse(cfg.RunID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid --run %q: %w", cfg.RunID, err)
		}
		return id, nil
	}
	return journey.LatestRun(ctx, pool)
}
