package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/journeystats/internal/db"
	"github.com/gyeh/journeystats/internal/exitcode"
	"github.com/gyeh/journeystats/internal/journey"
	"github.com/gyeh/journeystats/internal/logging"
	"github.com/gyeh/journeystats/internal/model"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run scope report for a date range (no writes)",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.DateFrom, "from", "", "Scope start date, inclusive (YYYY-MM-DD)")
	f.StringVar(&cfg.DateTo, "to", "", "Scope end date, exclusive (YYYY-MM-DD)")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}
	from, to, _ := cfg.DateRange()

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	scope, err := journey.CountScope(ctx, pool, from, to)
	if err != nil {
		log.Error().Err(err).Msg("scope count failed")
		os.Exit(exitcode.ReportError)
	}

	dist, err := journey.StatusDistribution(ctx, pool, from, to)
	if err != nil {
		log.Error().Err(err).Msg("status distribution failed")
		os.Exit(exitcode.ReportError)
	}

	fmt.Println("=== journeyload plan ===")
	fmt.Printf("Scope:      %s to %s (exclusive)\n", cfg.DateFrom, cfg.DateTo)
	fmt.Printf("Procedures: %d\n", scope)
	fmt.Println()
	fmt.Println("Status distribution:")
	for s := model.StatusTreatmentPlanned; s <= model.StatusCondition; s++ {
		if count, ok := dist[s]; ok {
			fmt.Printf("  %-3s %8d\n", s.String(), count)
		}
	}
	fmt.Println("\nNo writes performed.")
	return nil
}
