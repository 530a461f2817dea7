package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/journeystats/internal/db"
	"github.com/gyeh/journeystats/internal/exitcode"
	"github.com/gyeh/journeystats/internal/logging"
	"github.com/gyeh/journeystats/internal/snapshot"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load a practice snapshot (Parquet directory) into the raw tables",
	Long: "Replaces the current raw snapshot with the Parquet files in --dir:\n" +
		"procedurelog, procedurecode, claimproc, paysplit, and adjustment.",
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVar(&cfg.SnapshotDir, "dir", "", "Directory containing snapshot Parquet files (required)")
	_ = loadCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if cfg.DSN == "" {
		log.Error().Msg("--dsn or JOURNEY_DB_URL is required")
		os.Exit(exitcode.UsageError)
	}
	if st, err := os.Stat(cfg.SnapshotDir); err != nil || !st.IsDir() {
		log.Error().Str("dir", cfg.SnapshotDir).Msg("snapshot directory not accessible")
		os.Exit(exitcode.ValidationError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	res, err := snapshot.LoadAll(ctx, pool, log, cfg.SnapshotDir)
	if err != nil {
		log.Error().Err(err).Msg("snapshot load failed")
		os.Exit(exitcode.CopyError)
	}

	var total int64
	for _, t := range res.Tables {
		total += t.RowsLoaded
	}
	fmt.Printf("Snapshot loaded: %d tables, %d rows (%.1fs)\n",
		len(res.Tables), total, res.DurationTotal.Seconds())
	return nil
}
