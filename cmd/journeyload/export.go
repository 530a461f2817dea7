package main

import (
	"context"
	"fmt"
	"os"

	goparquet "github.com/parquet-go/parquet-go"
	"github.com/spf13/cobra"

	"github.com/gyeh/journeystats/internal/db"
	"github.com/gyeh/journeystats/internal/exitcode"
	"github.com/gyeh/journeystats/internal/journey"
	"github.com/gyeh/journeystats/internal/logging"
	"github.com/gyeh/journeystats/internal/model"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a run's classification results to a Parquet file",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&cfg.RunID, "run", "", "Run ID (default: latest complete run)")
	f.StringVar(&cfg.OutPath, "out", "", "Output Parquet path (required)")
	f.StringSliceVar(&cfg.Categories, "category", nil, "Only export these categories (repeatable)")
	_ = exportCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if cfg.DSN == "" {
		log.Error().Msg("--dsn or JOURNEY_DB_URL is required")
		os.Exit(exitcode.UsageError)
	}

	wanted := make(map[model.Category]bool, len(cfg.Categories))
	for _, name := range cfg.Categories {
		cat, ok := model.CategoryByName(name)
		if !ok {
			log.Error().Str("category", name).Msg("unknown category")
			os.Exit(exitcode.UsageError)
		}
		wanted[cat] = true
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

	out, err := os.Create(cfg.OutPath)
	if err != nil {
		log.Error().Err(err).Msg("create output file failed")
		os.Exit(exitcode.ValidationError)
	}
	defer out.Close()

	writer := goparquet.NewGenericWriter[model.ResultRow](out)

	var exported int64
	err = journey.FetchResults(ctx, pool, runID, func(r *model.ClassificationResult) error {
		if len(wanted) > 0 && !wanted[r.Category] {
			return nil
		}
		if _, werr := writer.Write([]model.ResultRow{model.ToResultRow(r)}); werr != nil {
			return fmt.Errorf("write parquet row: %w", werr)
		}
		exported++
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("export failed")
		os.Exit(exitcode.ReportError)
	}

	if err := writer.Close(); err != nil {
		log.Error().Err(err).Msg("close parquet writer failed")
		os.Exit(exitcode.ReportError)
	}

	fmt.Printf("Exported %d rows from run %s to %s\n", exported, runID, cfg.OutPath)
	return nil
}
