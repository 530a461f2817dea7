package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/journeystats/internal/catalog"
	"github.com/gyeh/journeystats/internal/classify"
	"github.com/gyeh/journeystats/internal/db"
	"github.com/gyeh/journeystats/internal/exitcode"
	"github.com/gyeh/journeystats/internal/journey"
	"github.com/gyeh/journeystats/internal/logging"
)

var classifyConfigFile string

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Run the treatment-journey success classification over a date range",
	RunE:  runClassify,
}

func init() {
	f := classifyCmd.Flags()
	f.StringVar(&cfg.DateFrom, "from", "", "Scope start date, inclusive (YYYY-MM-DD)")
	f.StringVar(&cfg.DateTo, "to", "", "Scope end date, exclusive (YYYY-MM-DD)")
	f.IntVar(&cfg.Workers, "workers", 0, "Classification workers per batch (default 4)")
	f.IntVar(&cfg.BatchSize, "batch-size", 0, "Procedures fetched per batch (default 5000)")
	f.StringVar(&cfg.CatalogPath, "catalog", "", "Exclusion catalog override (YAML)")
	f.StringVar(&classifyConfigFile, "config", "", "YAML config file for run settings")
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if classifyConfigFile != "" {
		if err := cfg.LoadFromFile(classifyConfigFile); err != nil {
			log.Error().Err(err).Msg("config file load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	cat, err := loadCatalog()
	if err != nil {
		log.Error().Err(err).Msg("catalog load failed")
		os.Exit(exitcode.ValidationError)
	}
	log.Info().Str("version", cat.Version()).Int("codes", cat.Size()).Msg("exclusion catalog loaded")

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := journey.Run(ctx, pool, log, &cfg, classify.New(cat))
	if err != nil {
		if pe, ok := err.(*journey.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("classification failed")
			switch pe.Phase {
			case "preflight":
				os.Exit(exitcode.ValidationError)
			case "classify":
				os.Exit(exitcode.ClassifyError)
			default:
				os.Exit(exitcode.ReportError)
			}
		}
		log.Error().Err(err).Msg("classification failed")
		os.Exit(exitcode.ClassifyError)
	}

	fmt.Printf("Run %s complete: %d procedures classified, %d successful (%.1f%%), %.1fs\n",
		summary.RunID, summary.RowsClassified, summary.SuccessCount,
		summary.SuccessRate()*100, summary.DurationTotal.Seconds())
	return nil
}

// loadCatalog returns the override catalog when --catalog is set, the
// embedded default otherwise.
func loadCatalog() (*catalog.Catalog, error) {
	if cfg.CatalogPath != "" {
		return catalog.LoadFile(cfg.CatalogPath)
	}
	return catalog.Default()
}
