package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gyeh/journeystats/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "journeyload",
	Short: "Treatment-journey success classifier for practice snapshots",
	Long: "Loads OpenDental practice snapshots into Postgres and labels each procedure\n" +
		"with a treatment-journey success classification for reporting and ML pipelines.",
}

func init() {
	// .env is optional; flags and real env vars win.
	_ = godotenv.Load()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("JOURNEY_DB_URL"), "Postgres connection string (or set JOURNEY_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}
