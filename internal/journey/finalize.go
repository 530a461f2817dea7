package journey

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	sqlq "github.com/gyeh/journeystats/internal/sql"
)

// Finalize marks the run complete and refreshes planner stats on the
// results table.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, runID uuid.UUID, rowsWritten int64) error {
	start := time.Now()

	if _, err := pool.Exec(ctx, sqlq.FinishRun, runID, rowsWritten); err != nil {
		return fmt.Errorf("finish run: %w", err)
	}

	if _, err := pool.Exec(ctx, sqlq.AnalyzeResults); err != nil {
		return fmt.Errorf("analyze results: %w", err)
	}

	log.Info().
		Str("run_id", runID.String()).
		Int64("rows_written", rowsWritten).
		Dur("duration", time.Since(start)).
		Msg("run finalized")

	return nil
}

// LatestRun returns the most recent complete run's ID.
func LatestRun(ctx context.Context, pool *pgxpool.Pool) (uuid.UUID, error) {
	var id uuid.UUID
	if err := pool.QueryRow(ctx, sqlq.LatestRun).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("latest run: %w", err)
	}
	return id, nil
}

// DeleteRunResults removes a run's result rows (cleanup for failed or
// superseded runs).
func DeleteRunResults(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, runID uuid.UUID) error {
	tag, err := pool.Exec(ctx, sqlq.DeleteRunResults, runID)
	if err != nil {
		return err
	}
	log.Info().
		Str("run_id", runID.String()).
		Int64("rows_deleted", tag.RowsAffected()).
		Msg("run results deleted")
	return nil
}
