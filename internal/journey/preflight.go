package journey

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/journeystats/internal/model"
	sqlq "github.com/gyeh/journeystats/internal/sql"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// RunID is a freshly generated UUIDv4 identifying this classification run.
	RunID uuid.UUID
	// DateFrom is the inclusive start of the run's scope.
	DateFrom time.Time
	// DateTo is the exclusive end of the run's scope.
	DateTo time.Time
	// CatalogVersion is the exclusion-catalog version the run is bound to.
	CatalogVersion string
	// ProceduresInScope is the number of procedures in the date range.
	ProceduresInScope int64
	// StartedAt anchors every classified_at timestamp so re-running against
	// the same snapshot differs only in run identity, never per row.
	StartedAt time.Time
}

// Preflight counts the run's scope and registers the run record.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, catalogVersion string, from, to time.Time) (*PreflightResult, error) {
	start := time.Now()

	scope, err := CountScope(ctx, pool, from, to)
	if err != nil {
		return nil, fmt.Errorf("preflight count scope: %w", err)
	}

	pf := &PreflightResult{
		RunID:             uuid.New(),
		DateFrom:          from,
		DateTo:            to,
		CatalogVersion:    catalogVersion,
		ProceduresInScope: scope,
		StartedAt:         start.UTC().Truncate(time.Second),
	}

	if _, err := pool.Exec(ctx, sqlq.RegisterRun,
		pf.RunID, pf.DateFrom, pf.DateTo, pf.CatalogVersion, pf.ProceduresInScope); err != nil {
		return nil, fmt.Errorf("preflight register run: %w", err)
	}

	log.Info().
		Str("run_id", pf.RunID.String()).
		Int64("procedures_in_scope", scope).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	return pf, nil
}

// CountScope returns the number of procedures in the date range.
func CountScope(ctx context.Context, pool *pgxpool.Pool, from, to time.Time) (int64, error) {
	var n int64
	if err := pool.QueryRow(ctx, sqlq.CountScope, from, to).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// StatusDistribution returns per-status procedure counts for the date range,
// used by the plan command's dry-run report.
func StatusDistribution(ctx context.Context, pool *pgxpool.Pool, from, to time.Time) (map[model.ProcStatus]int64, error) {
	rows, err := pool.Query(ctx, sqlq.StatusDistribution, from, to)
	if err != nil {
		return nil, fmt.Errorf("status distribution: %w", err)
	}
	defer rows.Close()

	dist := make(map[model.ProcStatus]int64)
	for rows.Next() {
		var status int16
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan status row: %w", err)
		}
		dist[model.ProcStatus(status)] = count
	}
	return dist, rows.Err()
}
