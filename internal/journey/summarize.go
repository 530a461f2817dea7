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

// Summarize aggregates a run's results by category and logs the breakdown.
// The same GROUP BY queries back the report command; this phase exists so a
// classification run always ends with its headline numbers in the log.
func Summarize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, runID uuid.UUID) (map[model.Category]int64, int64, time.Duration, error) {
	start := time.Now()

	counts, err := CategoryCounts(ctx, pool, runID)
	if err != nil {
		return nil, 0, 0, err
	}

	var total, successes int64
	for cat, gc := range counts {
		total += gc.Count
		successes += gc.Successes
		log.Info().
			Str("category", string(cat)).
			Int64("count", gc.Count).
			Int64("successes", gc.Successes).
			Msg("category summary")
	}

	byCategory := make(map[model.Category]int64, len(counts))
	for cat, gc := range counts {
		byCategory[cat] = gc.Count
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows", total).
		Int64("successes", successes).
		Dur("duration", dur).
		Msg("summarize complete")

	return byCategory, successes, dur, nil
}

// GroupCount is one row of a report grouping.
type GroupCount struct {
	Count     int64
	Successes int64
}

// CategoryCounts returns per-category row and success counts for a run.
func CategoryCounts(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID) (map[model.Category]GroupCount, error) {
	rows, err := pool.Query(ctx, sqlq.ReportByCategory, runID)
	if err != nil {
		return nil, fmt.Errorf("report by category: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.Category]GroupCount)
	for rows.Next() {
		var cat string
		var gc GroupCount
		if err := rows.Scan(&cat, &gc.Count, &gc.Successes); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts[model.Category(cat)] = gc
	}
	return counts, rows.Err()
}

// GroupCounts runs one of the embedded report queries and returns label →
// counts in query order.
func GroupCounts(ctx context.Context, pool *pgxpool.Pool, query string, runID uuid.UUID) ([]LabeledCount, error) {
	rows, err := pool.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("report query: %w", err)
	}
	defer rows.Close()

	var out []LabeledCount
	for rows.Next() {
		var lc LabeledCount
		if err := rows.Scan(&lc.Label, &lc.Count, &lc.Successes); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		out = append(out, lc)
	}
	return out, rows.Err()
}

// LabeledCount is one row of a labeled report grouping.
type LabeledCount struct {
	Label     string
	Count     int64
	Successes int64
}
