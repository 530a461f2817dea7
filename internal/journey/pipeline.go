// Package journey runs the treatment-journey classification pipeline:
// preflight → classify (fetch, aggregate, label, COPY) → summarize →
// finalize. Each phase logs structured progress; failures carry the phase
// they happened in.
package journey

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/journeystats/internal/classify"
	"github.com/gyeh/journeystats/internal/config"
	"github.com/gyeh/journeystats/internal/model"
	sqlq "github.com/gyeh/journeystats/internal/sql"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full classification pipeline for the configured date range.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config, clf *classify.Classifier) (*model.RunSummary, error) {
	totalStart := time.Now()

	from, to, err := cfg.DateRange()
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	// Phase 1: Preflight
	log.Info().
		Str("from", cfg.DateFrom).
		Str("to", cfg.DateTo).
		Str("catalog", clf.CatalogVersion()).
		Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, clf.CatalogVersion(), from, to)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	// Phase 2: Classify
	log.Info().Int64("procedures_in_scope", pf.ProceduresInScope).Msg("starting classification")
	if err := UpdateRunStatus(ctx, pool, pf.RunID, "classifying"); err != nil {
		return nil, &PipelineError{Phase: "classify", Err: err}
	}

	labelRes, err := Label(ctx, pool, log, clf, pf, cfg.EffectiveBatchSize(), cfg.EffectiveWorkers())
	if err != nil {
		CleanupFailedRun(ctx, pool, log, pf.RunID)
		return nil, &PipelineError{Phase: "classify", Err: err}
	}

	// Phase 3: Summarize
	log.Info().Msg("summarizing run")
	if err := UpdateRunStatus(ctx, pool, pf.RunID, "summarized"); err != nil {
		return nil, &PipelineError{Phase: "summarize", Err: err}
	}

	categoryCounts, successCount, sumDur, err := Summarize(ctx, pool, log, pf.RunID)
	if err != nil {
		CleanupFailedRun(ctx, pool, log, pf.RunID)
		return nil, &PipelineError{Phase: "summarize", Err: err}
	}

	// Phase 4: Finalize
	log.Info().Msg("finalizing run")
	if err := Finalize(ctx, pool, log, pf.RunID, labelRes.RowsWritten); err != nil {
		CleanupFailedRun(ctx, pool, log, pf.RunID)
		return nil, &PipelineError{Phase: "finalize", Err: err}
	}

	summary := &model.RunSummary{
		RunID:             pf.RunID.String(),
		DateFrom:          from,
		DateTo:            to,
		CatalogVersion:    clf.CatalogVersion(),
		ProceduresInScope: pf.ProceduresInScope,
		RowsClassified:    labelRes.RowsClassified,
		RowsWritten:       labelRes.RowsWritten,
		CategoryCounts:    categoryCounts,
		SuccessCount:      successCount,
		DurationFetch:     labelRes.DurationFetch,
		DurationClassify:  labelRes.DurationClassify,
		DurationSummarize: sumDur,
		DurationTotal:     time.Since(totalStart),
	}

	log.Info().
		Str("run_id", summary.RunID).
		Int64("rows_classified", summary.RowsClassified).
		Int64("rows_written", summary.RowsWritten).
		Int64("successes", summary.SuccessCount).
		Float64("success_rate", summary.SuccessRate()).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("classification pipeline complete")

	return summary, nil
}

// UpdateRunStatus updates the journey.runs status.
func UpdateRunStatus(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID, status string) error {
	_, err := pool.Exec(ctx, sqlq.UpdateRunStatus, runID, status)
	return err
}

// CleanupFailedRun removes any partially written result rows for the run and
// marks it failed, so a failed run never leaves orphaned rows behind. Cleanup
// errors are logged but not returned: the original phase error is what the
// caller reports.
func CleanupFailedRun(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, runID uuid.UUID) {
	if err := DeleteRunResults(ctx, pool, log, runID); err != nil {
		log.Warn().Err(err).Str("run_id", runID.String()).Msg("failed-run result cleanup failed")
	}
	if err := UpdateRunStatus(ctx, pool, runID, "failed"); err != nil {
		log.Warn().Err(err).Str("run_id", runID.String()).Msg("failed-run status update failed")
	}
}
