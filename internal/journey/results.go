package journey

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gyeh/journeystats/internal/model"
	sqlq "github.com/gyeh/journeystats/internal/sql"
)

// FetchResults streams a run's classification results in proc_num order,
// invoking fn for each row. Used by the export command.
func FetchResults(ctx context.Context, pool *pgxpool.Pool, runID uuid.UUID, fn func(*model.ClassificationResult) error) error {
	rows, err := pool.Query(ctx, sqlq.SelectResults, runID)
	if err != nil {
		return fmt.Errorf("select results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r model.ClassificationResult
		var category, tier, payType, splitPattern string
		var splitCount int32
		if err := rows.Scan(&r.RunID, &r.ProcNum, &r.Success, &category, &tier,
			&payType, &splitPattern, &r.FeeCents, &r.InsurancePaidCents,
			&r.DirectPaidCents, &r.AdjustmentCents, &r.TotalPaidCents,
			&splitCount, &r.ProcDate, &r.ClassifiedAt); err != nil {
			return fmt.Errorf("scan result: %w", err)
		}
		r.Category = model.Category(category)
		r.ThresholdTier = model.ThresholdTier(tier)
		r.PaymentType = model.PaymentType(payType)
		r.SplitPattern = model.SplitPattern(splitPattern)
		r.SplitCount = int(splitCount)

		if err := fn(&r); err != nil {
			return err
		}
	}
	return rows.Err()
}
