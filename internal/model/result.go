package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassificationResult is the classifier output for one procedure, DB-ready
// for COPY into journey.classification_results.
type ClassificationResult struct {
	RunID   uuid.UUID
	ProcNum int64

	Success       int16 // 0 or 1
	Category      Category
	ThresholdTier ThresholdTier
	PaymentType   PaymentType
	SplitPattern  SplitPattern

	FeeCents           int64
	InsurancePaidCents int64
	DirectPaidCents    int64
	AdjustmentCents    int64
	TotalPaidCents     int64
	SplitCount         int

	ProcDate     time.Time
	ClassifiedAt time.Time
}

// ResultColumns returns the ordered column names for COPY into
// journey.classification_results.
func ResultColumns() []string {
	return []string{
		"run_id",
		"proc_num",
		"success",
		"category",
		"threshold_tier",
		"payment_type",
		"split_pattern",
		"fee_cents",
		"insurance_paid_cents",
		"direct_paid_cents",
		"adjustment_cents",
		"total_paid_cents",
		"split_count",
		"proc_date",
		"classified_at",
	}
}

// CopyValues returns the row values in the same order as ResultColumns(),
// suitable for pgx CopyFromSource.
func (r *ClassificationResult) CopyValues() []any {
	return []any{
		r.RunID,
		r.ProcNum,
		r.Success,
		string(r.Category),
		string(r.ThresholdTier),
		string(r.PaymentType),
		string(r.SplitPattern),
		r.FeeCents,
		r.InsurancePaidCents,
		r.DirectPaidCents,
		r.AdjustmentCents,
		r.TotalPaidCents,
		int32(r.SplitCount),
		r.ProcDate,
		r.ClassifiedAt,
	}
}
