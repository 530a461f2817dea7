package model

// ResultRow is the Parquet export schema for one classification result,
// consumed by downstream ML feature pipelines.
type ResultRow struct {
	ProcNum            int64  `parquet:"proc_num"`
	Success            int32  `parquet:"target_journey_success"`
	Category           string `parquet:"category"`
	ThresholdTier      string `parquet:"threshold_tier"`
	PaymentType        string `parquet:"payment_type"`
	SplitPattern       string `parquet:"split_pattern"`
	FeeCents           int64  `parquet:"fee_cents"`
	InsurancePaidCents int64  `parquet:"insurance_paid_cents"`
	DirectPaidCents    int64  `parquet:"direct_paid_cents"`
	AdjustmentCents    int64  `parquet:"adjustment_cents"`
	TotalPaidCents     int64  `parquet:"total_paid_cents"`
	SplitCount         int32  `parquet:"split_count"`
	ProcDate           string `parquet:"proc_date"`
}

// ToResultRow converts a ClassificationResult to its Parquet export shape.
func ToResultRow(r *ClassificationResult) ResultRow {
	return ResultRow{
		ProcNum:            r.ProcNum,
		Success:            int32(r.Success),
		Category:           string(r.Category),
		ThresholdTier:      string(r.ThresholdTier),
		PaymentType:        string(r.PaymentType),
		SplitPattern:       string(r.SplitPattern),
		FeeCents:           r.FeeCents,
		InsurancePaidCents: r.InsurancePaidCents,
		DirectPaidCents:    r.DirectPaidCents,
		AdjustmentCents:    r.AdjustmentCents,
		TotalPaidCents:     r.TotalPaidCents,
		SplitCount:         int32(r.SplitCount),
		ProcDate:           r.ProcDate.Format("2006-01-02"),
	}
}
