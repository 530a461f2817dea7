// Package classify implements the treatment-journey success rules: per-procedure
// payment aggregation, split-pattern bucketing, and the single-pass decision
// table that labels each procedure as a successfully completed and paid
// treatment or not. Everything here is pure and deterministic; money is int64
// cents throughout and the payment-ratio tiers are computed with integer
// comparisons so no division ever happens.
package classify

import (
	"time"

	"github.com/google/uuid"

	"github.com/gyeh/journeystats/internal/catalog"
	"github.com/gyeh/journeystats/internal/model"
)

// Payment-ratio tier boundaries in percent. A procedure passes when its
// ratio reaches the current operating threshold (95%).
const (
	strictPct  = 98
	currentPct = 95
	lenientPct = 90
)

// Classifier applies the success decision table. The catalog is injected
// once so every procedure in a run is judged against the same code sets.
type Classifier struct {
	cat *catalog.Catalog
}

// New returns a Classifier bound to the given catalog.
func New(cat *catalog.Catalog) *Classifier {
	return &Classifier{cat: cat}
}

// CatalogVersion returns the version of the injected catalog.
func (c *Classifier) CatalogVersion() string {
	return c.cat.Version()
}

// Classify evaluates one procedure against the ordered decision table:
//
//  1. cancellation-marker codes lose regardless of status or payment
//  2. anything not completed loses, labeled by its non-terminal state
//  3. zero-fee completed work trivially succeeds (administrative or clinical)
//  4. fee-bearing work succeeds iff total paid reaches 95% of the fee
//
// The threshold tier, payment type, and split pattern are always recorded;
// they describe the row independently of the pass/fail boundary.
func (c *Classifier) Classify(runID uuid.UUID, p *model.Procedure, act model.PaymentActivity, now time.Time) model.ClassificationResult {
	r := model.ClassificationResult{
		RunID:              runID,
		ProcNum:            p.ProcNum,
		ThresholdTier:      thresholdTier(p.FeeCents, act.TotalPaidCents),
		PaymentType:        paymentType(act),
		SplitPattern:       ClassifySplitPattern(act.SplitCount),
		FeeCents:           p.FeeCents,
		InsurancePaidCents: act.InsurancePaidCents,
		DirectPaidCents:    act.DirectPaidCents,
		AdjustmentCents:    act.AdjustmentCents,
		TotalPaidCents:     act.TotalPaidCents,
		SplitCount:         act.SplitCount,
		ProcDate:           p.ProcDate,
		ClassifiedAt:       now,
	}

	switch {
	case c.cat.IsCancellation(p.ProcCode):
		r.Category = model.CategoryCancelledOrMissed

	case p.Status != model.StatusComplete:
		r.Category = nonTerminalCategory(p.Status)

	case p.FeeCents <= 0:
		r.Success = 1
		if c.cat.IsExcluded(p.ProcCode) {
			r.Category = model.CategoryAdministrativeZero
		} else {
			r.Category = model.CategoryClinicalZero
		}

	default:
		if r.ThresholdTier == model.TierStrict98 || r.ThresholdTier == model.TierCurrent95 {
			r.Success = 1
		}
		r.Category = model.Category(r.ThresholdTier)
	}

	return r
}

// thresholdTier buckets total paid against the fee using integer math:
// paid*100 >= fee*pct is the inclusive boundary for each tier.
func thresholdTier(feeCents, paidCents int64) model.ThresholdTier {
	if feeCents <= 0 {
		return model.TierNoFee
	}
	scaled := paidCents * 100
	switch {
	case scaled >= feeCents*strictPct:
		return model.TierStrict98
	case scaled >= feeCents*currentPct:
		return model.TierCurrent95
	case scaled >= feeCents*lenientPct:
		return model.TierLenient90
	default:
		return model.TierBelow90
	}
}

// paymentType labels the funding source mix.
func paymentType(act model.PaymentActivity) model.PaymentType {
	switch {
	case act.InsurancePaidCents > 0 && act.DirectPaidCents > 0:
		return model.PayBoth
	case act.InsurancePaidCents > 0:
		return model.PayInsurance
	case act.DirectPaidCents > 0:
		return model.PayDirect
	default:
		return model.PayNone
	}
}

// nonTerminalCategory maps a non-completed status to its category label.
func nonTerminalCategory(s model.ProcStatus) model.Category {
	switch s {
	case model.StatusTreatmentPlanned:
		return model.CategoryInPlanning
	case model.StatusDeleted:
		return model.CategoryDeleted
	default:
		return model.CategoryNotCompleted
	}
}
