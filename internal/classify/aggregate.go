package classify

import "github.com/gyeh/journeystats/internal/model"

// AggregatePayments folds all payment and adjustment rows linked to one
// procedure into a single financial picture. Insurance and direct sums keep
// only positive amounts (refund/reversal rows carry negative amounts and are
// not payments toward the fee); the adjustment sum is signed. Adjustments
// are tracked separately and never added to TotalPaidCents.
//
// All inputs are int64 cents, so the sums are exact. A procedure with no
// linked rows aggregates to all zeros.
func AggregatePayments(claims []model.ClaimPayment, splits []model.PaySplit, adjs []model.Adjustment) model.PaymentActivity {
	var a model.PaymentActivity

	for _, c := range claims {
		if c.InsPaidCents > 0 {
			a.InsurancePaidCents += c.InsPaidCents
		}
	}
	for _, s := range splits {
		if s.SplitCents > 0 {
			a.DirectPaidCents += s.SplitCents
		}
	}
	for _, adj := range adjs {
		a.AdjustmentCents += adj.AdjCents
	}

	a.TotalPaidCents = a.InsurancePaidCents + a.DirectPaidCents
	a.SplitCount = len(splits)
	return a
}
