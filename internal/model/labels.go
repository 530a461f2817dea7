package model

// SplitPattern buckets the number of payment splits funding one procedure.
type SplitPattern string

const (
	SplitNone    SplitPattern = "no_splits"
	SplitNormal  SplitPattern = "normal_split"  // 1-3 splits
	SplitComplex SplitPattern = "complex_split" // 4-15 splits
	SplitReview  SplitPattern = "review_needed" // >15 splits
)

// ThresholdTier names how close the payment ratio came to full payment.
type ThresholdTier string

const (
	TierStrict98  ThresholdTier = "strict_98"
	TierCurrent95 ThresholdTier = "current_95"
	TierLenient90 ThresholdTier = "lenient_90"
	TierBelow90   ThresholdTier = "below_90"
	TierNoFee     ThresholdTier = "no_fee" // zero-fee rows have no defined ratio
)

// PaymentType names the funding source mix for a procedure.
type PaymentType string

const (
	PayNone      PaymentType = "no_payment"
	PayInsurance PaymentType = "insurance_only"
	PayDirect    PaymentType = "direct_only"
	PayBoth      PaymentType = "both_payment_types"
)

// Category is the human-readable classification label.
type Category string

const (
	CategoryCancelledOrMissed  Category = "cancelled_or_missed"
	CategoryInPlanning         Category = "in_planning"
	CategoryDeleted            Category = "deleted"
	CategoryNotCompleted       Category = "not_completed"
	CategoryAdministrativeZero Category = "administrative_zero_fee"
	CategoryClinicalZero       Category = "clinical_zero_fee"
	CategoryStrict98           Category = "strict_98"
	CategoryCurrent95          Category = "current_95"
	CategoryLenient90          Category = "lenient_90"
	CategoryBelow90            Category = "below_90"
)

// AllCategories lists every category in canonical report order.
var AllCategories = []Category{
	CategoryStrict98,
	CategoryCurrent95,
	CategoryLenient90,
	CategoryBelow90,
	CategoryClinicalZero,
	CategoryAdministrativeZero,
	CategoryCancelledOrMissed,
	CategoryInPlanning,
	CategoryDeleted,
	CategoryNotCompleted,
}

// CategoryByName returns the Category for the given name, or ok=false.
func CategoryByName(name string) (Category, bool) {
	for _, c := range AllCategories {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}
