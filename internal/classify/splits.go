package classify

import "github.com/gyeh/journeystats/internal/model"

// Split count boundaries, inclusive on both ends.
const (
	normalSplitMax  = 3
	complexSplitMax = 15
)

// ClassifySplitPattern buckets the number of payment splits funding one
// procedure: 0 → no_splits, 1-3 → normal_split, 4-15 → complex_split,
// >15 → review_needed.
func ClassifySplitPattern(splitCount int) model.SplitPattern {
	switch {
	case splitCount <= 0:
		return model.SplitNone
	case splitCount <= normalSplitMax:
		return model.SplitNormal
	case splitCount <= complexSplitMax:
		return model.SplitComplex
	default:
		return model.SplitReview
	}
}
