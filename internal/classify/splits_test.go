package classify

import (
	"testing"

	"github.com/gyeh/journeystats/internal/model"
)

func TestClassifySplitPattern_Boundaries(t *testing.T) {
	tests := []struct {
		count int
		want  model.SplitPattern
	}{
		{0, model.SplitNone},
		{1, model.SplitNormal},
		{3, model.SplitNormal},
		{4, model.SplitComplex},
		{15, model.SplitComplex},
		{16, model.SplitReview},
		{100, model.SplitReview},
	}
	for _, tt := range tests {
		if got := ClassifySplitPattern(tt.count); got != tt.want {
			t.Errorf("ClassifySplitPattern(%d) = %s, want %s", tt.count, got, tt.want)
		}
	}
}
