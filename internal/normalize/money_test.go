package normalize

import "testing"

func TestCents(t *testing.T) {
	tests := []struct {
		dollars float64
		want    int64
	}{
		{0, 0},
		{1, 100},
		{19.99, 1999},
		{0.005, 1},    // rounds, not truncates
		{-12.34, -1234},
		{123456.78, 12345678},
	}
	for _, tt := range tests {
		if got := Cents(tt.dollars); got != tt.want {
			t.Errorf("Cents(%v) = %d, want %d", tt.dollars, got, tt.want)
		}
	}
}
