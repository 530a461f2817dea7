package model

import "time"

// RunSummary captures metrics from a single classification run.
type RunSummary struct {
	RunID             string
	DateFrom          time.Time
	DateTo            time.Time
	CatalogVersion    string
	ProceduresInScope int64
	RowsClassified    int64
	RowsWritten       int64
	CategoryCounts    map[Category]int64
	SuccessCount      int64
	DurationFetch     time.Duration
	DurationClassify  time.Duration
	DurationSummarize time.Duration
	DurationTotal     time.Duration
}

// SuccessRate returns the share of classified procedures labeled successful,
// or 0 when nothing was classified.
func (s *RunSummary) SuccessRate() float64 {
	if s.RowsClassified == 0 {
		return 0
	}
	return float64(s.SuccessCount) / float64(s.RowsClassified)
}
