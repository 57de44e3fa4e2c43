// Package metrics computes the four sales analyses (forecast comparison,
// year-over-year, period-over-period growth, category breakdown) against a
// read-only sales store. Every calculation is a pure function of its inputs
// and the store contents at the time of the call; nothing is cached or
// retained between calls, so concurrent calls are safe.
package metrics

import (
	"context"

	"salesmetrics/internal/core"
)

// SalesReader is the read boundary to the sales store.
type SalesReader interface {
	// SumsByPeriod groups all records for year by month or derived quarter,
	// summing amounts. Periods with no records are absent from the map,
	// never zero-filled; callers treat absence as zero explicitly.
	SumsByPeriod(ctx context.Context, year int, g core.Granularity) (map[int]float64, error)

	// CategorySums returns per-category totals within year and period,
	// sorted by amount descending.
	CategorySums(ctx context.Context, year int, g core.Granularity, periodNumber int) ([]core.CategoryTotal, error)

	// YearsPresent returns the distinct years in the dataset, ascending.
	YearsPresent(ctx context.Context) ([]int, error)
}
