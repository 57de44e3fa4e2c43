package metrics

import (
	"context"
	"fmt"
	"slices"

	"salesmetrics/internal/core"
)

// categoryBreakdown sums sales per category within one year and period.
// It is the only metric kind that cannot run without a period filter.
func (e *Engine) categoryBreakdown(ctx context.Context, req request) (Output, error) {
	totals, err := e.reader.CategorySums(ctx, req.year, req.granularity, req.periodNumber)
	if err != nil {
		return nil, fmt.Errorf("read category sums for %d: %w", req.year, err)
	}

	var total float64
	for _, ct := range totals {
		total += ct.Amount
	}

	// The store returns categories sorted by amount descending; order is
	// preserved in the results. A zero total yields 0 for every row's
	// share rather than a divide fault.
	rows := make([]CategoryRow, 0, len(totals))
	for _, ct := range totals {
		rows = append(rows, CategoryRow{
			Category:          ct.Category,
			Amount:            core.Round2(ct.Amount),
			PercentageOfTotal: core.Round2(pctOf(ct.Amount, total)),
		})
	}

	years, err := e.reader.YearsPresent(ctx)
	if err != nil {
		return nil, fmt.Errorf("read years present: %w", err)
	}

	// An empty period within a known year still counts as missing.
	hasData := slices.Contains(years, req.year) && len(totals) > 0
	ref := periodRef(req.granularity, req.periodNumber)

	return CategoryOutput{
		Status:       StatusSuccess,
		Year:         req.year,
		Period:       ref.PeriodLabel,
		PeriodNumber: ref.PeriodNumber,
		Results:      rows,
		Summary: CategorySummary{
			Total:         core.Round2(total),
			CategoryCount: len(rows),
		},
		Availability: availabilityFlag(req.year, hasData),
	}, nil
}
