package metrics

import (
	"context"
	"fmt"
	"slices"

	"salesmetrics/internal/core"
)

// growth computes period-over-period growth rates for one year. The first
// chronological period has no previous value and therefore no growth rate;
// a zero previous value also leaves growth undefined (null), which callers
// must be able to tell apart from 0% growth.
func (e *Engine) growth(ctx context.Context, req request) (Output, error) {
	sales, err := e.reader.SumsByPeriod(ctx, req.year, req.granularity)
	if err != nil {
		return nil, fmt.Errorf("read sales for %d: %w", req.year, err)
	}

	sorted := make([]int, 0, len(sales))
	for p := range sales {
		sorted = append(sorted, p)
	}
	slices.Sort(sorted)

	rows := make([]GrowthRow, 0, len(sorted))
	var growthRates []float64

	for i, p := range sorted {
		currentVal := sales[p]
		var prev, pct *float64
		if i > 0 {
			// Previous is the immediately preceding period with data in
			// the full chronological sequence, not the previous integer.
			prevVal := sales[sorted[i-1]]
			prev = &prevVal
			if prevVal != 0 {
				g := (currentVal - prevVal) / prevVal * 100
				pct = &g
				// The summary average spans the whole series even when a
				// filter trims the emitted rows.
				growthRates = append(growthRates, g)
			}
		}

		if req.periodNumber != 0 && p != req.periodNumber {
			continue
		}

		rows = append(rows, GrowthRow{
			PeriodRef: periodRef(req.granularity, p),
			Current:   core.Round2(currentVal),
			Previous:  round2Ptr(prev),
			GrowthPct: round2Ptr(pct),
		})
	}

	var avg *float64
	if len(growthRates) > 0 {
		var sum float64
		for _, g := range growthRates {
			sum += g
		}
		a := core.Round2(sum / float64(len(growthRates)))
		avg = &a
	}

	years, err := e.reader.YearsPresent(ctx)
	if err != nil {
		return nil, fmt.Errorf("read years present: %w", err)
	}

	return GrowthOutput{
		Status:       StatusSuccess,
		Year:         req.year,
		Period:       string(req.granularity),
		Results:      rows,
		Summary:      GrowthSummary{AverageGrowthPct: avg},
		Availability: yearAvailability(years, req.year),
	}, nil
}
