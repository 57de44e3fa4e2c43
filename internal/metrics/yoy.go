package metrics

import (
	"context"
	"fmt"

	"salesmetrics/internal/core"
)

// yoyComparison compares two years period by period over the union of
// periods present in either year; the missing side defaults to zero.
func (e *Engine) yoyComparison(ctx context.Context, req request) (Output, error) {
	current, err := e.reader.SumsByPeriod(ctx, req.year, req.granularity)
	if err != nil {
		return nil, fmt.Errorf("read sales for %d: %w", req.year, err)
	}
	previous, err := e.reader.SumsByPeriod(ctx, req.compareYear, req.granularity)
	if err != nil {
		return nil, fmt.Errorf("read sales for %d: %w", req.compareYear, err)
	}

	periods := requestedPeriods(req.periodNumber, current, previous)
	rows := make([]YoYRow, 0, len(periods))

	for _, p := range periods {
		currVal := current[p]
		prevVal := previous[p]
		change := currVal - prevVal

		rows = append(rows, YoYRow{
			PeriodRef:        periodRef(req.granularity, p),
			CurrentYearValue: core.Round2(currVal),
			CompareYearValue: core.Round2(prevVal),
			Change:           core.Round2(change),
			ChangePct:        core.Round2(pctOf(change, prevVal)),
		})
	}

	// Summary totals cover the whole of each year regardless of any
	// period filter, computed on unrounded sums.
	totalCurrent := sumValues(current)
	totalPrevious := sumValues(previous)
	totalChange := totalCurrent - totalPrevious

	years, err := e.reader.YearsPresent(ctx)
	if err != nil {
		return nil, fmt.Errorf("read years present: %w", err)
	}

	return YoYOutput{
		Status:      StatusSuccess,
		CurrentYear: req.year,
		CompareYear: req.compareYear,
		Period:      string(req.granularity),
		Results:     rows,
		Summary: YoYSummary{
			TotalCurrent:   core.Round2(totalCurrent),
			TotalCompare:   core.Round2(totalPrevious),
			TotalChange:    core.Round2(totalChange),
			TotalChangePct: core.Round2(pctOf(totalChange, totalPrevious)),
		},
		Availability: yearsAvailability(years, req.year, req.compareYear),
	}, nil
}
