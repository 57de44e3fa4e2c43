package metrics

import (
	"context"
	"fmt"

	"salesmetrics/internal/core"
)

// forecastComparison compares actual sales against caller-supplied forecast
// values. Periods forecast but never realized, and periods realized but
// never forecast, both appear in the results with the missing side
// defaulting to zero.
func (e *Engine) forecastComparison(ctx context.Context, req request) (Output, error) {
	actuals, err := e.reader.SumsByPeriod(ctx, req.year, req.granularity)
	if err != nil {
		return nil, fmt.Errorf("read actuals for %d: %w", req.year, err)
	}

	periods := requestedPeriods(req.periodNumber, actuals, req.forecast)
	rows := make([]ForecastRow, 0, len(periods))
	var totalActual, totalForecast float64

	for _, p := range periods {
		actual := actuals[p]
		forecast := req.forecast[p]
		variance := actual - forecast

		status := OnTarget
		switch {
		case variance > 0:
			status = AboveForecast
		case variance < 0:
			status = BelowForecast
		}

		rows = append(rows, ForecastRow{
			PeriodRef:   periodRef(req.granularity, p),
			Actual:      core.Round2(actual),
			Forecast:    core.Round2(forecast),
			Variance:    core.Round2(variance),
			VariancePct: core.Round2(pctOf(variance, forecast)),
			Status:      status,
		})

		// Summary totals accumulate raw values; rounding is for output only.
		totalActual += actual
		totalForecast += forecast
	}

	totalVariance := totalActual - totalForecast

	years, err := e.reader.YearsPresent(ctx)
	if err != nil {
		return nil, fmt.Errorf("read years present: %w", err)
	}

	return ForecastOutput{
		Status:  StatusSuccess,
		Year:    req.year,
		Period:  string(req.granularity),
		Results: rows,
		Summary: ForecastSummary{
			TotalActual:      core.Round2(totalActual),
			TotalForecast:    core.Round2(totalForecast),
			TotalVariance:    core.Round2(totalVariance),
			TotalVariancePct: core.Round2(pctOf(totalVariance, totalForecast)),
		},
		// Availability tracks actual data only; a forecast with zero
		// actuals still reports the year as missing.
		Availability: yearAvailability(years, req.year),
	}, nil
}
