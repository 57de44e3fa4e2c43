package metrics

import "strconv"

// Tabulate flattens a result envelope into a header plus data rows for
// tabular export targets (spreadsheets). The type switch is exhaustive
// over the envelope kinds the Engine produces; nil pointer fields render
// as empty cells to keep the null/zero distinction visible.
func Tabulate(out Output) (header []string, rows [][]any) {
	switch o := out.(type) {
	case ForecastOutput:
		header = []string{"period", "actual", "forecast", "variance", "variance_pct", "status"}
		for _, r := range o.Results {
			rows = append(rows, []any{r.PeriodLabel, r.Actual, r.Forecast, r.Variance, r.VariancePct, r.Status})
		}
		rows = append(rows, []any{"total", o.Summary.TotalActual, o.Summary.TotalForecast, o.Summary.TotalVariance, o.Summary.TotalVariancePct, ""})

	case YoYOutput:
		header = []string{"period", strconv.Itoa(o.CurrentYear), strconv.Itoa(o.CompareYear), "change", "change_pct"}
		for _, r := range o.Results {
			rows = append(rows, []any{r.PeriodLabel, r.CurrentYearValue, r.CompareYearValue, r.Change, r.ChangePct})
		}
		rows = append(rows, []any{"total", o.Summary.TotalCurrent, o.Summary.TotalCompare, o.Summary.TotalChange, o.Summary.TotalChangePct})

	case GrowthOutput:
		header = []string{"period", "current", "previous", "growth_pct"}
		for _, r := range o.Results {
			rows = append(rows, []any{r.PeriodLabel, r.Current, cellOrEmpty(r.Previous), cellOrEmpty(r.GrowthPct)})
		}
		rows = append(rows, []any{"average", "", "", cellOrEmpty(o.Summary.AverageGrowthPct)})

	case CategoryOutput:
		header = []string{"category", "amount", "percentage_of_total"}
		for _, r := range o.Results {
			rows = append(rows, []any{r.Category, r.Amount, r.PercentageOfTotal})
		}
		rows = append(rows, []any{"total", o.Summary.Total, ""})

	case ErrorOutput:
		header = []string{"status", "message"}
		rows = append(rows, []any{o.Status, o.Message})
	}
	return header, rows
}

func cellOrEmpty(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
