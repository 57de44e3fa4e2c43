package metrics

import "testing"

func TestTabulate_Forecast(t *testing.T) {
	out := ForecastOutput{
		Status: StatusSuccess,
		Year:   2025,
		Period: "monthly",
		Results: []ForecastRow{
			{PeriodRef: PeriodRef{"January", 1}, Actual: 52000, Forecast: 55000, Variance: -3000, VariancePct: -5.45, Status: BelowForecast},
		},
		Summary: ForecastSummary{TotalActual: 52000, TotalForecast: 55000, TotalVariance: -3000, TotalVariancePct: -5.45},
	}

	header, rows := Tabulate(out)
	if len(header) != 6 || header[0] != "period" {
		t.Errorf("header = %v", header)
	}
	// One data row plus the totals row.
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][0] != "January" || rows[1][0] != "total" {
		t.Errorf("rows = %v", rows)
	}
}

func TestTabulate_GrowthNullsRenderEmpty(t *testing.T) {
	out := GrowthOutput{
		Status: StatusSuccess,
		Year:   2025,
		Period: "monthly",
		Results: []GrowthRow{
			{PeriodRef: PeriodRef{"January", 1}, Current: 100},
		},
		Summary: GrowthSummary{},
	}

	_, rows := Tabulate(out)
	if rows[0][2] != "" || rows[0][3] != "" {
		t.Errorf("undefined previous/growth should render as empty cells, got %v", rows[0])
	}
	if rows[1][3] != "" {
		t.Errorf("undefined average should render as empty cell, got %v", rows[1])
	}
}

func TestTabulate_Error(t *testing.T) {
	header, rows := Tabulate(ErrorOutput{Status: StatusError, Message: "boom"})
	if len(header) != 2 || len(rows) != 1 {
		t.Fatalf("header = %v rows = %v", header, rows)
	}
	if rows[0][1] != "boom" {
		t.Errorf("rows = %v", rows)
	}
}
