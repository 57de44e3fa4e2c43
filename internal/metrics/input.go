package metrics

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"salesmetrics/internal/core"
)

// Kind identifies one of the four supported analyses.
type Kind string

const (
	KindForecastComparison Kind = "forecast_comparison"
	KindYoYComparison      Kind = "yoy_comparison"
	KindGrowth             Kind = "growth"
	KindCategoryBreakdown  Kind = "category_breakdown"
)

// Input carries raw caller parameters. Numeric fields are loosely typed so
// that JSON numbers, json.Number values, and numeric strings are all
// accepted; parseInput coerces them before any calculation runs.
type Input struct {
	MetricKind     string         `json:"metric_kind"`
	Year           any            `json:"year"`
	Granularity    string         `json:"granularity,omitempty"`
	PeriodNumber   any            `json:"period_number,omitempty"`
	ForecastValues map[string]any `json:"forecast_values,omitempty"`
	CompareYear    any            `json:"compare_year,omitempty"`
}

// request is a fully validated metric request. Optional integers use zero
// as "absent": neither a period number nor a year may legitimately be zero.
type request struct {
	kind         Kind
	year         int
	granularity  core.Granularity
	periodNumber int
	forecast     map[int]float64
	compareYear  int
}

// parseInput normalizes and type-checks caller parameters, failing fast
// before any store read or arithmetic.
func parseInput(in Input) (request, error) {
	var req request

	switch Kind(in.MetricKind) {
	case KindForecastComparison, KindYoYComparison, KindGrowth, KindCategoryBreakdown:
		req.kind = Kind(in.MetricKind)
	default:
		return req, fmt.Errorf("unknown metric_kind %q: use one of %s, %s, %s, %s",
			in.MetricKind, KindForecastComparison, KindYoYComparison, KindGrowth, KindCategoryBreakdown)
	}

	year, ok, err := coerceInt(in.Year)
	if err != nil {
		return req, fmt.Errorf("year: %w", err)
	}
	if !ok {
		return req, fmt.Errorf("year is required")
	}
	req.year = year

	g, err := core.ParseGranularity(in.Granularity)
	if err != nil {
		return req, err
	}
	req.granularity = g

	if req.periodNumber, _, err = coerceInt(in.PeriodNumber); err != nil {
		return req, fmt.Errorf("period_number: %w", err)
	}
	if req.compareYear, _, err = coerceInt(in.CompareYear); err != nil {
		return req, fmt.Errorf("compare_year: %w", err)
	}
	if req.forecast, err = parseForecastValues(in.ForecastValues); err != nil {
		return req, err
	}

	switch req.kind {
	case KindForecastComparison:
		if len(req.forecast) == 0 {
			return req, fmt.Errorf("forecast_values is required for %s", KindForecastComparison)
		}
	case KindYoYComparison:
		if req.compareYear == 0 {
			return req, fmt.Errorf("compare_year is required for %s", KindYoYComparison)
		}
	case KindCategoryBreakdown:
		if req.periodNumber == 0 {
			return req, fmt.Errorf("period_number is required for %s", KindCategoryBreakdown)
		}
	}

	return req, nil
}

// parseForecastValues coerces a raw forecast map into typed (period, amount)
// pairs, rejecting non-numeric keys and values instead of deferring the
// failure into arithmetic.
func parseForecastValues(raw map[string]any) (map[int]float64, error) {
	if raw == nil {
		return nil, nil
	}
	forecast := make(map[int]float64, len(raw))
	for k, v := range raw {
		p, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("forecast_values: period key %q is not an integer", k)
		}
		amount, ok, err := coerceFloat(v)
		if err != nil || !ok {
			return nil, fmt.Errorf("forecast_values: value for period %d is not numeric", p)
		}
		forecast[p] = amount
	}
	return forecast, nil
}

// coerceInt converts the loosely typed values a JSON boundary can produce
// into an int. It reports ok=false for nil (absent) values and an error for
// present but non-integer ones.
func coerceInt(v any) (int, bool, error) {
	switch n := v.(type) {
	case nil:
		return 0, false, nil
	case int:
		return n, true, nil
	case int64:
		return int(n), true, nil
	case float64:
		if n != float64(int(n)) {
			return 0, false, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), true, nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false, fmt.Errorf("%q is not an integer", n.String())
		}
		return int(i), true, nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false, fmt.Errorf("%q is not an integer", n)
		}
		return i, true, nil
	default:
		return 0, false, fmt.Errorf("%v is not an integer", v)
	}
}

// coerceFloat converts a loosely typed value into a float64.
func coerceFloat(v any) (float64, bool, error) {
	switch n := v.(type) {
	case nil:
		return 0, false, nil
	case int:
		return float64(n), true, nil
	case int64:
		return float64(n), true, nil
	case float64:
		return n, true, nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false, fmt.Errorf("%q is not numeric", n.String())
		}
		return f, true, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false, fmt.Errorf("%q is not numeric", n)
		}
		return f, true, nil
	default:
		return 0, false, fmt.Errorf("%v is not numeric", v)
	}
}
