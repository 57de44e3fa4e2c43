// Package core defines the domain vocabulary shared across the service:
// granularities, period math, rounding, and record types.
package core

import (
	"fmt"
	"math"
	"time"
)

// Granularity selects how sales records are bucketed into periods.
type Granularity string

const (
	Monthly   Granularity = "monthly"
	Quarterly Granularity = "quarterly"
)

// ParseGranularity normalizes a caller-supplied granularity string.
// The empty string defaults to monthly.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case "":
		return Monthly, nil
	case Monthly:
		return Monthly, nil
	case Quarterly:
		return Quarterly, nil
	default:
		return "", fmt.Errorf("invalid granularity %q: use %q or %q", s, Monthly, Quarterly)
	}
}

// QuarterOf derives the quarter (1-4) a month (1-12) belongs to.
func QuarterOf(month int) int {
	return (month-1)/3 + 1
}

// PeriodLabel renders a human-readable label for a period number.
// Monthly periods 1-12 become month names ("January".."December");
// anything outside that range falls back to "Month {n}".
// Quarterly periods become "Q{n}".
func PeriodLabel(g Granularity, n int) string {
	if g == Quarterly {
		return fmt.Sprintf("Q%d", n)
	}
	if n >= 1 && n <= 12 {
		return time.Month(n).String()
	}
	return fmt.Sprintf("Month %d", n)
}

// Round2 rounds a monetary or percentage figure to two decimal places.
// All arithmetic runs on raw values; rounding happens only at the
// output boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
