package metrics

import (
	"context"
	"fmt"
)

// Engine computes sales metrics against a SalesReader. It holds no state
// beyond the reader; every call owns its own inputs and result.
type Engine struct {
	reader SalesReader
}

func NewEngine(reader SalesReader) *Engine {
	return &Engine{reader: reader}
}

// Calculate validates the raw input and dispatches to the calculator for
// its metric kind. Failures of every class (validation, unknown kind,
// store) come back as an ErrorOutput envelope rather than a fault, and a
// failed request returns only the error envelope, never partial results.
func (e *Engine) Calculate(ctx context.Context, in Input) Output {
	req, err := parseInput(in)
	if err != nil {
		return newValidationError(err.Error())
	}

	var (
		out     Output
		calcErr error
	)
	switch req.kind {
	case KindForecastComparison:
		out, calcErr = e.forecastComparison(ctx, req)
	case KindYoYComparison:
		out, calcErr = e.yoyComparison(ctx, req)
	case KindGrowth:
		out, calcErr = e.growth(ctx, req)
	case KindCategoryBreakdown:
		out, calcErr = e.categoryBreakdown(ctx, req)
	default:
		// parseInput admits only the four kinds above.
		return newValidationError(fmt.Sprintf("unknown metric_kind %q", req.kind))
	}
	if calcErr != nil {
		return newStoreError(calcErr)
	}
	return out
}
