// Package export defines the outbound boundary for rendered metric reports.
package export

import (
	"context"

	"salesmetrics/internal/metrics"
)

// ReportWriter writes one computed result envelope to an export target.
type ReportWriter interface {
	WriteReport(ctx context.Context, requestID string, out metrics.Output) error
}
