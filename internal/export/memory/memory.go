// Package memory is an in-memory report writer used in tests and when no
// spreadsheet is configured.
package memory

import (
	"context"
	"sync"

	"salesmetrics/internal/export"
	"salesmetrics/internal/metrics"
)

type Report struct {
	RequestID string
	Output    metrics.Output
}

type Writer struct {
	mu      sync.Mutex
	reports []Report
}

var _ export.ReportWriter = (*Writer)(nil)

func New() *Writer {
	return &Writer{}
}

func (w *Writer) WriteReport(_ context.Context, requestID string, out metrics.Output) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reports = append(w.reports, Report{RequestID: requestID, Output: out})
	return nil
}

// Reports returns a copy of everything written so far.
func (w *Writer) Reports() []Report {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Report, len(w.reports))
	copy(out, w.reports)
	return out
}
