// Package worker consumes report requests, runs the metrics engine, and
// hands the result to an export target.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"salesmetrics/internal/amqp"
	"salesmetrics/internal/export"
	"salesmetrics/internal/metrics"
)

type ReportWorker struct {
	engine *metrics.Engine
	writer export.ReportWriter
}

func NewReportWorker(engine *metrics.Engine, writer export.ReportWriter) *ReportWorker {
	return &ReportWorker{
		engine: engine,
		writer: writer,
	}
}

// HandleReportRequest processes a single report request from AMQP.
// Store failures return an error so the message is requeued; validation
// failures are terminal and their error envelope is exported as-is.
func (w *ReportWorker) HandleReportRequest(ctx context.Context, msg *amqp.ReportRequestMessage) error {
	slog.InfoContext(ctx, "Processing report request",
		"request_id", msg.RequestID,
		"metric_kind", msg.Input.MetricKind)

	out := w.engine.Calculate(ctx, msg.Input)

	if eo, ok := out.(metrics.ErrorOutput); ok && eo.StoreFailure() {
		return fmt.Errorf("calculate metric: %s", eo.Message)
	}

	if w.writer == nil {
		slog.WarnContext(ctx, "No report writer configured, skipping export",
			"request_id", msg.RequestID)
		return nil
	}

	if err := w.writer.WriteReport(ctx, msg.RequestID, out); err != nil {
		return fmt.Errorf("export report: %w", err)
	}

	return nil
}
