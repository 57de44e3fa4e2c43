package worker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"salesmetrics/internal/amqp"
	"salesmetrics/internal/core"
	"salesmetrics/internal/export/memory"
	"salesmetrics/internal/metrics"
)

type stubReader struct {
	sums  map[int]float64
	years []int
	err   error
}

func (r *stubReader) SumsByPeriod(ctx context.Context, year int, g core.Granularity) (map[int]float64, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.sums, nil
}

func (r *stubReader) CategorySums(ctx context.Context, year int, g core.Granularity, periodNumber int) ([]core.CategoryTotal, error) {
	if r.err != nil {
		return nil, r.err
	}
	return nil, nil
}

func (r *stubReader) YearsPresent(ctx context.Context) ([]int, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.years, nil
}

func TestHandleReportRequestExportsResult(t *testing.T) {
	reader := &stubReader{
		sums:  map[int]float64{1: 100, 2: 150},
		years: []int{2025},
	}
	writer := memory.New()
	w := NewReportWorker(metrics.NewEngine(reader), writer)

	msg := amqp.NewReportRequestMessage(metrics.Input{
		MetricKind: string(metrics.KindGrowth),
		Year:       2025,
	})
	if err := w.HandleReportRequest(context.Background(), msg); err != nil {
		t.Fatalf("HandleReportRequest: %v", err)
	}

	reports := writer.Reports()
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	if reports[0].RequestID != msg.RequestID {
		t.Errorf("RequestID = %q, want %q", reports[0].RequestID, msg.RequestID)
	}
	out, ok := reports[0].Output.(metrics.GrowthOutput)
	if !ok {
		t.Fatalf("Output is %T, want GrowthOutput", reports[0].Output)
	}
	if out.Status != metrics.StatusSuccess {
		t.Errorf("status = %q, want success", out.Status)
	}
}

func TestHandleReportRequestExportsValidationError(t *testing.T) {
	writer := memory.New()
	w := NewReportWorker(metrics.NewEngine(&stubReader{}), writer)

	msg := amqp.NewReportRequestMessage(metrics.Input{
		MetricKind: "unknown_kind",
		Year:       2025,
	})
	if err := w.HandleReportRequest(context.Background(), msg); err != nil {
		t.Fatalf("HandleReportRequest: %v", err)
	}

	reports := writer.Reports()
	if len(reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(reports))
	}
	eo, ok := reports[0].Output.(metrics.ErrorOutput)
	if !ok {
		t.Fatalf("Output is %T, want ErrorOutput", reports[0].Output)
	}
	if eo.StoreFailure() {
		t.Error("validation error flagged as store failure")
	}
}

func TestHandleReportRequestStoreFailureRequeues(t *testing.T) {
	writer := memory.New()
	reader := &stubReader{err: errors.New("database is locked")}
	w := NewReportWorker(metrics.NewEngine(reader), writer)

	msg := amqp.NewReportRequestMessage(metrics.Input{
		MetricKind: string(metrics.KindGrowth),
		Year:       2025,
	})
	err := w.HandleReportRequest(context.Background(), msg)
	if err == nil {
		t.Fatal("want error for store failure")
	}
	if !strings.Contains(err.Error(), "database is locked") {
		t.Errorf("error = %v, want it to carry the store error", err)
	}
	if got := len(writer.Reports()); got != 0 {
		t.Errorf("got %d reports, want 0", got)
	}
}

func TestHandleReportRequestNoWriter(t *testing.T) {
	reader := &stubReader{
		sums:  map[int]float64{1: 100},
		years: []int{2025},
	}
	w := NewReportWorker(metrics.NewEngine(reader), nil)

	msg := amqp.NewReportRequestMessage(metrics.Input{
		MetricKind: string(metrics.KindGrowth),
		Year:       2025,
	})
	if err := w.HandleReportRequest(context.Background(), msg); err != nil {
		t.Fatalf("HandleReportRequest: %v", err)
	}
}
