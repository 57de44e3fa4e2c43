package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"salesmetrics/internal/amqp"
	"salesmetrics/internal/metrics"
)

// handleCalculate computes one metric. The response body is always a result
// envelope; error envelopes carry 400 (validation) or 502 (store failure).
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.UseNumber()

	var in metrics.Input
	if err := dec.Decode(&in); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, metrics.ErrorOutput{
			Status:  metrics.StatusError,
			Message: "invalid JSON body: " + err.Error(),
		})
		return
	}

	out := s.engine.Calculate(ctx, in)

	status := http.StatusOK
	if eo, ok := out.(metrics.ErrorOutput); ok {
		status = http.StatusBadRequest
		if eo.StoreFailure() {
			status = http.StatusBadGateway
		}
		slog.WarnContext(ctx, "Metric request failed",
			"metric_kind", in.MetricKind,
			"message", eo.Message)
	}
	writeJSON(ctx, w, status, out)
}

// handleEnqueueReport accepts the same body as handleCalculate but defers
// the computation to the report worker over AMQP. The input travels raw;
// the worker validates it on the consuming side.
func (s *Server) handleEnqueueReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if s.publisher == nil {
		writeJSON(ctx, w, http.StatusServiceUnavailable, metrics.ErrorOutput{
			Status:  metrics.StatusError,
			Message: "report queue is not configured",
		})
		return
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.UseNumber()

	var in metrics.Input
	if err := dec.Decode(&in); err != nil {
		writeJSON(ctx, w, http.StatusBadRequest, metrics.ErrorOutput{
			Status:  metrics.StatusError,
			Message: "invalid JSON body: " + err.Error(),
		})
		return
	}

	msg := amqp.NewReportRequestMessage(in)
	if err := s.publisher.PublishReportRequest(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish report request",
			"request_id", msg.RequestID,
			"error", err)
		writeJSON(ctx, w, http.StatusBadGateway, metrics.ErrorOutput{
			Status:  metrics.StatusError,
			Message: "failed to enqueue report request",
		})
		return
	}

	writeJSON(ctx, w, http.StatusAccepted, map[string]string{"request_id": msg.RequestID})
}

// handleYears reports the distinct years present in the dataset.
func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	years, err := s.reader.YearsPresent(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to read years present", "error", err)
		writeJSON(ctx, w, http.StatusBadGateway, metrics.ErrorOutput{
			Status:  metrics.StatusError,
			Message: err.Error(),
		})
		return
	}
	if years == nil {
		years = []int{}
	}

	writeJSON(ctx, w, http.StatusOK, map[string][]int{"years": years})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(ctx, "Failed to encode response", "error", err)
	}
}
