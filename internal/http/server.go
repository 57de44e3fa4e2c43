// Package http exposes the metrics engine over a small JSON API.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"salesmetrics/internal/amqp"
	"salesmetrics/internal/metrics"
)

// ReportPublisher enqueues report requests for asynchronous processing.
// A nil publisher disables the reports endpoint.
type ReportPublisher interface {
	PublishReportRequest(ctx context.Context, msg *amqp.ReportRequestMessage) error
}

type Server struct {
	http.Server
	engine    *metrics.Engine
	reader    metrics.SalesReader
	publisher ReportPublisher
}

func NewServer(addr string, engine *metrics.Engine, reader metrics.SalesReader, publisher ReportPublisher) *Server {
	s := &Server{engine: engine, reader: reader, publisher: publisher}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/metrics", s.handleCalculate)
	mux.HandleFunc("/api/v1/reports", s.handleEnqueueReport)
	mux.HandleFunc("/api/v1/years", s.handleYears)
	mux.HandleFunc("/healthz", s.handleHealth)

	s.Server = http.Server{
		Addr:    addr,
		Handler: requestLogger(mux),
	}
	return s
}

// statusRecorder captures the status code a handler wrote.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestLogger tags every request with an ID and logs method, path,
// status, and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := generateRequestID()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		slog.InfoContext(r.Context(), "Request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status_code", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
