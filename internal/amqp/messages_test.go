package amqp

import (
	"testing"

	"salesmetrics/internal/metrics"
)

func TestReportRequestMessageRoundTrip(t *testing.T) {
	msg := NewReportRequestMessage(metrics.Input{
		MetricKind:  string(metrics.KindCategoryBreakdown),
		Year:        2025,
		Granularity: "quarterly",
	})
	if msg.RequestID == "" {
		t.Fatal("RequestID is empty")
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	decoded, err := ReportRequestMessageFromJSON(data)
	if err != nil {
		t.Fatalf("ReportRequestMessageFromJSON: %v", err)
	}
	if decoded.RequestID != msg.RequestID {
		t.Errorf("RequestID = %q, want %q", decoded.RequestID, msg.RequestID)
	}
	if decoded.Input.MetricKind != string(metrics.KindCategoryBreakdown) {
		t.Errorf("MetricKind = %q, want %q", decoded.Input.MetricKind, metrics.KindCategoryBreakdown)
	}
	if decoded.Input.Granularity != "quarterly" {
		t.Errorf("Granularity = %q, want quarterly", decoded.Input.Granularity)
	}
}

func TestReportRequestMessageFromJSONInvalid(t *testing.T) {
	if _, err := ReportRequestMessageFromJSON([]byte("{broken")); err == nil {
		t.Fatal("want error for malformed JSON")
	}
}

func TestNewRequestIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := newRequestID()
		if seen[id] {
			t.Fatalf("duplicate request ID %q", id)
		}
		seen[id] = true
	}
}
