package amqp

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"salesmetrics/internal/metrics"
)

// ReportRequestMessage asks the report worker to compute one metric and
// export the result. Input travels raw; the engine validates it on the
// consuming side.
type ReportRequestMessage struct {
	RequestID   string        `json:"request_id"`
	RequestedAt time.Time     `json:"requested_at"`
	Input       metrics.Input `json:"input"`
}

func NewReportRequestMessage(in metrics.Input) *ReportRequestMessage {
	return &ReportRequestMessage{
		RequestID:   newRequestID(),
		RequestedAt: time.Now(),
		Input:       in,
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ReportRequestMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ReportRequestMessageFromJSON creates a message from JSON bytes.
func ReportRequestMessageFromJSON(data []byte) (*ReportRequestMessage, error) {
	var msg ReportRequestMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

func newRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return time.Now().Format("20060102150405.000000000")
	}
	return hex.EncodeToString(bytes)
}
