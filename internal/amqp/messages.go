package amqp

import (
	"encoding/json"
	"time"

	"umsatz/internal/core"
)

// RunCompletedMessage announces a finished sanitization run. It
// carries only the run metadata; consumers load the full dataset from
// the store.
type RunCompletedMessage struct {
	RunID       int64     `json:"run_id"`
	RecordCount int       `json:"record_count"`
	MonthCount  int       `json:"month_count"`
	FirstMonth  string    `json:"first_month"`
	LastMonth   string    `json:"last_month"`
	Warnings    int       `json:"warnings"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewRunCompletedMessage builds the announcement from a run's
// diagnostics.
func NewRunCompletedMessage(runID int64, diag core.Diagnostics) *RunCompletedMessage {
	return &RunCompletedMessage{
		RunID:       runID,
		RecordCount: diag.RecordCount,
		MonthCount:  diag.MonthCount,
		FirstMonth:  diag.FirstMonth.String(),
		LastMonth:   diag.LastMonth.String(),
		Warnings:    diag.Warnings(),
		Timestamp:   time.Now(),
	}
}

func (m *RunCompletedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func RunCompletedMessageFromJSON(data []byte) (*RunCompletedMessage, error) {
	var msg RunCompletedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
