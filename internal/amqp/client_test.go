package amqp

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"umsatz/internal/core"
)

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second},  // capped at 30s
		{10, 30 * time.Second}, // capped at 30s
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt_%d", tt.attempt), func(t *testing.T) {
			result := exponentialBackoff(tt.attempt)
			if result != tt.expected {
				t.Errorf("exponentialBackoff(%d) = %v, want %v", tt.attempt, result, tt.expected)
			}
		})
	}
}

func TestIsConnectionError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"connection refused", errors.New("connection refused"), true},
		{"connection closed", errors.New("connection closed"), true},
		{"EOF", errors.New("unexpected EOF"), true},
		{"broken pipe", errors.New("broken pipe"), true},
		{"closed network connection", errors.New("use of closed network connection"), true},
		{"other error", errors.New("some other error"), false},
		{"validation error", errors.New("invalid input"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isConnectionError(tt.err)
			if result != tt.expected {
				t.Errorf("isConnectionError(%v) = %v, want %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestNewRunCompletedMessage(t *testing.T) {
	diag := core.Diagnostics{
		RecordCount:     12,
		MonthCount:      3,
		FirstMonth:      core.MonthKey{Year: 2023, Month: 1},
		LastMonth:       core.MonthKey{Year: 2023, Month: 3},
		UnknownCities:   2,
		NegativeRevenue: 1,
		BlankRevenue:    4,
	}
	msg := NewRunCompletedMessage(7, diag)

	if msg.RunID != 7 || msg.RecordCount != 12 || msg.MonthCount != 3 {
		t.Errorf("message = %+v", msg)
	}
	if msg.FirstMonth != "2023-01" || msg.LastMonth != "2023-03" {
		t.Errorf("month range = %s..%s", msg.FirstMonth, msg.LastMonth)
	}
	if msg.Warnings != 7 {
		t.Errorf("Warnings = %d, want sum of counters 7", msg.Warnings)
	}
	if msg.Timestamp.IsZero() || time.Since(msg.Timestamp) > time.Second {
		t.Error("Timestamp should be recent")
	}
}

func TestRunCompletedMessageJSON(t *testing.T) {
	msg := &RunCompletedMessage{
		RunID:       42,
		RecordCount: 100,
		MonthCount:  12,
		FirstMonth:  "2023-01",
		LastMonth:   "2023-12",
		Warnings:    3,
		Timestamp:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	parsed, err := RunCompletedMessageFromJSON(body)
	if err != nil {
		t.Fatalf("RunCompletedMessageFromJSON() error = %v", err)
	}
	if parsed.RunID != msg.RunID || parsed.FirstMonth != msg.FirstMonth || !parsed.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("round trip = %+v, want %+v", parsed, msg)
	}
}

func TestRunCompletedMessageInvalidJSON(t *testing.T) {
	if _, err := RunCompletedMessageFromJSON([]byte(`{"run_id": "not_a_number"}`)); err == nil {
		t.Error("RunCompletedMessageFromJSON() should fail with invalid JSON")
	}
}
