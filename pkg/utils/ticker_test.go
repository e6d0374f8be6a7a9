package utils

import (
	"testing"
	"time"
)

func TestNormalizeTicker(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aapl", "AAPL"},
		{" msft ", "MSFT"},
		{"GOOG", "GOOG"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTicker(tt.in); got != tt.want {
			t.Errorf("NormalizeTicker(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUTCTimestamp(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2024, 3, 1, 15, 30, 0, 0, loc)
	got := UTCTimestamp(in)
	if got != "2024-03-01T10:00:00Z" {
		t.Errorf("UTCTimestamp = %q, want %q", got, "2024-03-01T10:00:00Z")
	}
	if _, err := time.Parse(time.RFC3339, got); err != nil {
		t.Errorf("timestamp not RFC3339: %v", err)
	}
}
