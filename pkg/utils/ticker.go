// Package utils provides small shared helpers for tickers and timestamps.
package utils

import (
	"strings"
	"time"
)

// NormalizeTicker canonicalizes a user-supplied ticker symbol.
// Tickers are treated case-insensitively and stored upper-cased.
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// UTCTimestamp formats t as an ISO-8601 UTC string, the format used for
// historical sentiment samples.
func UTCTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// NowUTC returns the current time formatted with UTCTimestamp.
func NowUTC() string {
	return UTCTimestamp(time.Now())
}
