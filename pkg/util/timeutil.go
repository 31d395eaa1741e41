package util

import "time"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Timestamp renders t in UTC using RFC 3339 with nanoseconds.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
