package utils

import "time"

// DayKey returns the calendar-day key for t in the server's local time zone
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Timestamp formats t the way chat payloads carry message times
func Timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
