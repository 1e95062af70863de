package utils

import "time"

// layoutISO matches the millisecond UTC form stored on bookings.
const layoutISO = "2006-01-02T15:04:05.000Z07:00"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatISO renders t as ISO-8601 in UTC, e.g. 2024-05-01T10:00:00.000Z.
func FormatISO(t time.Time) string {
	return t.UTC().Format(layoutISO)
}
