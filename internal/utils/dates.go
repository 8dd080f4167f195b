package utils

import "time"

// ParseDate parses ISO 8601 input (YYYY-MM-DD or RFC3339). Trips are
// day-granular, so any time-of-day in the input is discarded and the result is
// always midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// FormatDate renders a date as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTimestamp renders a timestamp as RFC3339
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
