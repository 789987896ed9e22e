package utils

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseTradeDate parses the YYYY-MM-DD dates used throughout the API and the
// database. An empty string is an error; dates are load-bearing for the
// cost basis ordering.
func ParseTradeDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// FormatOptionExpiry renders an expiration date in the broker statement
// format used in ledger descriptions, e.g. "17-JAN-25".
func FormatOptionExpiry(t time.Time) string {
	return strings.ToUpper(t.Format("02-Jan-06"))
}

// CalendarDaysBetween returns whole calendar days from a to b.
func CalendarDaysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
