package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTradeDate(t *testing.T) {
	parsed, err := ParseTradeDate("2025-01-17")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 17, parsed.Day())

	_, err = ParseTradeDate("")
	assert.Error(t, err)

	_, err = ParseTradeDate("01/17/2025")
	assert.Error(t, err)
}

func TestFormatOptionExpiry(t *testing.T) {
	expiry, err := ParseTradeDate("2025-01-17")
	require.NoError(t, err)
	assert.Equal(t, "17-JAN-25", FormatOptionExpiry(expiry))
}

func TestCalendarDaysBetween(t *testing.T) {
	a, _ := ParseTradeDate("2025-01-02")
	b, _ := ParseTradeDate("2025-02-01")
	assert.Equal(t, 30, CalendarDaysBetween(a, b))
	assert.Equal(t, -30, CalendarDaysBetween(b, a))
	assert.Equal(t, 0, CalendarDaysBetween(a, a))
}
