package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// A request dated today must never read as past, whatever the server
// timezone: ParseDate and Today have to share a location.
func TestParseDateMatchesTodayFrame(t *testing.T) {
	today := time.Now().Format("2006-01-02")

	parsed, err := ParseDate(today)
	assert.NoError(t, err)
	assert.False(t, parsed.Before(Today()))
	assert.Equal(t, Today(), parsed)
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	_, err := ParseDate("15-08-2026")
	assert.Error(t, err)

	_, err = ParseDate("2026/08/15")
	assert.Error(t, err)
}

func TestTodayIsMidnight(t *testing.T) {
	today := Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, 0, today.Second())
}
