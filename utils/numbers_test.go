package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTicketNumberFormat(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^TK20260115\d{4}$`)

	for i := 0; i < 100; i++ {
		number := GenerateTicketNumber(now)
		assert.Regexp(t, pattern, number)
		assert.NotEqual(t, "TK202601150000", number)
	}
}

func TestGenerateRequestNumberFormat(t *testing.T) {
	now := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^BR20260115\d{4}$`)

	for i := 0; i < 100; i++ {
		assert.Regexp(t, pattern, GenerateRequestNumber(now))
	}
}
