package utils

import (
	"time"

	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// ParseDate reads a YYYY-MM-DD value as local midnight, the same frame
// Today uses, so date-only comparisons never straddle a timezone.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, value, time.Local)
}

func ToDate(t time.Time) datatypes.Date {
	return datatypes.Date(t)
}

// Today truncates to midnight so date-only comparisons do not reject
// requests made later the same day.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
