package queryfilter

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"epicevents/pkg/apperrors"
)

// ParseDay parses a query-parameter date written as year, month, day digits
// separated by '-', '/' or '.'. The result is the midnight of that calendar
// day in UTC. Dates that do not exist (month 13, February 31) are rejected.
func ParseDay(raw string) (time.Time, error) {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '-' || r == '/' || r == '.'
	})
	if len(parts) != 3 {
		return time.Time{}, apperrors.NewInvalidQueryParamError("Date must be year-month-day, separated by '-', '/' or '.'")
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, apperrors.NewInvalidQueryParamError("Date parts must be numeric")
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// time.Date normalizes out-of-range components, so a round-trip
	// mismatch means the calendar day does not exist.
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, apperrors.NewInvalidQueryParamError("Date does not exist")
	}
	return date, nil
}

// DayRange restricts column to the calendar day of date, ignoring the
// time of day stored in the column.
func DayRange(column string, date time.Time) func(*gorm.DB) *gorm.DB {
	start := date
	end := date.AddDate(0, 0, 1)
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" >= ? AND "+column+" < ?", start, end)
	}
}
