// Package datekey handles the calendar-date keys used to address day records
// and holiday entries. Canonical form is YYYY-MM-DD; the spreadsheet still
// holds legacy unpadded YYYY-M-D keys from earlier revisions of the system,
// so both must resolve to the same logical day.
package datekey

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const layout = "2006-01-02"

// Format renders a date as a canonical key.
func Format(t time.Time) string {
	return t.Format(layout)
}

// Parse reads a canonical or legacy key into a civil date (midnight UTC).
func Parse(key string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(key), "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date key %q", key)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q", key)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("invalid date key %q", key)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date key %q", key)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// Normalize maps any accepted key form onto the canonical one.
func Normalize(key string) (string, error) {
	t, err := Parse(key)
	if err != nil {
		return "", err
	}
	return Format(t), nil
}

// ParseMonth reads a YYYY-MM value.
func ParseMonth(key string) (year int, month time.Month, err error) {
	t, parseErr := time.Parse("2006-01", strings.TrimSpace(key))
	if parseErr != nil {
		return 0, 0, fmt.Errorf("invalid month key %q", key)
	}
	return t.Year(), t.Month(), nil
}

// MonthPrefix returns the canonical key prefix shared by every day of a
// month, e.g. "2025-09-".
func MonthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d-", year, month)
}

// MonthDay returns the year-independent MM-DD key used by the fixed national
// holiday table.
func MonthDay(t time.Time) string {
	return t.Format("01-02")
}
