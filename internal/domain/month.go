package domain

import (
	"regexp"
	"time"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// SanitizeMonth validates a YYYY-MM month selector. Malformed or
// out-of-range values silently fall back to the current UTC month.
func SanitizeMonth(month string, now time.Time) string {
	if monthPattern.MatchString(month) {
		return month
	}
	return now.UTC().Format("2006-01")
}

// MonthRange returns the half-open UTC interval [from, to) covering the
// given sanitized YYYY-MM month.
func MonthRange(month string) (from, to time.Time) {
	from, err := time.Parse("2006-01", month)
	if err != nil {
		from = time.Now().UTC()
		from = time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return from, from.AddDate(0, 1, 0)
}
