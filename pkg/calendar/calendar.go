// Package calendar parses and formats the compact date texts used by the
// ledger: YYYYMMDD for dates and YYYYMM for statement months.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

const (
	dateLayout      = "20060102"
	yearMonthLayout = "200601"
)

var (
	// ErrInvalidDate is returned when a text is not an 8 digit, valid calendar date.
	ErrInvalidDate = errors.New("date should be in YYYYMMdd format")
	// ErrInvalidYearMonth is returned when a text is not a 6 digit, valid year and month.
	ErrInvalidYearMonth = errors.New("year and month should be in YYYYMM format")
)

// ParseDate parses an 8 digit YYYYMMDD text. Dates that do not exist, such
// as 20230230, are rejected.
func ParseDate(text string) (civil.Date, error) {
	if !allDigits(text, len(dateLayout)) {
		return civil.Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	t, err := time.Parse(dateLayout, text)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
	}
	return civil.DateOf(t), nil
}

// ParseYearMonth parses a 6 digit YYYYMM text and returns the first day of that month.
func ParseYearMonth(text string) (civil.Date, error) {
	if !allDigits(text, len(yearMonthLayout)) {
		return civil.Date{}, fmt.Errorf("%w: %q", ErrInvalidYearMonth, text)
	}
	t, err := time.Parse(yearMonthLayout, text)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %q", ErrInvalidYearMonth, text)
	}
	return civil.DateOf(t), nil
}

// Format renders d as YYYYMMDD.
func Format(d civil.Date) string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// StartOfMonth returns the first day of d's month.
func StartOfMonth(d civil.Date) civil.Date {
	return civil.Date{Year: d.Year, Month: d.Month, Day: 1}
}

// EndOfMonth returns the last day of d's month.
func EndOfMonth(d civil.Date) civil.Date {
	return civil.DateOf(time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC))
}

// Compare returns -1, 0 or +1 depending on whether a is before, equal to or after b.
func Compare(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// Within reports whether from <= d <= to.
func Within(d, from, to civil.Date) bool {
	return !d.Before(from) && !d.After(to)
}

func allDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
