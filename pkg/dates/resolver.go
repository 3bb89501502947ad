package dates

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrNoDateCode indicates a location string without the expected digit run.
var ErrNoDateCode = errors.New("no date code in location")

// Date code widths. Beige Book filenames embed YYYYMM, minutes and statement
// filenames embed YYYYMMDD.
const (
	WidthMonthly = 6
	WidthDaily   = 8
)

var (
	sixDigits   = regexp.MustCompile(`[0-9]{6}`)
	eightDigits = regexp.MustCompile(`[0-9]{8}`)
)

// Date is a publication date derived from a date-coded document location.
// It carries both numeric components and the literal label the historical
// dataset indexes on: locations where the character after the year is '0'
// encode a single-digit month, and the label preserves that unpadded form
// (e.g. "2019/9/01", not "2019/09/01").
type Date struct {
	Year  int
	Month int
	Day   int

	label string
}

// String returns the date label in its historical formatting.
func (d Date) String() string { return d.label }

// Time returns the date as a UTC timestamp at midnight.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Resolve derives the publication date from the first run of width digits in
// the location. It is a pure function: equal inputs yield equal dates.
// For the 6-digit form the day is synthesized as the first of the month;
// for the 8-digit form the day is taken literally from the code.
func Resolve(location string, width int) (Date, error) {
	var re *regexp.Regexp
	switch width {
	case WidthMonthly:
		re = sixDigits
	case WidthDaily:
		re = eightDigits
	default:
		return Date{}, fmt.Errorf("unsupported date code width %d", width)
	}

	code := re.FindString(location)
	if code == "" {
		return Date{}, fmt.Errorf("%q: %w", location, ErrNoDateCode)
	}

	year := code[:4]
	var month string
	if code[4] == '0' {
		// Legacy filenames zero-padded single-digit months inconsistently;
		// the archive treats the month as the single digit after the pad.
		month = code[5:6]
	} else {
		month = code[4:6]
	}

	day := "01"
	if width == WidthDaily {
		day = code[6:8]
	}

	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	dd, _ := strconv.Atoi(day)

	return Date{
		Year:  y,
		Month: m,
		Day:   dd,
		label: year + "/" + month + "/" + day,
	}, nil
}
