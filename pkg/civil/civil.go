// Package civil implements proleptic Gregorian calendar arithmetic on a
// linear day count anchored at the Unix epoch (1970-01-01 = day 0).
//
// The conversions between the day count and (year, month, day) run in
// constant time: a single integer division by the 400-year cycle length
// (146097 days) followed by a closed-form decomposition of the remainder,
// with March treated as the first month of an internal year so the leap day
// falls at the end. There are no loops over years or months.
package civil

import (
	"errors"
	"math"
)

// daysPerEra is the number of days in one 400-year Gregorian cycle.
const daysPerEra = 146097

// epochShift moves day 0 from 1970-01-01 to 0000-03-01, the start of an era.
const epochShift = 719468

// MinYear and MaxYear bound the supported year range.
const (
	MinYear = math.MinInt32
	MaxYear = math.MaxInt32
)

// ErrOutOfRange reports a day count whose year does not fit the supported
// int32 year range.
var ErrOutOfRange = errors.New("day count outside the supported year range")

// cumulativeDays[m-1] is the number of days preceding month m in a common year.
var cumulativeDays = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// FromDays converts a day count relative to 1970-01-01 into a calendar date.
// It is the exact inverse of ToDays over the supported year range.
func FromDays(days int64) (year int32, month, day int, err error) {
	z := days + epochShift
	era := floorDiv(z, daysPerEra)
	doe := z - era*daysPerEra                                    // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365       // [0, 399]
	y := yoe + era*400                                           // March-first year
	doy := doe - (365*yoe + yoe/4 - yoe/100)                     // [0, 365]
	mp := (5*doy + 2) / 153                                      // March=0 .. Feb=11
	d := doy - (153*mp+2)/5 + 1                                  // [1, 31]
	m := mp + 3 - 12*boolToInt64(mp >= 10)                       // [1, 12]
	y += boolToInt64(m <= 2)

	if y < MinYear || y > MaxYear {
		return 0, 0, 0, ErrOutOfRange
	}
	return int32(y), int(m), int(d), nil
}

// ToDays converts a calendar date into its day count relative to 1970-01-01.
// The input must be a valid date; use DaysInMonth to validate beforehand.
func ToDays(year int32, month, day int) int64 {
	y := int64(year) - boolToInt64(month <= 2)
	era := floorDiv(y, 400)
	yoe := y - era*400                                  // [0, 399]
	mp := (int64(month) + 9) % 12                       // March=0 .. Feb=11
	doy := (153*mp+2)/5 + int64(day) - 1                // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy              // [0, 146096]
	return era*daysPerEra + doe - epochShift
}

// Weekday returns the ISO weekday number (Monday = 1 .. Sunday = 7) for a
// day count. 1970-01-01 (day 0) was a Thursday.
func Weekday(days int64) int {
	return int(floorMod(days+3, 7)) + 1
}

// Ordinal returns the 1-based day of year for a valid calendar date.
func Ordinal(year int32, month, day int) int {
	ord := cumulativeDays[month-1] + day
	if month > 2 && IsLeapYear(year) {
		ord++
	}
	return ord
}

// IsLeapYear reports whether a year is a Gregorian leap year: divisible by 4
// and either not divisible by 100 or divisible by 400.
func IsLeapYear(year int32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of the given
// year, or 0 if month is outside 1..12.
func DaysInMonth(year int32, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// floorDiv returns the floor of a/b for positive b.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

// floorMod returns a mod b in [0, b) for positive b.
func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func boolToInt64(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
