package temporal

import (
	"fmt"

	"github.com/coolbeans/tempo/pkg/civil"
)

// Date is a proleptic Gregorian calendar date, independent of any time zone.
// Construct with NewDate or ParseDate; the zero value is not a valid date.
type Date struct {
	Year  int32
	Month int // 1..12
	Day   int // 1..days in month
}

// NewDate builds a date, validating month and day against the calendar.
func NewDate(year int32, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, newDateError("month", int64(month), 1, 12)
	}
	dim := civil.DaysInMonth(year, month)
	if day < 1 || day > dim {
		return Date{}, newDateError("day", int64(day), 1, int64(dim))
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// DateFromDaysSinceUnixEpoch converts a day count (1970-01-01 = 0) to a
// date.
func DateFromDaysSinceUnixEpoch(days int64) (Date, error) {
	year, month, day, err := civil.FromDays(days)
	if err != nil {
		// Day counts whose year leaves the int32 range are an overflow of
		// the supported representation, not a malformed component.
		return Date{}, &OverflowError{Op: "DateFromDaysSinceUnixEpoch"}
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// DaysSinceUnixEpoch returns the day count for this date, with 1970-01-01
// as day 0 and earlier dates negative.
func (d Date) DaysSinceUnixEpoch() int64 {
	return civil.ToDays(d.Year, d.Month, d.Day)
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int64) (Date, error) {
	base := d.DaysSinceUnixEpoch()
	sum, ok := addInt64(base, n)
	if !ok {
		return Date{}, &OverflowError{Op: "Date.AddDays"}
	}
	return DateFromDaysSinceUnixEpoch(sum)
}

// Weekday returns the ISO day of week for this date.
func (d Date) Weekday() Weekday {
	return Weekday(civil.Weekday(d.DaysSinceUnixEpoch()))
}

// Ordinal returns the 1-based day of year, 1..365 (366 in leap years).
func (d Date) Ordinal() int {
	return civil.Ordinal(d.Year, d.Month, d.Day)
}

// Compare orders two dates chronologically: -1 if d is earlier than other,
// 0 if equal, +1 if later.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return compareInt64(int64(d.Year), int64(other.Year))
	case d.Month != other.Month:
		return compareInt64(int64(d.Month), int64(other.Month))
	default:
		return compareInt64(int64(d.Day), int64(other.Day))
	}
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool { return d == other }

// String formats the date as YYYY-MM-DD, zero-padding the year to at least
// four digits and prefixing a sign for negative years.
func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -int64(d.Year), d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ParseDate parses the fixed-width pattern YYYY-MM-DD. The year may carry a
// leading minus sign and more than four digits for years outside 0..9999.
func ParseDate(s string) (Date, error) {
	d, pos, err := parseDateAt(s, 0)
	if err != nil {
		return Date{}, err
	}
	if pos != len(s) {
		return Date{}, &ParseError{Input: s, Pos: pos, Expected: "end of input"}
	}
	return d, nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
