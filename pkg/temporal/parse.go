package temporal

import (
	"fmt"
	"math"
)

// Strict fixed-width parsing shared by ParseDate, ParseTime, ParseDateTime
// and ParseOffsetDateTime. Each helper consumes its component starting at
// pos and returns the next position; failures carry the byte position of
// the offending input.

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// expectByte consumes one byte that must equal want or its alternate form.
func expectByte(s string, pos int, want, alt byte) (int, error) {
	if pos >= len(s) || (s[pos] != want && s[pos] != alt) {
		return 0, &ParseError{Input: s, Pos: pos, Expected: fmt.Sprintf("%q", string(want))}
	}
	return pos + 1, nil
}

// parseFixedDigits consumes exactly width ASCII digits.
func parseFixedDigits(s string, pos, width int, what string) (int, int, error) {
	if pos+width > len(s) {
		return 0, 0, &ParseError{Input: s, Pos: pos, Expected: fmt.Sprintf("%d-digit %s", width, what)}
	}
	value := 0
	for i := 0; i < width; i++ {
		c := s[pos+i]
		if !isDigit(c) {
			return 0, 0, &ParseError{Input: s, Pos: pos + i, Expected: fmt.Sprintf("digit in %s", what)}
		}
		value = value*10 + int(c-'0')
	}
	return value, pos + width, nil
}

// parseYearAt consumes a year: an optional leading minus sign followed by
// at least four digits. Years beyond four digits must not carry leading
// zeros, so formatting and parsing stay bijective.
func parseYearAt(s string, pos int) (int32, int, error) {
	start := pos
	negative := false
	if pos < len(s) && s[pos] == '-' {
		negative = true
		pos++
	}
	digStart := pos
	for pos < len(s) && isDigit(s[pos]) {
		pos++
	}
	n := pos - digStart
	if n < 4 {
		return 0, 0, &ParseError{Input: s, Pos: digStart, Expected: "4-digit year"}
	}
	if n > 4 && s[digStart] == '0' {
		return 0, 0, &ParseError{Input: s, Pos: digStart, Expected: "year without leading zeros"}
	}
	if n > 11 {
		return 0, 0, yearRangeParseError(s, start)
	}
	value := int64(0)
	for i := digStart; i < pos; i++ {
		value = value*10 + int64(s[i]-'0')
	}
	if negative {
		value = -value
	}
	if value < math.MinInt32 || value > math.MaxInt32 {
		return 0, 0, yearRangeParseError(s, start)
	}
	return int32(value), pos, nil
}

func yearRangeParseError(s string, pos int) error {
	return &ParseError{
		Input: s,
		Pos:   pos,
		Err:   newDateError("year", 0, math.MinInt32, math.MaxInt32),
	}
}

// parseDateAt consumes YYYY-MM-DD.
func parseDateAt(s string, pos int) (Date, int, error) {
	year, pos, err := parseYearAt(s, pos)
	if err != nil {
		return Date{}, 0, err
	}
	pos, err = expectByte(s, pos, '-', '-')
	if err != nil {
		return Date{}, 0, err
	}
	monthStart := pos
	month, pos, err := parseFixedDigits(s, pos, 2, "month")
	if err != nil {
		return Date{}, 0, err
	}
	pos, err = expectByte(s, pos, '-', '-')
	if err != nil {
		return Date{}, 0, err
	}
	dayStart := pos
	day, pos, err := parseFixedDigits(s, pos, 2, "day")
	if err != nil {
		return Date{}, 0, err
	}

	date, err := NewDate(year, month, day)
	if err != nil {
		errPos := monthStart
		if cre, ok := err.(*ComponentRangeError); ok && cre.Name == "day" {
			errPos = dayStart
		}
		return Date{}, 0, &ParseError{Input: s, Pos: errPos, Err: err}
	}
	return date, pos, nil
}

// parseTimeAt consumes HH:MM:SS with an optional fraction of 1..9 digits.
func parseTimeAt(s string, pos int) (Time, int, error) {
	hourStart := pos
	hour, pos, err := parseFixedDigits(s, pos, 2, "hour")
	if err != nil {
		return Time{}, 0, err
	}
	pos, err = expectByte(s, pos, ':', ':')
	if err != nil {
		return Time{}, 0, err
	}
	minuteStart := pos
	minute, pos, err := parseFixedDigits(s, pos, 2, "minute")
	if err != nil {
		return Time{}, 0, err
	}
	pos, err = expectByte(s, pos, ':', ':')
	if err != nil {
		return Time{}, 0, err
	}
	secondStart := pos
	second, pos, err := parseFixedDigits(s, pos, 2, "second")
	if err != nil {
		return Time{}, 0, err
	}

	nanos := 0
	if pos < len(s) && s[pos] == '.' {
		pos++
		digStart := pos
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
		n := pos - digStart
		if n == 0 {
			return Time{}, 0, &ParseError{Input: s, Pos: digStart, Expected: "fractional digit"}
		}
		if n > 9 {
			return Time{}, 0, &ParseError{Input: s, Pos: digStart + 9, Expected: "at most 9 fractional digits"}
		}
		// Right-pad to nanosecond width: ".5" means 500ms.
		for i := digStart; i < digStart+n; i++ {
			nanos = nanos*10 + int(s[i]-'0')
		}
		for i := n; i < 9; i++ {
			nanos *= 10
		}
	}

	time, err := NewTime(hour, minute, second, nanos)
	if err != nil {
		errPos := hourStart
		if cre, ok := err.(*ComponentRangeError); ok {
			switch cre.Name {
			case "minute":
				errPos = minuteStart
			case "second":
				errPos = secondStart
			}
		}
		return Time{}, 0, &ParseError{Input: s, Pos: errPos, Err: err}
	}
	return time, pos, nil
}

// parseOffsetAt consumes Z or ±HH:MM.
func parseOffsetAt(s string, pos int) (UtcOffset, int, error) {
	if pos >= len(s) {
		return UtcOffset{}, 0, &ParseError{Input: s, Pos: pos, Expected: "offset (Z or ±HH:MM)"}
	}
	switch s[pos] {
	case 'Z', 'z':
		return UtcOffset{}, pos + 1, nil
	case '+', '-':
		start := pos
		positive := s[pos] == '+'
		pos++
		hours, pos, err := parseFixedDigits(s, pos, 2, "offset hours")
		if err != nil {
			return UtcOffset{}, 0, err
		}
		pos, err = expectByte(s, pos, ':', ':')
		if err != nil {
			return UtcOffset{}, 0, err
		}
		minutes, pos, err := parseFixedDigits(s, pos, 2, "offset minutes")
		if err != nil {
			return UtcOffset{}, 0, err
		}
		offset, err := OffsetFromHoursMinutes(positive, hours, minutes)
		if err != nil {
			return UtcOffset{}, 0, &ParseError{Input: s, Pos: start, Err: err}
		}
		return offset, pos, nil
	default:
		return UtcOffset{}, 0, &ParseError{Input: s, Pos: pos, Expected: "offset (Z or ±HH:MM)"}
	}
}
