package temporal

import (
	"fmt"
	"strings"
)

// Time is a wall-clock time within a day, with nanosecond precision. Leap
// seconds are not representable. Construct with NewTime or ParseTime.
type Time struct {
	Hour       int // 0..23
	Minute     int // 0..59
	Second     int // 0..59
	Nanosecond int // 0..999999999
}

// NewTime builds a time of day, validating each component.
func NewTime(hour, minute, second, nanosecond int) (Time, error) {
	switch {
	case hour < 0 || hour > 23:
		return Time{}, newTimeError("hour", int64(hour), 0, 23)
	case minute < 0 || minute > 59:
		return Time{}, newTimeError("minute", int64(minute), 0, 59)
	case second < 0 || second > 59:
		return Time{}, newTimeError("second", int64(second), 0, 59)
	case nanosecond < 0 || nanosecond > maxNanos:
		return Time{}, newTimeError("nanosecond", int64(nanosecond), 0, maxNanos)
	}
	return Time{Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond}, nil
}

// TimeFromSecondsNanos builds a time of day from whole seconds since
// midnight plus a nanosecond remainder.
func TimeFromSecondsNanos(secs, nanos int) (Time, error) {
	if secs < 0 || secs >= secondsPerDay {
		return Time{}, newTimeError("second", int64(secs), 0, secondsPerDay-1)
	}
	return NewTime(secs/3600, secs%3600/60, secs%60, nanos)
}

// SecondsSinceMidnight returns whole seconds since midnight, ignoring the
// nanosecond component.
func (t Time) SecondsSinceMidnight() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// NanosSinceMidnight returns total nanoseconds since midnight.
func (t Time) NanosSinceMidnight() int64 {
	return int64(t.SecondsSinceMidnight())*nanosPerSecond + int64(t.Nanosecond)
}

// Compare orders two times within a day: -1 if t is earlier than other, 0
// if equal, +1 if later.
func (t Time) Compare(other Time) int {
	return compareInt64(t.NanosSinceMidnight(), other.NanosSinceMidnight())
}

// Equal reports whether t and other are the same instant within the day.
func (t Time) Equal(other Time) bool { return t == other }

// String formats the time as HH:MM:SS, appending a fractional part with
// trailing zeros trimmed when the nanosecond component is non-zero.
func (t Time) String() string {
	if t.Nanosecond == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	frac := strings.TrimRight(fmt.Sprintf("%09d", t.Nanosecond), "0")
	return fmt.Sprintf("%02d:%02d:%02d.%s", t.Hour, t.Minute, t.Second, frac)
}

// ParseTime parses HH:MM:SS with an optional fractional part of one to nine
// digits, interpreted as if right-padded with zeros to nanosecond width.
func ParseTime(s string) (Time, error) {
	t, pos, err := parseTimeAt(s, 0)
	if err != nil {
		return Time{}, err
	}
	if pos != len(s) {
		return Time{}, &ParseError{Input: s, Pos: pos, Expected: "end of input"}
	}
	return t, nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := ParseTime(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
