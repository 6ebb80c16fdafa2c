package temporal

import "fmt"

// maxOffsetSeconds bounds the fixed-offset window: magnitude strictly under
// 24 hours, consistent with RFC 3339 numeric offsets.
const maxOffsetSeconds = secondsPerDay - 60

// UtcOffset is a fixed whole-minute displacement from UTC, stored as a
// signed number of seconds. The zero value is UTC itself.
type UtcOffset struct {
	seconds int32
}

// OffsetFromSeconds builds an offset from a total number of seconds. The
// offset must be a whole number of minutes with magnitude under 24 hours.
func OffsetFromSeconds(seconds int32) (UtcOffset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds || seconds%60 != 0 {
		return UtcOffset{}, newOffsetError("offset", int64(seconds), -maxOffsetSeconds, maxOffsetSeconds)
	}
	return UtcOffset{seconds: seconds}, nil
}

// OffsetFromHoursMinutes builds an offset from an hour and minute count
// with an explicit sign: OffsetFromHoursMinutes(false, 5, 30) is -05:30.
func OffsetFromHoursMinutes(signPositive bool, hours, minutes int) (UtcOffset, error) {
	if hours < 0 || hours > 23 {
		return UtcOffset{}, newOffsetError("offset hours", int64(hours), 0, 23)
	}
	if minutes < 0 || minutes > 59 {
		return UtcOffset{}, newOffsetError("offset minutes", int64(minutes), 0, 59)
	}
	total := int32(hours)*3600 + int32(minutes)*60
	if !signPositive {
		total = -total
	}
	return OffsetFromSeconds(total)
}

// AsSeconds returns the total offset in seconds, negative west of UTC.
func (o UtcOffset) AsSeconds() int32 { return o.seconds }

// IsUTC reports whether the offset is exactly zero.
func (o UtcOffset) IsUTC() bool { return o.seconds == 0 }

// AsDuration returns the offset as a Duration, for shifting instants.
func (o UtcOffset) AsDuration() Duration { return Seconds(int64(o.seconds)) }

// String formats the offset as ±HH:MM. UTC renders as "+00:00"; callers
// that want the "Z" designator handle it themselves, as OffsetDateTime
// does.
func (o UtcOffset) String() string {
	secs := o.seconds
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	return fmt.Sprintf("%s%02d:%02d", sign, secs/3600, secs%3600/60)
}

// ParseOffset parses Z or ±HH:MM.
func ParseOffset(s string) (UtcOffset, error) {
	offset, pos, err := parseOffsetAt(s, 0)
	if err != nil {
		return UtcOffset{}, err
	}
	if pos != len(s) {
		return UtcOffset{}, &ParseError{Input: s, Pos: pos, Expected: "end of input"}
	}
	return offset, nil
}
