package temporal

// DateTime is a calendar date combined with a time of day, representing an
// instant already expressed in UTC. It carries no offset.
type DateTime struct {
	Date Date
	Time Time
}

// NewDateTime pairs a date and a time of day. Both components are assumed
// valid; no cross-validation is needed.
func NewDateTime(date Date, time Time) DateTime {
	return DateTime{Date: date, Time: time}
}

// DateTimeFromUnixTimestamp builds a DateTime from whole seconds since the
// Unix epoch plus a nanosecond remainder. Seconds may be negative for
// pre-epoch instants; nanos must always be in 0..999999999 (floor
// semantics, the remainder never flips sign with the seconds).
func DateTimeFromUnixTimestamp(secs int64, nanos int32) (DateTime, error) {
	if nanos < 0 || nanos > maxNanos {
		return DateTime{}, newTimeError("nanosecond", int64(nanos), 0, maxNanos)
	}
	days := floorDivInt64(secs, secondsPerDay)
	secsOfDay := secs - days*secondsPerDay // [0, 86399]

	date, err := DateFromDaysSinceUnixEpoch(days)
	if err != nil {
		return DateTime{}, err
	}
	time, err := TimeFromSecondsNanos(int(secsOfDay), int(nanos))
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Date: date, Time: time}, nil
}

// UnixTimestamp returns whole seconds since 1970-01-01T00:00:00Z,
// truncating the nanosecond component.
func (dt DateTime) UnixTimestamp() int64 {
	return dt.Date.DaysSinceUnixEpoch()*secondsPerDay + int64(dt.Time.SecondsSinceMidnight())
}

// UnixTimestampNanos returns nanoseconds since the Unix epoch, or
// ErrOverflow for instants more than roughly ±292 years from the epoch.
func (dt DateTime) UnixTimestampNanos() (int64, error) {
	secsInNanos, ok := mulInt64(dt.UnixTimestamp(), nanosPerSecond)
	if !ok {
		return 0, &OverflowError{Op: "DateTime.UnixTimestampNanos"}
	}
	total, ok := addInt64(secsInNanos, int64(dt.Time.Nanosecond))
	if !ok {
		return 0, &OverflowError{Op: "DateTime.UnixTimestampNanos"}
	}
	return total, nil
}

// AddDuration returns the instant shifted by dur. The arithmetic is carried
// out on (seconds, nanoseconds) pairs, so it works across the full
// supported year range without an intermediate total-nanosecond value.
func (dt DateTime) AddDuration(dur Duration) (DateTime, error) {
	secs, ok := addInt64(dt.UnixTimestamp(), dur.secs)
	if !ok {
		return DateTime{}, &OverflowError{Op: "DateTime.AddDuration"}
	}
	nanos := int64(dt.Time.Nanosecond) + int64(dur.nanos) // within (-1e9, 2e9)
	carry := floorDivInt64(nanos, nanosPerSecond)
	nanos -= carry * nanosPerSecond
	secs, ok = addInt64(secs, carry)
	if !ok {
		return DateTime{}, &OverflowError{Op: "DateTime.AddDuration"}
	}
	return DateTimeFromUnixTimestamp(secs, int32(nanos))
}

// Difference returns the signed duration dt - other. The result always
// fits: the supported year range spans fewer seconds than an int64 holds.
func (dt DateTime) Difference(other DateTime) Duration {
	secs := dt.UnixTimestamp() - other.UnixTimestamp()
	nanos := int32(dt.Time.Nanosecond - other.Time.Nanosecond)
	return normalizeDuration(secs, nanos)
}

// Compare orders two instants chronologically.
func (dt DateTime) Compare(other DateTime) int {
	if c := compareInt64(dt.UnixTimestamp(), other.UnixTimestamp()); c != 0 {
		return c
	}
	return compareInt64(int64(dt.Time.Nanosecond), int64(other.Time.Nanosecond))
}

// Before reports whether dt is earlier than other.
func (dt DateTime) Before(other DateTime) bool { return dt.Compare(other) < 0 }

// After reports whether dt is later than other.
func (dt DateTime) After(other DateTime) bool { return dt.Compare(other) > 0 }

// Equal reports whether dt and other are the same instant.
func (dt DateTime) Equal(other DateTime) bool { return dt == other }

// String formats the instant as YYYY-MM-DDTHH:MM:SS[.fffffffff]Z.
func (dt DateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String() + "Z"
}

// ParseDateTime parses YYYY-MM-DDTHH:MM:SS[.fffffffff]Z. The trailing Z is
// mandatory; use ParseOffsetDateTime for numeric offsets.
func ParseDateTime(s string) (DateTime, error) {
	date, pos, err := parseDateAt(s, 0)
	if err != nil {
		return DateTime{}, err
	}
	pos, err = expectByte(s, pos, 'T', 't')
	if err != nil {
		return DateTime{}, err
	}
	time, pos, err := parseTimeAt(s, pos)
	if err != nil {
		return DateTime{}, err
	}
	pos, err = expectByte(s, pos, 'Z', 'z')
	if err != nil {
		return DateTime{}, err
	}
	if pos != len(s) {
		return DateTime{}, &ParseError{Input: s, Pos: pos, Expected: "end of input"}
	}
	return DateTime{Date: date, Time: time}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (dt *DateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseDateTime(string(text))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// floorDivInt64 returns the floor of a/b for positive b.
func floorDivInt64(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}
