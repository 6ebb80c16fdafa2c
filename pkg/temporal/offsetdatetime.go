package temporal

// OffsetDateTime is an instant paired with a fixed UTC offset. The stored
// DateTime is always the UTC instant; the offset only controls how the
// instant renders locally and never re-interprets it.
type OffsetDateTime struct {
	UTC    DateTime
	Offset UtcOffset
}

// FromUTC pairs an already-UTC instant with a display offset. No arithmetic
// is performed.
func FromUTC(utc DateTime, offset UtcOffset) OffsetDateTime {
	return OffsetDateTime{UTC: utc, Offset: offset}
}

// FromLocal interprets date and time as wall-clock values in the frame
// described by offset and converts to the stored UTC instant.
func FromLocal(date Date, time Time, offset UtcOffset) (OffsetDateTime, error) {
	local := NewDateTime(date, time)
	back, err := offset.AsDuration().Neg()
	if err != nil {
		return OffsetDateTime{}, err
	}
	utc, err := local.AddDuration(back)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{UTC: utc, Offset: offset}, nil
}

// ToLocal returns the wall-clock date and time as seen in this offset.
func (o OffsetDateTime) ToLocal() (DateTime, error) {
	return o.UTC.AddDuration(o.Offset.AsDuration())
}

// UnixTimestamp returns whole seconds since the Unix epoch. The offset
// never changes the instant.
func (o OffsetDateTime) UnixTimestamp() int64 {
	return o.UTC.UnixTimestamp()
}

// UnixTimestampNanos returns nanoseconds since the Unix epoch.
func (o OffsetDateTime) UnixTimestampNanos() (int64, error) {
	return o.UTC.UnixTimestampNanos()
}

// AddDuration shifts the instant by dur, keeping the display offset.
func (o OffsetDateTime) AddDuration(dur Duration) (OffsetDateTime, error) {
	utc, err := o.UTC.AddDuration(dur)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{UTC: utc, Offset: o.Offset}, nil
}

// Difference returns the signed duration o - other between the two
// instants; the offsets play no part.
func (o OffsetDateTime) Difference(other OffsetDateTime) Duration {
	return o.UTC.Difference(other.UTC)
}

// Compare orders two values by instant.
func (o OffsetDateTime) Compare(other OffsetDateTime) int {
	return o.UTC.Compare(other.UTC)
}

// Equal reports whether the two values denote the same instant with the
// same display offset.
func (o OffsetDateTime) Equal(other OffsetDateTime) bool { return o == other }

// String formats the value as RFC 3339: the local wall-clock reading
// followed by Z for UTC or ±HH:MM otherwise. If the local reading falls
// outside the supported year range the UTC form is rendered instead.
func (o OffsetDateTime) String() string {
	local, err := o.ToLocal()
	if err != nil {
		return o.UTC.String()
	}
	s := local.Date.String() + "T" + local.Time.String()
	if o.Offset.IsUTC() {
		return s + "Z"
	}
	return s + o.Offset.String()
}

// ParseOffsetDateTime parses RFC 3339:
// YYYY-MM-DDTHH:MM:SS[.fffffffff](Z|+HH:MM|-HH:MM). The stored instant is
// UTC-normalized while the offset round-trips exactly as written.
func ParseOffsetDateTime(s string) (OffsetDateTime, error) {
	date, pos, err := parseDateAt(s, 0)
	if err != nil {
		return OffsetDateTime{}, err
	}
	pos, err = expectByte(s, pos, 'T', 't')
	if err != nil {
		return OffsetDateTime{}, err
	}
	time, pos, err := parseTimeAt(s, pos)
	if err != nil {
		return OffsetDateTime{}, err
	}
	offset, pos, err := parseOffsetAt(s, pos)
	if err != nil {
		return OffsetDateTime{}, err
	}
	if pos != len(s) {
		return OffsetDateTime{}, &ParseError{Input: s, Pos: pos, Expected: "end of input"}
	}
	return FromLocal(date, time, offset)
}

// MarshalText implements encoding.TextMarshaler.
func (o OffsetDateTime) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OffsetDateTime) UnmarshalText(text []byte) error {
	parsed, err := ParseOffsetDateTime(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
