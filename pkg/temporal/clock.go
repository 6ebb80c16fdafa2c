package temporal

import "time"

// Clock supplies the current instant as a Unix timestamp. It is the only
// boundary through which real time enters this package; everything else is
// deterministic. Substitute FixedClock in tests.
type Clock interface {
	// Now returns whole seconds since the Unix epoch and the nanosecond
	// remainder within the current second.
	Now() (secs int64, nanos int32)
}

// SystemClock reads the platform wall clock.
type SystemClock struct{}

func (SystemClock) Now() (int64, int32) {
	t := time.Now()
	return t.Unix(), int32(t.Nanosecond())
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Secs  int64
	Nanos int32
}

func (c FixedClock) Now() (int64, int32) { return c.Secs, c.Nanos }

// NowUTC reads the given clock and converts the snapshot to a DateTime.
func NowUTC(clock Clock) (DateTime, error) {
	secs, nanos := clock.Now()
	return DateTimeFromUnixTimestamp(secs, nanos)
}

// Now returns the current UTC instant from the system clock.
func Now() (DateTime, error) {
	return NowUTC(SystemClock{})
}
