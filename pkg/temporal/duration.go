package temporal

import (
	"fmt"
	"math"
)

const (
	nanosPerSecond = 1_000_000_000
	maxNanos       = nanosPerSecond - 1
	secondsPerDay  = 86_400
)

// Duration is a signed span of time with nanosecond precision, stored as
// whole seconds plus a sub-second nanosecond remainder whose sign always
// agrees with the seconds. Arithmetic is overflow-checked; results that do
// not fit return ErrOverflow instead of wrapping.
type Duration struct {
	secs  int64
	nanos int32 // same sign as secs, magnitude < 1e9
}

// Seconds returns a duration of the given number of whole seconds.
func Seconds(secs int64) Duration {
	return Duration{secs: secs}
}

// Milliseconds returns a duration of the given number of milliseconds.
func Milliseconds(ms int64) Duration {
	return Duration{secs: ms / 1000, nanos: int32(ms%1000) * 1_000_000}
}

// Microseconds returns a duration of the given number of microseconds.
func Microseconds(us int64) Duration {
	return Duration{secs: us / 1_000_000, nanos: int32(us%1_000_000) * 1000}
}

// Nanoseconds returns a duration of the given number of nanoseconds.
func Nanoseconds(ns int64) Duration {
	return Duration{secs: ns / nanosPerSecond, nanos: int32(ns % nanosPerSecond)}
}

// Add returns d + other, or ErrOverflow if the sum is not representable.
func (d Duration) Add(other Duration) (Duration, error) {
	secs, ok := addInt64(d.secs, other.secs)
	if !ok {
		return Duration{}, &OverflowError{Op: "Duration.Add"}
	}
	nanos := int64(d.nanos) + int64(other.nanos) // within (-2e9, 2e9)
	if nanos <= -nanosPerSecond {
		nanos += nanosPerSecond
		secs, ok = addInt64(secs, -1)
	} else if nanos >= nanosPerSecond {
		nanos -= nanosPerSecond
		secs, ok = addInt64(secs, 1)
	}
	if !ok {
		return Duration{}, &OverflowError{Op: "Duration.Add"}
	}
	return normalizeDuration(secs, int32(nanos)), nil
}

// Sub returns d - other, or ErrOverflow if the difference is not
// representable.
func (d Duration) Sub(other Duration) (Duration, error) {
	neg, err := other.Neg()
	if err != nil {
		return Duration{}, err
	}
	return d.Add(neg)
}

// Neg returns the negated duration. It fails only for the single value
// whose seconds component is the minimum int64.
func (d Duration) Neg() (Duration, error) {
	if d.secs == math.MinInt64 {
		return Duration{}, &OverflowError{Op: "Duration.Neg"}
	}
	return Duration{secs: -d.secs, nanos: -d.nanos}, nil
}

// Compare orders two durations: -1 if d is shorter than other, 0 if equal,
// +1 if longer. Seconds dominate; the nanosecond remainders break ties.
func (d Duration) Compare(other Duration) int {
	if c := compareInt64(d.secs, other.secs); c != 0 {
		return c
	}
	return compareInt64(int64(d.nanos), int64(other.nanos))
}

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool { return d.secs == 0 && d.nanos == 0 }

// TotalSeconds returns the duration in seconds as a floating-point
// approximation.
func (d Duration) TotalSeconds() float64 {
	return float64(d.secs) + float64(d.nanos)/nanosPerSecond
}

// TotalNanos returns the exact total number of nanoseconds, or ErrOverflow
// if it does not fit in an int64 (spans beyond roughly ±292 years).
func (d Duration) TotalNanos() (int64, error) {
	secsInNanos, ok := mulInt64(d.secs, nanosPerSecond)
	if !ok {
		return 0, &OverflowError{Op: "Duration.TotalNanos"}
	}
	total, ok := addInt64(secsInNanos, int64(d.nanos))
	if !ok {
		return 0, &OverflowError{Op: "Duration.TotalNanos"}
	}
	return total, nil
}

// String renders the duration as a signed decimal second count, e.g.
// "-1.5s" or "90s".
func (d Duration) String() string {
	if d.nanos == 0 {
		return fmt.Sprintf("%ds", d.secs)
	}
	nanos := d.nanos
	sign := ""
	mag := uint64(d.secs)
	if d.secs < 0 || nanos < 0 {
		sign = "-"
		mag = -mag // two's complement magnitude, valid even for MinInt64
		nanos = -nanos
	}
	frac := fmt.Sprintf("%09d", nanos)
	for len(frac) > 1 && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}
	return fmt.Sprintf("%s%d.%ss", sign, mag, frac)
}

// normalizeDuration enforces sign agreement between the two fields. The
// nanosecond magnitude must already be below one second.
func normalizeDuration(secs int64, nanos int32) Duration {
	if secs > 0 && nanos < 0 {
		secs--
		nanos += nanosPerSecond
	} else if secs < 0 && nanos > 0 {
		secs++
		nanos -= nanosPerSecond
	}
	return Duration{secs: secs, nanos: nanos}
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 && b == -1 || b == math.MinInt64 && a == -1 {
		return 0, false
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
