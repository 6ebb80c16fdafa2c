package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/coolbeans/tempo/pkg/temporal"
)

// parseDuration parses a signed compound duration such as "90s", "-250ms",
// "1h30m" or "2d12h". An optional leading sign applies to the whole value.
func parseDuration(s string) (temporal.Duration, error) {
	input := s
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	if s == "" {
		return temporal.Duration{}, fmt.Errorf("invalid duration %q", input)
	}

	total := temporal.Duration{}
	for len(s) > 0 {
		digits := 0
		for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
			digits++
		}
		if digits == 0 {
			return temporal.Duration{}, fmt.Errorf("invalid duration %q: expected a number before %q", input, s)
		}
		n, err := strconv.ParseInt(s[:digits], 10, 64)
		if err != nil {
			return temporal.Duration{}, fmt.Errorf("invalid duration %q: %w", input, err)
		}
		s = s[digits:]

		var part temporal.Duration
		switch {
		case strings.HasPrefix(s, "ns"):
			part = temporal.Nanoseconds(n)
			s = s[2:]
		case strings.HasPrefix(s, "us"):
			part = temporal.Microseconds(n)
			s = s[2:]
		case strings.HasPrefix(s, "ms"):
			part = temporal.Milliseconds(n)
			s = s[2:]
		case strings.HasPrefix(s, "s"):
			part = temporal.Seconds(n)
			s = s[1:]
		case strings.HasPrefix(s, "m"):
			part, err = scaledSeconds(n, 60, "m")
			s = s[1:]
		case strings.HasPrefix(s, "h"):
			part, err = scaledSeconds(n, 3600, "h")
			s = s[1:]
		case strings.HasPrefix(s, "d"):
			part, err = scaledSeconds(n, 86_400, "d")
			s = s[1:]
		default:
			return temporal.Duration{}, fmt.Errorf("invalid duration %q: unknown unit %q", input, s)
		}
		if err != nil {
			return temporal.Duration{}, fmt.Errorf("invalid duration %q: %w", input, err)
		}

		total, err = total.Add(part)
		if err != nil {
			return temporal.Duration{}, fmt.Errorf("invalid duration %q: %w", input, err)
		}
	}

	if negative {
		neg, err := total.Neg()
		if err != nil {
			return temporal.Duration{}, fmt.Errorf("invalid duration %q: %w", input, err)
		}
		return neg, nil
	}
	return total, nil
}

func scaledSeconds(n, factor int64, unit string) (temporal.Duration, error) {
	if n > math.MaxInt64/factor {
		return temporal.Duration{}, fmt.Errorf("value %d%s overflows", n, unit)
	}
	return temporal.Seconds(n * factor), nil
}
