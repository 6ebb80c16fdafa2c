package temporal

import (
	"strings"
	"testing"
)

// FuzzParseDate checks that any accepted input formats back to an
// equivalent string that parses to the same value.
// Run with: go test -fuzz=FuzzParseDate -fuzztime=30s ./pkg/temporal/...
func FuzzParseDate(f *testing.F) {
	seeds := []string{
		"2024-01-01",
		"0001-12-31",
		"-0044-03-15",
		"12345-06-07",
		"2000-02-29",
		"2023-02-29",
		"2024-13-01",
		"02024-01-01",
		"2024-1-1",
		"2024--1-01",
		"",
		"----------",
		"99999999999999999999-01-01",
		strings.Repeat("9", 1000),
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		d, err := ParseDate(s)
		if err != nil {
			return
		}
		back, err := ParseDate(d.String())
		if err != nil {
			t.Fatalf("formatted date %q failed to re-parse: %v", d.String(), err)
		}
		if back != d {
			t.Fatalf("round trip changed value: %v -> %v", d, back)
		}
	})
}

// FuzzParseTime checks the same round-trip invariant for times of day.
func FuzzParseTime(f *testing.F) {
	seeds := []string{
		"00:00:00",
		"23:59:59",
		"23:59:59.999",
		"12:34:56.123456789",
		"12:34:56.",
		"12:34:56.1234567890",
		"24:00:00",
		"12:60:00",
		"1:2:3",
		"",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		tm, err := ParseTime(s)
		if err != nil {
			return
		}
		if tm.Hour > 23 || tm.Minute > 59 || tm.Second > 59 || tm.Nanosecond > maxNanos {
			t.Fatalf("parsed time %q carries out-of-range component: %+v", s, tm)
		}
		back, err := ParseTime(tm.String())
		if err != nil {
			t.Fatalf("formatted time %q failed to re-parse: %v", tm.String(), err)
		}
		if back != tm {
			t.Fatalf("round trip changed value: %v -> %v", tm, back)
		}
	})
}

// FuzzParseOffsetDateTime checks that accepted RFC 3339 input round-trips
// and that the stored instant is always UTC-normalized.
func FuzzParseOffsetDateTime(f *testing.F) {
	seeds := []string{
		"2024-12-25T23:59:59.999Z",
		"2023-11-05T23:59:59.5+02:00",
		"2021-01-02T03:04:05-05:45",
		"1969-12-31T23:59:59.999999999-00:01",
		"2024-01-02T03:04:05+24:00",
		"2024-01-02T03:04:05+0200",
		"2024-01-02 03:04:05Z",
		"2024-01-02t03:04:05z",
		"",
		"T",
		"Z",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		odt, err := ParseOffsetDateTime(s)
		if err != nil {
			return
		}
		formatted := odt.String()
		back, err := ParseOffsetDateTime(formatted)
		if err != nil {
			t.Fatalf("formatted value %q failed to re-parse: %v", formatted, err)
		}
		if back != odt {
			t.Fatalf("round trip changed value: %v -> %v", odt, back)
		}
		if odt.UnixTimestamp() != back.UnixTimestamp() {
			t.Fatalf("round trip changed instant for %q", s)
		}
	})
}
