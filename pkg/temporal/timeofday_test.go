package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeValidation(t *testing.T) {
	_, err := NewTime(23, 59, 59, 999_999_999)
	assert.NoError(t, err)
	_, err = NewTime(0, 0, 0, 0)
	assert.NoError(t, err)

	invalid := []struct {
		h, m, s, ns int
		field       string
	}{
		{24, 0, 0, 0, "hour"},
		{-1, 0, 0, 0, "hour"},
		{0, 60, 0, 0, "minute"},
		{0, 0, 60, 0, "second"},
		{0, 0, 0, 1_000_000_000, "nanosecond"},
		{0, 0, 0, -1, "nanosecond"},
	}
	for _, tc := range invalid {
		_, err := NewTime(tc.h, tc.m, tc.s, tc.ns)
		require.ErrorIs(t, err, ErrInvalidTime, "%02d:%02d:%02d.%d", tc.h, tc.m, tc.s, tc.ns)
		var cre *ComponentRangeError
		require.ErrorAs(t, err, &cre)
		assert.Equal(t, tc.field, cre.Name)
	}
}

func TestTimeProjections(t *testing.T) {
	tm, err := NewTime(12, 34, 56, 123_450_700)
	require.NoError(t, err)
	assert.Equal(t, 45_296, tm.SecondsSinceMidnight())
	assert.Equal(t, int64(45_296_123_450_700), tm.NanosSinceMidnight())
}

func TestTimeFromSecondsNanos(t *testing.T) {
	tm, err := TimeFromSecondsNanos(45_296, 123)
	require.NoError(t, err)
	assert.Equal(t, Time{Hour: 12, Minute: 34, Second: 56, Nanosecond: 123}, tm)

	_, err = TimeFromSecondsNanos(86_400, 0)
	assert.ErrorIs(t, err, ErrInvalidTime)
	_, err = TimeFromSecondsNanos(-1, 0)
	assert.ErrorIs(t, err, ErrInvalidTime)
	_, err = TimeFromSecondsNanos(0, 1_000_000_000)
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestTimeString(t *testing.T) {
	cases := []struct {
		h, m, s, ns int
		want        string
	}{
		{0, 0, 0, 0, "00:00:00"},
		{23, 59, 59, 0, "23:59:59"},
		{12, 34, 56, 123_450_700, "12:34:56.1234507"},
		{1, 2, 3, 500_000_000, "01:02:03.5"},
		{1, 2, 3, 1, "01:02:03.000000001"},
	}
	for _, tc := range cases {
		tm, err := NewTime(tc.h, tc.m, tc.s, tc.ns)
		require.NoError(t, err)
		assert.Equal(t, tc.want, tm.String())
	}
}

func TestParseTime(t *testing.T) {
	cases := []struct {
		input string
		nanos int
	}{
		{"00:00:00", 0},
		{"23:59:59", 0},
		{"23:59:59.999", 999_000_000},
		{"12:34:56.123456789", 123_456_789},
		{"12:34:56.5", 500_000_000},
		{"12:34:56.000000001", 1},
	}
	for _, tc := range cases {
		tm, err := ParseTime(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.nanos, tm.Nanosecond, tc.input)
	}

	// Formatting then parsing yields the same value.
	tm, err := ParseTime("12:34:56.1234507")
	require.NoError(t, err)
	back, err := ParseTime(tm.String())
	require.NoError(t, err)
	assert.Equal(t, tm, back)
}

func TestParseTimeErrors(t *testing.T) {
	cases := []struct {
		input string
		pos   int
	}{
		{"", 0},
		{"12", 2},
		{"12:34", 5},
		{"1:02:03", 1},
		{"12-34-56", 2},
		{"12:34:56.", 9},
		{"12:34:56.1234567890", 18},
		{"12:34:56.12a", 11},
		{"12:34:56 ", 8},
	}
	for _, tc := range cases {
		_, err := ParseTime(tc.input)
		require.ErrorIs(t, err, ErrParse, "input %q", tc.input)
		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, tc.pos, pe.Pos, "position for %q", tc.input)
	}

	_, err := ParseTime("24:00:00")
	require.ErrorIs(t, err, ErrParse)
	require.ErrorIs(t, err, ErrInvalidTime)

	_, err = ParseTime("23:61:00")
	var cre *ComponentRangeError
	require.ErrorAs(t, err, &cre)
	assert.Equal(t, "minute", cre.Name)
}
