package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromUTCKeepsInstant(t *testing.T) {
	utc := mustDateTime(t, 2023, 11, 5, 21, 59, 59, 500_000_000)
	offset, err := OffsetFromHoursMinutes(true, 2, 0)
	require.NoError(t, err)

	odt := FromUTC(utc, offset)
	assert.Equal(t, utc, odt.UTC)
	assert.Equal(t, utc.UnixTimestamp(), odt.UnixTimestamp())
	assert.Equal(t, "2023-11-05T23:59:59.5+02:00", odt.String())
}

func TestFromLocalToLocalInverse(t *testing.T) {
	date, err := NewDate(2021, 1, 2)
	require.NoError(t, err)
	tod, err := NewTime(3, 4, 5, 999_999_999)
	require.NoError(t, err)
	offset, err := OffsetFromHoursMinutes(false, 5, 45)
	require.NoError(t, err)

	odt, err := FromLocal(date, tod, offset)
	require.NoError(t, err)
	assert.Equal(t, offset, odt.Offset)

	// The stored instant is shifted to UTC.
	assert.Equal(t, "2021-01-02T08:49:05.999999999Z", odt.UTC.String())

	local, err := odt.ToLocal()
	require.NoError(t, err)
	assert.Equal(t, date, local.Date)
	assert.Equal(t, tod, local.Time)
}

func TestOffsetAffectsDisplayNotInstant(t *testing.T) {
	odt, err := ParseOffsetDateTime("2023-06-15T12:00:00+05:30")
	require.NoError(t, err)

	// Shifting the local reading back by the offset recovers the stored
	// UTC instant exactly.
	local, err := odt.ToLocal()
	require.NoError(t, err)
	back, err := odt.Offset.AsDuration().Neg()
	require.NoError(t, err)
	recovered, err := local.AddDuration(back)
	require.NoError(t, err)
	assert.Equal(t, odt.UTC, recovered)

	// Same instant, different display offsets.
	utcForm, err := ParseOffsetDateTime("2023-06-15T06:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 0, odt.Compare(utcForm))
	assert.NotEqual(t, odt, utcForm)
}

func TestOffsetDateTimeArithmetic(t *testing.T) {
	odt, err := ParseOffsetDateTime("2021-01-02T03:04:05.25-05:45")
	require.NoError(t, err)

	later, err := odt.AddDuration(Seconds(30))
	require.NoError(t, err)
	assert.Equal(t, odt.Offset, later.Offset, "offset survives arithmetic")
	assert.Equal(t, Seconds(30), later.Difference(odt))

	earlier, err := later.AddDuration(Seconds(-30))
	require.NoError(t, err)
	assert.Equal(t, odt, earlier)
}

func TestParseOffsetDateTimeRoundTrip(t *testing.T) {
	cases := []string{
		"2024-12-25T23:59:59.999Z",
		"2023-11-05T23:59:59.5+02:00",
		"2023-11-05T23:59:59Z",
		"2021-01-02T03:04:05-05:45",
		"2000-02-29T00:00:00+14:00",
		"1969-12-31T23:59:59.999999999-00:01",
	}
	for _, s := range cases {
		odt, err := ParseOffsetDateTime(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, odt.String(), "round trip for %s", s)
	}
}

func TestParseOffsetDateTimeNormalizesToUTC(t *testing.T) {
	odt, err := ParseOffsetDateTime("2024-01-01T00:30:00+01:00")
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31T23:30:00Z", odt.UTC.String())
	assert.Equal(t, int32(3600), odt.Offset.AsSeconds())
}

func TestParseOffsetDateTimeErrors(t *testing.T) {
	bad := []string{
		"",
		"2024-01-02T03:04:05",
		"2024-01-02T03:04:05+0200",
		"2024-01-02T03:04:05+2:00",
		"2024-01-02T03:04:05 +02:00",
		"2024-01-02T03:04:05+24:00",
		"2024-13-02T03:04:05Z",
	}
	for _, s := range bad {
		_, err := ParseOffsetDateTime(s)
		assert.ErrorIs(t, err, ErrParse, "input %q", s)
	}

	_, err := ParseOffsetDateTime("2024-01-02T03:04:05+24:00")
	assert.ErrorIs(t, err, ErrInvalidOffset)
}

func TestOffsetDateTimeOrdering(t *testing.T) {
	a, err := ParseOffsetDateTime("2024-01-01T12:00:00+02:00")
	require.NoError(t, err)
	b, err := ParseOffsetDateTime("2024-01-01T12:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, -1, a.Compare(b)) // 12:00+02:00 is 10:00Z
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
}
