package temporal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationConstructors(t *testing.T) {
	cases := []struct {
		name  string
		dur   Duration
		secs  int64
		nanos int32
	}{
		{"seconds", Seconds(5), 5, 0},
		{"negative seconds", Seconds(-5), -5, 0},
		{"milliseconds", Milliseconds(1500), 1, 500_000_000},
		{"negative milliseconds", Milliseconds(-1500), -1, -500_000_000},
		{"microseconds", Microseconds(2_000_001), 2, 1000},
		{"nanoseconds", Nanoseconds(1_000_000_001), 1, 1},
		{"negative nanoseconds", Nanoseconds(-1_000_000_001), -1, -1},
		{"sub-second", Milliseconds(250), 0, 250_000_000},
		{"zero", Duration{}, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.secs, tc.dur.secs)
			assert.Equal(t, tc.nanos, tc.dur.nanos)
		})
	}
}

func TestDurationAlgebra(t *testing.T) {
	a := Milliseconds(1500)
	b := Nanoseconds(-700_000_001)

	// a + b - b == a
	sum, err := a.Add(b)
	require.NoError(t, err)
	back, err := sum.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, a, back)

	// Commutativity.
	sum2, err := b.Add(a)
	require.NoError(t, err)
	assert.Equal(t, sum, sum2)

	// Associativity.
	c := Microseconds(123_456)
	left, err := sum.Add(c)
	require.NoError(t, err)
	bc, err := b.Add(c)
	require.NoError(t, err)
	right, err := a.Add(bc)
	require.NoError(t, err)
	assert.Equal(t, left, right)

	// -(-a) == a
	neg, err := a.Neg()
	require.NoError(t, err)
	double, err := neg.Neg()
	require.NoError(t, err)
	assert.Equal(t, a, double)
}

func TestDurationCarryNormalization(t *testing.T) {
	// 0.8s + 0.7s carries into the seconds.
	sum, err := Milliseconds(800).Add(Milliseconds(700))
	require.NoError(t, err)
	assert.Equal(t, int64(1), sum.secs)
	assert.Equal(t, int32(500_000_000), sum.nanos)

	// 1s - 0.25s borrows from the seconds; sign of both fields agrees.
	diff, err := Seconds(1).Sub(Milliseconds(250))
	require.NoError(t, err)
	assert.Equal(t, int64(0), diff.secs)
	assert.Equal(t, int32(750_000_000), diff.nanos)

	// 0.25s - 1s is negative throughout.
	diff, err = Milliseconds(250).Sub(Seconds(1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), diff.secs)
	assert.Equal(t, int32(-750_000_000), diff.nanos)

	diff, err = Milliseconds(250).Sub(Seconds(2))
	require.NoError(t, err)
	assert.Equal(t, int64(-1), diff.secs)
	assert.Equal(t, int32(-750_000_000), diff.nanos)
}

func TestDurationOverflow(t *testing.T) {
	huge := Seconds(math.MaxInt64)
	_, err := huge.Add(Seconds(1))
	require.ErrorIs(t, err, ErrOverflow)

	_, err = huge.Add(Milliseconds(1500))
	require.ErrorIs(t, err, ErrOverflow)

	tiny := Seconds(math.MinInt64)
	_, err = tiny.Neg()
	require.ErrorIs(t, err, ErrOverflow)

	_, err = tiny.Sub(Seconds(1))
	require.ErrorIs(t, err, ErrOverflow)

	// Overflow is reported, never wrapped silently.
	var oe *OverflowError
	_, err = huge.Add(Seconds(1))
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "Duration.Add", oe.Op)
}

func TestDurationCompare(t *testing.T) {
	assert.Equal(t, -1, Seconds(1).Compare(Seconds(2)))
	assert.Equal(t, 1, Seconds(2).Compare(Seconds(1)))
	assert.Equal(t, 0, Seconds(1).Compare(Milliseconds(1000)))
	assert.Equal(t, -1, Milliseconds(1250).Compare(Milliseconds(1500)))
	assert.Equal(t, 1, Milliseconds(-1250).Compare(Milliseconds(-1500)))
	assert.True(t, Duration{}.IsZero())
	assert.False(t, Nanoseconds(1).IsZero())
}

func TestDurationTotals(t *testing.T) {
	d := Milliseconds(1500)
	assert.InDelta(t, 1.5, d.TotalSeconds(), 1e-12)

	n, err := d.TotalNanos()
	require.NoError(t, err)
	assert.Equal(t, int64(1_500_000_000), n)

	n, err = Nanoseconds(-1).TotalNanos()
	require.NoError(t, err)
	assert.Equal(t, int64(-1), n)

	_, err = Seconds(math.MaxInt64).TotalNanos()
	require.ErrorIs(t, err, ErrOverflow)
}

func TestDurationString(t *testing.T) {
	assert.Equal(t, "90s", Seconds(90).String())
	assert.Equal(t, "-90s", Seconds(-90).String())
	assert.Equal(t, "1.5s", Milliseconds(1500).String())
	assert.Equal(t, "-1.5s", Milliseconds(-1500).String())
	assert.Equal(t, "0.000000001s", Nanoseconds(1).String())
	assert.Equal(t, "-0.25s", Milliseconds(-250).String())
}
