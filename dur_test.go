package chrono

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDuration(t testing.TB, years, months, weeks, days, hours, minutes, seconds int64) Duration {
	t.Helper()
	d, err := NewDuration(years, months, weeks, days, hours, minutes, seconds, 0, 0, 0)
	require.NoError(t, err)
	return d
}

func mustDate(t testing.TB, y, m, d int) PlainDate {
	t.Helper()
	pd, err := NewPlainDate(y, m, d, nil)
	require.NoError(t, err)
	return pd
}

func TestNewDuration(t *testing.T) {
	_, err := NewDuration(1, 0, 0, -1, 0, 0, 0, 0, 0, 0)
	assert.ErrorIs(t, err, ErrMixedSigns)
	assert.ErrorIs(t, err, ErrRange)

	d, err := NewDuration(-1, 0, 0, -1, 0, 0, 0, 0, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, -1, d.Sign())
	assert.Equal(t, int64(-5), d.Get(Nanosecond))
	assert.Equal(t, 1, d.Abs().Sign())
	assert.Equal(t, d, d.Negated().Negated())

	_, err = d.With(Hour, 3)
	assert.ErrorIs(t, err, ErrMixedSigns)

	var zero Duration
	assert.True(t, zero.IsZero())
	assert.Equal(t, 0, zero.Sign())

	_, err = DurationOf(Unit(12), 1)
	assert.ErrorIs(t, err, ErrRange)
}

func TestDuration_String(t *testing.T) {
	full, err := NewDuration(1, 2, 3, 4, 5, 6, 7, 8, 9, 0)
	require.NoError(t, err)
	half, err := DurationOf(Millisecond, -1500)
	require.NoError(t, err)
	ns, err := DurationOf(Nanosecond, 1)
	require.NoError(t, err)

	for _, tc := range []struct {
		d    Duration
		want string
	}{
		{full, "P1Y2M3W4DT5H6M7.008009S"},
		{half, "-PT1.5S"},
		{ns, "PT0.000000001S"},
		{Duration{}, "PT0S"},
		{mustDuration(t, 0, 0, 0, 1, 0, 0, 0), "P1D"},
		{mustDuration(t, 0, 0, 0, 0, 0, 90, 0), "PT90M"},
	} {
		assert.Equal(t, tc.want, tc.d.String())
	}
}

func TestDuration_Round(t *testing.T) {
	for idx, tc := range []struct {
		d    Duration
		opts []Option
		want string
	}{
		{mustDuration(t, 0, 0, 0, 0, 0, 130, 0), []Option{WithLargestUnit(Hour)}, "PT2H10M"},
		{mustDuration(t, 0, 0, 0, 0, 1, 30, 0), []Option{WithSmallestUnit(Hour)}, "PT2H"},
		{mustDuration(t, 0, 0, 0, 0, 1, 30, 0), []Option{WithSmallestUnit(Hour), WithRoundingMode(HalfTrunc)}, "PT1H"},
		{mustDuration(t, 0, 0, 0, 0, 1, 23, 0), []Option{WithSmallestUnit(Minute), WithRoundingIncrement(15)}, "PT1H30M"},
		{mustDuration(t, 0, 0, 0, 0, 0, 0, 100_000), []Option{WithLargestUnit(Day)}, "P1DT3H46M40S"},
		{mustDuration(t, 0, 0, 0, 0, 36, 0, 0), []Option{WithSmallestUnit(Day)}, "P2D"},
		{mustDuration(t, 0, 1, 0, 15, 0, 0, 0), []Option{WithSmallestUnit(Month), WithRelativeTo(mustDate(t, 2024, 1, 1))}, "P2M"},
		{mustDuration(t, 0, 1, 0, 15, 0, 0, 0), []Option{WithSmallestUnit(Month), WithRelativeTo(mustDate(t, 2024, 2, 1))}, "P1M"},
		{mustDuration(t, 0, 0, 0, 400, 0, 0, 0), []Option{WithLargestUnit(Year), With(mustDate(t, 2024, 1, 1))}, "P1Y1M3D"},
		{mustDuration(t, 0, 14, 0, 0, 0, 0, 0), []Option{WithLargestUnit(Year), With(mustDate(t, 2024, 1, 1))}, "P1Y2M"},
		{mustDuration(t, 1, 0, 0, 0, 0, 0, 0), []Option{WithLargestUnit(Day), With(mustDate(t, 2024, 1, 1))}, "P366D"},
		{mustDuration(t, 0, 0, 0, 10, 0, 0, 0), []Option{WithLargestUnit(Week)}, "P1W3D"},
	} {
		got, err := tc.d.Round(tc.opts...)
		require.NoErrorf(t, err, "%s[%d] failed", t.Name(), idx)
		if got.String() != tc.want {
			t.Errorf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
	}
}

func TestDuration_RoundErrors(t *testing.T) {
	year := mustDuration(t, 1, 0, 0, 0, 0, 0, 0)
	_, err := year.Round(WithLargestUnit(Month))
	assert.ErrorIs(t, err, ErrRelativeToRequired)
	assert.ErrorIs(t, err, ErrUsage)

	_, err = mustDuration(t, 0, 0, 0, 3, 0, 0, 0).Round(WithSmallestUnit(Month))
	assert.ErrorIs(t, err, ErrRelativeToRequired)

	_, err = year.Round()
	assert.ErrorIs(t, err, ErrRange)

	_, err = year.Round(WithLargestUnit(Hour), WithSmallestUnit(Day))
	assert.ErrorIs(t, err, ErrRange)

	_, err = year.Round(WithSmallestUnit(Hour), WithRoundingIncrement(7))
	assert.ErrorIs(t, err, ErrInvalidIncrement)
}

func TestDuration_Total(t *testing.T) {
	for idx, tc := range []struct {
		d    Duration
		unit Unit
		opts []Option
		want float64
	}{
		{mustDuration(t, 1, 0, 0, 0, 0, 0, 0), Day, []Option{WithRelativeTo(mustDate(t, 2024, 1, 1))}, 366},
		{mustDuration(t, 1, 0, 0, 0, 0, 0, 0), Day, []Option{WithRelativeTo(mustDate(t, 2023, 1, 1))}, 365},
		{mustDuration(t, 0, 1, 0, 0, 0, 0, 0), Day, []Option{WithRelativeTo(mustDate(t, 2024, 2, 1))}, 29},
		{mustDuration(t, 0, 0, 0, 0, 36, 0, 0), Day, nil, 1.5},
		{mustDuration(t, 0, 0, 0, 1, 12, 0, 0), Hour, nil, 36},
		{mustDuration(t, 0, 0, 0, 0, 0, 0, 90), Minute, nil, 1.5},
		{mustDuration(t, 0, 0, 0, 45, 0, 0, 0), Month, []Option{WithRelativeTo(mustDate(t, 2024, 1, 1))}, 1 + 14.0/29},
	} {
		got, err := tc.d.Total(tc.unit, tc.opts...)
		require.NoErrorf(t, err, "%s[%d] failed", t.Name(), idx)
		assert.InDeltaf(t, tc.want, got, 1e-12, "%s[%d] failed", t.Name(), idx)
	}

	_, err := mustDuration(t, 0, 2, 0, 0, 0, 0, 0).Total(Month)
	assert.ErrorIs(t, err, ErrRelativeToRequired)

	r, err := mustDuration(t, 0, 0, 0, 0, 0, 0, 1).TotalRat(Hour)
	require.NoError(t, err)
	assert.Equal(t, "1/3600", r.RatString())
}

func TestDuration_Balance(t *testing.T) {
	got, err := mustDuration(t, 0, 0, 0, 0, 0, 90, 0).Balance(Hour, Nanosecond)
	require.NoError(t, err)
	assert.Equal(t, "PT1H30M", got.String())

	got, err = mustDuration(t, 0, 0, 0, 0, 25, 0, 59).Balance(Day, Minute)
	require.NoError(t, err)
	assert.Equal(t, "P1DT1H", got.String())

	_, err = Duration{}.Balance(Minute, Hour)
	assert.ErrorIs(t, err, ErrRange)

	_, err = mustDuration(t, 0, 0, 0, 40, 0, 0, 0).Balance(Year, Day)
	assert.ErrorIs(t, err, ErrRelativeToRequired)
	_, err = mustDuration(t, 1, 0, 0, 0, 0, 0, 0).Balance(Month, Day)
	assert.ErrorIs(t, err, ErrRelativeToRequired)

	got, err = mustDuration(t, 0, 0, 0, 40, 0, 0, 0).Balance(Year, Day, WithRelativeTo(mustDate(t, 2024, 1, 31)))
	require.NoError(t, err)
	assert.Equal(t, "P1M11D", got.String())
}

func TestDuration_balanceIdempotent(t *testing.T) {
	anchors := []PlainDate{mustDate(t, 2024, 2, 29)}
	for d := 25; d <= 31; d++ {
		anchors = append(anchors, mustDate(t, 2024, 1, d))
	}

	for _, a := range anchors {
		rel := WithRelativeTo(a)
		for y := int64(0); y <= 2; y++ {
			for m := int64(0); m <= 11; m++ {
				for d := int64(0); d <= 30; d += 5 {
					once, err := mustDuration(t, y, m, 0, d, 0, 0, 0).Balance(Year, Day, rel)
					require.NoError(t, err)
					twice, err := once.Balance(Year, Day, rel)
					require.NoError(t, err)
					if once.String() != twice.String() {
						t.Errorf("%s failed at %s + P%dY%dM%dD:\n\twant: %s\n\tgot:  %s",
							t.Name(), a, y, m, d, once, twice)
					}
				}
			}
		}
	}
}

func TestDuration_Add(t *testing.T) {
	hour := mustDuration(t, 0, 0, 0, 0, 1, 0, 0)
	half := mustDuration(t, 0, 0, 0, 0, 0, 30, 0)
	month := mustDuration(t, 0, 1, 0, 0, 0, 0, 0)

	got, err := hour.Add(half)
	require.NoError(t, err)
	assert.Equal(t, "PT1H30M", got.String())

	got, err = hour.Subtract(mustDuration(t, 0, 0, 0, 0, 2, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "-PT1H", got.String())

	got, err = mustDuration(t, 0, 0, 0, 1, 0, 0, 0).Add(mustDuration(t, 0, 0, 0, 0, 12, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "P1DT12H", got.String())

	got, err = month.Add(month, WithRelativeTo(mustDate(t, 2024, 1, 15)))
	require.NoError(t, err)
	assert.Equal(t, "P2M", got.String())

	got, err = month.Add(mustDuration(t, 0, 0, 0, 20, 0, 0, 0), WithRelativeTo(mustDate(t, 2024, 1, 31)))
	require.NoError(t, err)
	assert.Equal(t, "P1M20D", got.String())

	_, err = month.Add(month)
	assert.ErrorIs(t, err, ErrRelativeToRequired)
}

func TestDuration_Compare(t *testing.T) {
	day := mustDuration(t, 0, 0, 0, 1, 0, 0, 0)
	hours := mustDuration(t, 0, 0, 0, 0, 24, 0, 0)
	month := mustDuration(t, 0, 1, 0, 0, 0, 0, 0)
	thirty := mustDuration(t, 0, 0, 0, 30, 0, 0, 0)

	for idx, tc := range []struct {
		a, b Duration
		opts []Option
		want int
	}{
		{hours, day, nil, 0},
		{mustDuration(t, 0, 0, 1, 0, 0, 0, 0), mustDuration(t, 0, 0, 0, 7, 0, 0, 0), nil, 0},
		{month, thirty, []Option{WithRelativeTo(mustDate(t, 2024, 2, 1))}, -1},
		{month, thirty, []Option{WithRelativeTo(mustDate(t, 2024, 1, 1))}, 1},
		{mustDuration(t, 0, 0, 0, 0, 0, 30, 0), hours, nil, -1},
	} {
		got, err := tc.a.Compare(tc.b, tc.opts...)
		require.NoErrorf(t, err, "%s[%d] failed", t.Name(), idx)
		assert.Equalf(t, tc.want, got, "%s[%d] failed", t.Name(), idx)
	}

	_, err := month.Compare(thirty)
	assert.ErrorIs(t, err, ErrRelativeToRequired)
}

func ExampleDuration_Round() {
	d, _ := NewDuration(0, 0, 0, 0, 0, 130, 0, 0, 0, 0)
	r, err := d.Round(WithLargestUnit(Hour))
	fmt.Println(r, err)
	// Output: PT2H10M <nil>
}
