package chrono

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlainDate(t *testing.T) {
	_, err := NewPlainDate(2023, 2, 29, nil)
	assert.ErrorIs(t, err, ErrRange)

	_, err = NewPlainDate(300_000, 1, 1, nil)
	assert.ErrorIs(t, err, ErrOutOfRange)

	d, err := PlainDateFromFields(Japanese.Calendar(), Fields{Era: "reiwa", EraYear: Int(6), Month: Int(1), Day: Int(15)})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15[u-ca=japanese]", d.String())
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, "reiwa", d.CalendarDate().Era)
	assert.False(t, d.Equals(mustDate(t, 2024, 1, 15)))
	assert.True(t, d.WithCalendar(ISO()).Equals(mustDate(t, 2024, 1, 15)))
	assert.Equal(t, 0, d.Compare(mustDate(t, 2024, 1, 15)))

	_, err = PlainDateFromFields(nil, Fields{Year: Int(2023), Month: Int(2), Day: Int(29)}, WithOverflow(Reject))
	assert.ErrorIs(t, err, ErrRange)
}

func TestPlainDate_accessors(t *testing.T) {
	d := mustDate(t, 2024, 2, 10)
	assert.Equal(t, 2, d.Month())
	assert.Equal(t, "M02", d.MonthCode())
	assert.Equal(t, 10, d.Day())
	assert.Equal(t, 6, d.DayOfWeek())
	assert.Equal(t, 41, d.DayOfYear())
	assert.Equal(t, 29, d.DaysInMonth())
	assert.True(t, d.InLeapYear())
	assert.Equal(t, "2024-02-10", d.String())

	ym, err := d.ToPlainYearMonth()
	require.NoError(t, err)
	assert.Equal(t, "2024-02", ym.String())

	md, err := d.ToPlainMonthDay()
	require.NoError(t, err)
	assert.Equal(t, "02-10", md.String())
}

func TestPlainDate_Add(t *testing.T) {
	d := mustDate(t, 2024, 1, 31)
	month := mustDuration(t, 0, 1, 0, 0, 0, 0, 0)

	got, err := d.Add(month)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got.String())

	_, err = d.Add(month, WithOverflow(Reject))
	assert.ErrorIs(t, err, ErrRange)

	got, err = d.Add(mustDuration(t, 0, 0, 0, 1, 36, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "2024-02-02", got.String())

	got, err = d.Subtract(mustDuration(t, 1, 0, 2, 0, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "2023-01-17", got.String())
}

func TestPlainDate_Until(t *testing.T) {
	a := mustDate(t, 2024, 1, 15)
	b := mustDate(t, 2024, 3, 20)

	for idx, tc := range []struct {
		from, to PlainDate
		opts     []Option
		want     string
	}{
		{a, b, nil, "P65D"},
		{a, b, []Option{WithLargestUnit(Month)}, "P2M5D"},
		{b, a, []Option{WithLargestUnit(Month)}, "-P2M5D"},
		{a, b, []Option{WithLargestUnit(Week)}, "P9W2D"},
		{a, b, []Option{WithSmallestUnit(Month), WithRoundingMode(HalfExpand)}, "P2M"},
		{mustDate(t, 2024, 1, 1), mustDate(t, 2024, 1, 19), []Option{WithSmallestUnit(Week)}, "P2W"},
		{mustDate(t, 2024, 1, 1), mustDate(t, 2024, 1, 19), []Option{WithSmallestUnit(Week), WithRoundingMode(HalfExpand)}, "P3W"},
		{mustDate(t, 2024, 1, 19), mustDate(t, 2024, 1, 1), []Option{WithSmallestUnit(Week), WithRoundingMode(Floor)}, "-P3W"},
		{mustDate(t, 2019, 6, 30), mustDate(t, 2024, 2, 29), []Option{WithLargestUnit(Year)}, "P4Y8M"},
	} {
		got, err := tc.from.Until(tc.to, tc.opts...)
		require.NoErrorf(t, err, "%s[%d] failed", t.Name(), idx)
		if got.String() != tc.want {
			t.Errorf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, tc.want, got)
		}
	}

	since, err := b.Since(a)
	require.NoError(t, err)
	assert.Equal(t, "P65D", since.String())

	_, err = a.Until(b, WithSmallestUnit(Hour))
	assert.ErrorIs(t, err, ErrRange)

	_, err = a.Until(b.WithCalendar(Buddhist.Calendar()))
	assert.ErrorIs(t, err, ErrRange)
}

func TestPlainDate_untilAddInverse(t *testing.T) {
	dates := []PlainDate{
		mustDate(t, 2023, 12, 15),
		mustDate(t, 2024, 1, 28),
		mustDate(t, 2024, 2, 10),
		mustDate(t, 2024, 2, 29),
		mustDate(t, 2024, 3, 1),
		mustDate(t, 2025, 7, 4),
	}
	for _, largest := range []Unit{Year, Month, Week, Day} {
		for _, a := range dates {
			for _, b := range dates {
				if a.Compare(b) > 0 {
					continue
				}
				d, err := a.Until(b, WithLargestUnit(largest))
				require.NoError(t, err)
				back, err := a.Add(d)
				require.NoError(t, err)
				if !back.Equals(b) {
					t.Errorf("%s failed [%s]: %s + %s = %s, want %s",
						t.Name(), largest, a, d, back, b)
				}
			}
		}
	}
}

func TestPlainDate_constraints(t *testing.T) {
	q1 := DateRangeConstraint(mustDate(t, 2024, 1, 1), mustDate(t, 2024, 3, 31))
	_, err := NewPlainDate(2024, 2, 14, nil, q1)
	assert.NoError(t, err)
	_, err = NewPlainDate(2024, 4, 1, nil, q1)
	assert.ErrorIs(t, err, ErrRange)

	weekday := WeekdayConstraint(1, 2, 3, 4, 5)
	_, err = NewPlainDate(2024, 2, 10, nil, weekday)
	assert.ErrorIs(t, err, ErrRange)
	_, err = NewPlainDate(2024, 2, 10, nil, Union(weekday, q1))
	assert.NoError(t, err)
	_, err = NewPlainDate(2024, 2, 10, nil, Intersection(q1, weekday))
	assert.ErrorIs(t, err, ErrRange)
}

func ExamplePlainDate_Until() {
	a, _ := NewPlainDate(2024, 1, 31, nil)
	b, _ := NewPlainDate(2024, 3, 1, nil)
	d, _ := a.Until(b, WithLargestUnit(Month))
	fmt.Println(d)
	// Output: P1M1D
}
