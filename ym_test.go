package chrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustYearMonth(t testing.TB, y, m int) PlainYearMonth {
	t.Helper()
	ym, err := NewPlainYearMonth(y, m, nil)
	require.NoError(t, err)
	return ym
}

func TestPlainYearMonth_construction(t *testing.T) {
	ym := mustYearMonth(t, 2024, 3)
	assert.Equal(t, "2024-03", ym.String())
	assert.Equal(t, "M03", ym.MonthCode())
	assert.Equal(t, 31, ym.DaysInMonth())
	assert.True(t, ym.InLeapYear())
	assert.Equal(t, "2024-01", mustYearMonth(t, 2024, 1).String())

	_, err := NewPlainYearMonth(2024, 13, nil)
	assert.ErrorIs(t, err, ErrRange)
	_, err = NewPlainYearMonth(2024, 0, nil)
	assert.ErrorIs(t, err, ErrRange)

	be, err := NewPlainYearMonth(2024, 3, Buddhist.Calendar())
	require.NoError(t, err)
	assert.Equal(t, 2567, be.Year())
	assert.Equal(t, "2024-03-01[u-ca=buddhist]", be.String())
	assert.False(t, be.Equals(ym))
	assert.Equal(t, 0, be.Compare(ym))

	fromFields, err := PlainYearMonthFromFields(ISO(), Fields{Year: Int(2024), Month: Int(13)})
	require.NoError(t, err)
	assert.Equal(t, "2024-12", fromFields.String())

	_, err = PlainYearMonthFromFields(ISO(), Fields{Year: Int(2024), Month: Int(13)}, WithOverflow(Reject))
	assert.ErrorIs(t, err, ErrRange)
	_, err = PlainYearMonthFromFields(ISO(), Fields{Month: Int(4)})
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestPlainYearMonth_Add(t *testing.T) {
	for idx, tc := range []struct {
		start string
		d     Duration
		want  string
	}{
		{"2024-01", mustDuration(t, 0, 1, 0, 0, 0, 0, 0), "2024-02"},
		{"2024-01", mustDuration(t, 1, 11, 0, 0, 0, 0, 0), "2025-12"},
		{"2024-01", mustDuration(t, 0, 0, 0, 30, 0, 0, 0), "2024-01"},
		{"2024-01", mustDuration(t, 0, 0, 0, 31, 0, 0, 0), "2024-02"},
		{"2024-03", mustDuration(t, 0, -1, 0, 0, 0, 0, 0), "2024-02"},
		{"2024-03", mustDuration(t, 0, 0, 0, -30, 0, 0, 0), "2024-03"},
		{"2024-03", mustDuration(t, 0, 0, 0, -31, 0, 0, 0), "2024-02"},
		{"2024-03", mustDuration(t, 0, 0, 0, 0, -744, 0, 0), "2024-02"},
	} {
		ym := mustYearMonth(t, 2024, 1)
		if tc.start == "2024-03" {
			ym = mustYearMonth(t, 2024, 3)
		}
		got, err := ym.Add(tc.d)
		require.NoErrorf(t, err, "%s[%d] failed", t.Name(), idx)
		assert.Equalf(t, tc.want, got.String(), "%s[%d] failed", t.Name(), idx)
	}

	back, err := mustYearMonth(t, 2024, 3).Subtract(mustDuration(t, 1, 0, 0, 0, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "2023-03", back.String())
}

func TestPlainYearMonth_Until(t *testing.T) {
	jan := mustYearMonth(t, 2024, 1)
	mar := mustYearMonth(t, 2025, 3)
	nov := mustYearMonth(t, 2025, 11)

	d, err := jan.Until(mar)
	require.NoError(t, err)
	assert.Equal(t, "P1Y2M", d.String())

	d, err = jan.Since(mar)
	require.NoError(t, err)
	assert.Equal(t, "-P1Y2M", d.String())

	d, err = jan.Until(mar, WithLargestUnit(Month))
	require.NoError(t, err)
	assert.Equal(t, "P14M", d.String())

	d, err = jan.Until(mar, WithSmallestUnit(Year), WithRoundingMode(HalfExpand))
	require.NoError(t, err)
	assert.Equal(t, "P1Y", d.String())

	d, err = jan.Until(nov, WithSmallestUnit(Year), WithRoundingMode(HalfExpand))
	require.NoError(t, err)
	assert.Equal(t, "P2Y", d.String())

	d, err = jan.Until(jan)
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = jan.Until(mar, WithSmallestUnit(Day))
	assert.ErrorIs(t, err, ErrRange)

	greg, err := NewPlainYearMonth(2025, 3, Gregorian.Calendar())
	require.NoError(t, err)
	_, err = jan.Until(greg)
	assert.ErrorIs(t, err, ErrRange)
}

func TestPlainYearMonth_ToPlainDate(t *testing.T) {
	feb := mustYearMonth(t, 2024, 2)

	pd, err := feb.ToPlainDate(30)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", pd.String())

	_, err = feb.ToPlainDate(30, WithOverflow(Reject))
	assert.ErrorIs(t, err, ErrRange)

	assert.Equal(t, -1, feb.Compare(mustYearMonth(t, 2024, 3)))
	assert.True(t, feb.Equals(mustYearMonth(t, 2024, 2)))
}

func TestPlainMonthDay(t *testing.T) {
	leap, err := NewPlainMonthDay(2, 29, nil)
	require.NoError(t, err)
	assert.Equal(t, "02-29", leap.String())
	assert.Equal(t, "M02", leap.MonthCode())
	assert.Equal(t, 29, leap.Day())
	assert.Equal(t, MonthDayReferenceYear, leap.ISO().Year)

	pd, err := leap.ToPlainDate(2023)
	require.NoError(t, err)
	assert.Equal(t, "2023-02-28", pd.String())
	pd, err = leap.ToPlainDate(2024)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", pd.String())

	for _, tc := range [][2]int{{2, 30}, {4, 31}, {0, 1}, {13, 1}, {1, 0}} {
		_, err = NewPlainMonthDay(tc[0], tc[1], nil)
		assert.ErrorIsf(t, err, ErrRange, "%s failed for %v", t.Name(), tc)
	}

	md, err := PlainMonthDayFromFields(ISO(), Fields{MonthCode: "M02", Day: Int(30)})
	require.NoError(t, err)
	assert.True(t, md.Equals(leap))

	md, err = PlainMonthDayFromFields(ISO(), Fields{Year: Int(2023), Month: Int(2), Day: Int(30)})
	require.NoError(t, err)
	assert.Equal(t, "02-28", md.String())

	_, err = PlainMonthDayFromFields(Japanese.Calendar(), Fields{Month: Int(2), Day: Int(3)})
	assert.ErrorIs(t, err, ErrMissingField)

	jp, err := NewPlainMonthDay(2, 29, Japanese.Calendar())
	require.NoError(t, err)
	assert.Equal(t, "1972-02-29[u-ca=japanese]", jp.String())
	assert.False(t, jp.Equals(leap))
}
