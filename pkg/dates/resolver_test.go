package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDailyTwoDigitMonth(t *testing.T) {
	d, err := Resolve("/monetarypolicy/fomcminutes20191030.htm", WidthDaily)
	require.NoError(t, err)

	assert.Equal(t, "2019/10/30", d.String())
	assert.Equal(t, 2019, d.Year)
	assert.Equal(t, 10, d.Month)
	assert.Equal(t, 30, d.Day)
	assert.Equal(t, time.Date(2019, time.October, 30, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestResolveDailyMonthShift(t *testing.T) {
	// Zero after the year means a single-digit month in the legacy encoding:
	// the label must be "2019/9/01", not "2019/09/01".
	d, err := Resolve("fomcminutes20190901.htm", WidthDaily)
	require.NoError(t, err)

	assert.Equal(t, "2019/9/01", d.String())
	assert.Equal(t, 9, d.Month)
	assert.Equal(t, 1, d.Day)

	// January follows the same path: code "0130" labels as "1/30".
	d, err = Resolve("/monetarypolicy/fomcminutes20190130.htm", WidthDaily)
	require.NoError(t, err)
	assert.Equal(t, "2019/1/30", d.String())
	assert.Equal(t, 1, d.Month)
	assert.Equal(t, 30, d.Day)
	assert.Equal(t, time.Date(2019, time.January, 30, 0, 0, 0, 0, time.UTC), d.Time())
}

func TestResolveDailyLiteralDay(t *testing.T) {
	d, err := Resolve("/newsevents/pressreleases/monetary20141217a.htm", WidthDaily)
	require.NoError(t, err)

	assert.Equal(t, "2014/12/17", d.String())
	assert.Equal(t, 17, d.Day)
}

func TestResolveMonthlySynthesizesFirstOfMonth(t *testing.T) {
	d, err := Resolve("/monetarypolicy/beigebook199610.htm", WidthMonthly)
	require.NoError(t, err)

	assert.Equal(t, "1996/10/01", d.String())
	assert.Equal(t, 1, d.Day)
}

func TestResolveMonthlyMonthShift(t *testing.T) {
	d, err := Resolve("/monetarypolicy/beigebook200609.htm", WidthMonthly)
	require.NoError(t, err)

	assert.Equal(t, "2006/9/01", d.String())
	assert.Equal(t, 9, d.Month)
}

func TestResolveMonthlyUsesFirstSixDigitsOfLongerCode(t *testing.T) {
	// Newer Beige Book filenames carry eight digits; the monthly form still
	// reads the leading six and synthesizes the first of the month.
	d, err := Resolve("/monetarypolicy/beigebook20221130.htm", WidthMonthly)
	require.NoError(t, err)

	assert.Equal(t, "2022/11/01", d.String())
}

func TestResolveNoDateCode(t *testing.T) {
	_, err := Resolve("/monetarypolicy/beige-book-default.htm", WidthDaily)
	assert.ErrorIs(t, err, ErrNoDateCode)

	_, err = Resolve("/docs/abc12.htm", WidthMonthly)
	assert.ErrorIs(t, err, ErrNoDateCode)
}

func TestResolveUnsupportedWidth(t *testing.T) {
	_, err := Resolve("doc20190130.htm", 7)
	assert.Error(t, err)
}

func TestResolveIsPure(t *testing.T) {
	first, err := Resolve("fomcminutes20190130.htm", WidthDaily)
	require.NoError(t, err)
	second, err := Resolve("fomcminutes20190130.htm", WidthDaily)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
