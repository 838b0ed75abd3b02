package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberbook/api/internal/httperr"
)

func TestNormalizeTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9", "09:00"},
		{"09", "09:00"},
		{"9:00", "09:00"},
		{"09:00", "09:00"},
		{"9:30", "09:30"},
		{"17:45", "17:45"},
		{"  10:00  ", "10:00"},
		{"0", "00:00"},
		{"23", "23:00"},
	}

	for _, tc := range cases {
		got, err := NormalizeTime(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNormalizeTime_Idempotent(t *testing.T) {
	once, err := NormalizeTime("9")
	require.NoError(t, err)

	twice, err := NormalizeTime(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestNormalizeTime_Invalid(t *testing.T) {
	for _, in := range []string{"", "24", "-1", "99:00", "12:60", "not a time"} {
		_, err := NormalizeTime(in)
		require.Error(t, err, "input %q", in)

		var ve httperr.ValidationError
		assert.ErrorAs(t, err, &ve, "input %q", in)
	}
}

func TestParseDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)

	d, err := ParseDate("2026-09-15", loc)
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.September, d.Month())
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, loc, d.Location())

	_, err = ParseDate("15/09/2026", loc)
	require.Error(t, err)
	assert.True(t, httperr.IsValidation(err, "invalid_date"))
}

func TestCombineDateTime(t *testing.T) {
	loc := time.UTC

	ts, err := CombineDateTime("2026-09-15", "09:30", loc)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15 09:30", ts.Format("2006-01-02 15:04"))
}

func TestDayBounds(t *testing.T) {
	loc := time.UTC
	ts, err := CombineDateTime("2026-09-15", "14:00", loc)
	require.NoError(t, err)

	start, end := DayBounds(ts)
	assert.Equal(t, "2026-09-15 00:00", start.Format("2006-01-02 15:04"))
	assert.Equal(t, "2026-09-16 00:00", end.Format("2006-01-02 15:04"))
}
