package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2026-03-02", DayKey("2026-03-02T10:30:00"))
	assert.Equal(t, "2026-03-02", DayKey("2026-03-02"))
	assert.Equal(t, "10:30", DayKey("10:30"))
}

func TestParseDateTime_ToleratesBareDate(t *testing.T) {
	dt, err := ParseDateTime("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 0, dt.Hour())

	dt, err = ParseDateTime("2026-03-02T10:30:00")
	require.NoError(t, err)
	assert.Equal(t, 10, dt.Hour())
	assert.Equal(t, 30, dt.Minute())

	_, err = ParseDateTime("garbage")
	assert.Error(t, err)
}

func TestCombineAndMinutesOfDay(t *testing.T) {
	assert.Equal(t, "2026-03-02T10:30:00", Combine("2026-03-02", 630))
	assert.Equal(t, "2026-03-02T00:00:00", Combine("2026-03-02", 0))
	assert.Equal(t, "2026-03-02T08:05:00", Combine("2026-03-02", 485))

	m, err := MinutesOfDay("2026-03-02T10:30:00")
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	m, err = MinutesOfDay("2026-03-02")
	require.NoError(t, err)
	assert.Zero(t, m)
}

func TestClockMinutes(t *testing.T) {
	m, err := ClockMinutes("08:15")
	require.NoError(t, err)
	assert.Equal(t, 495, m)

	_, err = ClockMinutes("8:15am")
	assert.Error(t, err)
}

func TestDaysBetween(t *testing.T) {
	days, err := DaysBetween("2026-02-27", "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-02-27", "2026-02-28", "2026-03-01", "2026-03-02"}, days)

	days, err = DaysBetween("2026-03-02", "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-02"}, days)

	days, err = DaysBetween("2026-03-03", "2026-03-02")
	require.NoError(t, err)
	assert.Nil(t, days)

	_, err = DaysBetween("03/02/2026", "2026-03-02")
	assert.Error(t, err)
}

func TestWeekDays(t *testing.T) {
	days, err := WeekDays("2026-03-02")
	require.NoError(t, err)
	require.Len(t, days, 7)
	assert.Equal(t, "2026-03-02", days[0])
	assert.Equal(t, "2026-03-08", days[6])
}
