package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breaking-byts/Life-Os-sub000/entities"
	"github.com/breaking-byts/Life-Os-sub000/pkg/calendar/types"
	"github.com/breaking-byts/Life-Os-sub000/pkg/planner"
)

func strPtr(s string) *string { return &s }

func timed(id, startAt, endAt string) types.CalendarItem {
	return types.CalendarItem{ID: id, Source: types.SourceCalendarEvent, StartAt: startAt, EndAt: endAt}
}

func allDay(id, day string) types.CalendarItem {
	return types.CalendarItem{ID: id, Source: types.SourceAssignment, StartAt: day, EndAt: day, AllDay: true}
}

func TestAggregate_EveryDayGetsBuckets(t *testing.T) {
	days := []string{"2026-03-02", "2026-03-03", "2026-03-04"}
	got := Aggregate(days, nil)

	assert.Equal(t, days, got.Days)
	for _, day := range days {
		require.Contains(t, got.AllDayByDay, day)
		require.Contains(t, got.TimedByDay, day)
		assert.Empty(t, got.AllDayByDay[day])
		assert.Empty(t, got.TimedByDay[day])
	}
}

func TestAggregate_PartitionsAndSorts(t *testing.T) {
	days := []string{"2026-03-02", "2026-03-03"}
	items := []types.CalendarItem{
		timed("ce_2", "2026-03-02T14:00:00", "2026-03-02T15:00:00"),
		timed("ce_1", "2026-03-02T09:00:00", "2026-03-02T10:00:00"),
		allDay("asgn_1", "2026-03-02"),
		timed("wpb_1", "2026-03-03T10:00:00", "2026-03-03T11:30:00"),
	}
	got := Aggregate(days, items)

	require.Len(t, got.TimedByDay["2026-03-02"], 2)
	assert.Equal(t, "ce_1", got.TimedByDay["2026-03-02"][0].ID, "timed items sorted by start")
	assert.Equal(t, "ce_2", got.TimedByDay["2026-03-02"][1].ID)

	require.Len(t, got.AllDayByDay["2026-03-02"], 1)
	assert.Equal(t, "asgn_1", got.AllDayByDay["2026-03-02"][0].ID)

	require.Len(t, got.TimedByDay["2026-03-03"], 1)
	assert.Empty(t, got.AllDayByDay["2026-03-03"])
}

func TestAggregate_SynthesizesKeyForStrayItem(t *testing.T) {
	days := []string{"2026-03-02"}
	items := []types.CalendarItem{
		timed("ce_9", "2026-03-10T09:00:00", "2026-03-10T10:00:00"),
	}
	got := Aggregate(days, items)

	assert.Equal(t, []string{"2026-03-02", "2026-03-10"}, got.Days)
	require.Len(t, got.TimedByDay["2026-03-10"], 1)
}

func TestBusyIntervals(t *testing.T) {
	cfg := planner.DefaultConfig()
	day := "2026-03-02"

	suggested := timed("wpb_1", "2026-03-02T10:00:00", "2026-03-02T11:30:00")
	suggested.Source = types.SourcePlanBlock
	suggested.Status = strPtr(entities.BlockStatusSuggested)

	accepted := timed("wpb_2", "2026-03-02T13:00:00", "2026-03-02T14:30:00")
	accepted.Source = types.SourcePlanBlock
	accepted.Status = strPtr(entities.BlockStatusAccepted)

	items := []types.CalendarItem{
		timed("ce_1", "2026-03-02T09:00:00", "2026-03-02T10:30:00"),
		suggested,
		accepted,
		timed("ce_other_day", "2026-03-03T09:00:00", "2026-03-03T10:00:00"),
	}

	busy := BusyIntervals(cfg, day, items)
	assert.Equal(t, []planner.Interval{
		{Start: 9 * 60, End: 10*60 + 30},
		{Start: 13 * 60, End: 14*60 + 30},
	}, busy, "suggested blocks and other days never block the planner")
}

func TestBusyIntervals_AllDayFillsWindow(t *testing.T) {
	cfg := planner.DefaultConfig()
	busy := BusyIntervals(cfg, "2026-03-02", []types.CalendarItem{allDay("asgn_1", "2026-03-02")})
	require.Len(t, busy, 1)
	assert.Equal(t, planner.Interval{Start: cfg.WindowStart(), End: cfg.WindowEnd()}, busy[0])
}

func TestBusyIntervals_ClampsOvernight(t *testing.T) {
	cfg := planner.DefaultConfig()
	items := []types.CalendarItem{
		timed("ce_1", "2026-03-02T22:00:00", "2026-03-03T01:00:00"),
	}
	busy := BusyIntervals(cfg, "2026-03-02", items)
	require.Len(t, busy, 1)
	assert.Equal(t, planner.Interval{Start: 22 * 60, End: 24 * 60}, busy[0])
}

func TestBusyIntervals_SortedByStart(t *testing.T) {
	cfg := planner.DefaultConfig()
	items := []types.CalendarItem{
		timed("ce_2", "2026-03-02T15:00:00", "2026-03-02T16:00:00"),
		timed("ce_1", "2026-03-02T09:00:00", "2026-03-02T10:00:00"),
	}
	busy := BusyIntervals(cfg, "2026-03-02", items)
	require.Len(t, busy, 2)
	assert.Less(t, busy[0].Start, busy[1].Start)
}
