package serviceImp

import (
	"sort"
	"time"

	"github.com/breaking-byts/Life-Os-sub000/entities"
	"github.com/breaking-byts/Life-Os-sub000/pkg/calendar/types"
	"github.com/breaking-byts/Life-Os-sub000/pkg/planner"
	"github.com/breaking-byts/Life-Os-sub000/pkg/timeutil"
)

// Aggregate partitions items into all-day and timed buckets keyed by day.
// Every requested day gets an entry in both maps even when empty, and no
// item is ever dropped: an item whose start date matches none of the
// requested days synthesizes a new key. The upstream range filter is not
// guaranteed bit-exact, so robustness wins over strict validation here.
func Aggregate(days []string, items []types.CalendarItem) types.WeekBuckets {
	buckets := types.WeekBuckets{
		Days:        append([]string(nil), days...),
		AllDayByDay: make(map[string][]types.CalendarItem, len(days)),
		TimedByDay:  make(map[string][]types.CalendarItem, len(days)),
	}
	for _, day := range buckets.Days {
		buckets.AllDayByDay[day] = []types.CalendarItem{}
		buckets.TimedByDay[day] = []types.CalendarItem{}
	}

	for _, item := range items {
		key := timeutil.DayKey(item.StartAt)
		if _, ok := buckets.TimedByDay[key]; !ok {
			buckets.Days = append(buckets.Days, key)
			buckets.AllDayByDay[key] = []types.CalendarItem{}
			buckets.TimedByDay[key] = []types.CalendarItem{}
		}
		if item.AllDay {
			buckets.AllDayByDay[key] = append(buckets.AllDayByDay[key], item)
		} else {
			buckets.TimedByDay[key] = append(buckets.TimedByDay[key], item)
		}
	}

	for day := range buckets.TimedByDay {
		sortByStart(buckets.TimedByDay[day])
	}
	return buckets
}

// BusyIntervals converts a day's non-suggested items into planner input.
// All-day items occupy the whole planning window; timed items clamp to the
// day boundary when they spill past midnight.
func BusyIntervals(cfg planner.Config, day string, items []types.CalendarItem) []planner.Interval {
	var busy []planner.Interval
	for _, item := range items {
		if item.Source == types.SourcePlanBlock &&
			item.Status != nil && *item.Status == entities.BlockStatusSuggested {
			continue
		}
		if timeutil.DayKey(item.StartAt) != day {
			continue
		}
		if item.AllDay {
			busy = append(busy, planner.Interval{Start: cfg.WindowStart(), End: cfg.WindowEnd()})
			continue
		}
		start, err := timeutil.MinutesOfDay(item.StartAt)
		if err != nil {
			continue
		}
		end := 24 * 60
		if timeutil.DayKey(item.EndAt) == day {
			if m, err := timeutil.MinutesOfDay(item.EndAt); err == nil {
				end = m
			}
		}
		if end > start {
			busy = append(busy, planner.Interval{Start: start, End: end})
		}
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].Start < busy[j].Start })
	return busy
}

func sortByStart(items []types.CalendarItem) {
	sort.Slice(items, func(i, j int) bool { return items[i].StartAt < items[j].StartAt })
}

func minutes(n int) time.Duration { return time.Duration(n) * time.Minute }
