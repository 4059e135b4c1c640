package service

import (
	"github.com/breaking-byts/Life-Os-sub000/pkg/calendar/types"
	"github.com/breaking-byts/Life-Os-sub000/pkg/planner"
)

type CalendarService interface {
	// Items returns the unified feed for [startDate, endDate], one item per
	// occurrence.
	Items(startDate, endDate string, includeAssignments, includeExams bool) ([]types.CalendarItem, error)

	// Week returns the aggregated buckets for the 7 days starting at startDate.
	Week(startDate string) (types.WeekBuckets, error)

	// BusyIntervals derives the planner input for one day: every non-suggested
	// item on that day, all-day items occupying the whole planning window.
	BusyIntervals(day string, items []types.CalendarItem) []planner.Interval
}
