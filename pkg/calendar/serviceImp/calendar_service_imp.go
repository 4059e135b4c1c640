package serviceImp

import (
	"fmt"
	"log"
	"strings"

	"github.com/teambition/rrule-go"

	"github.com/breaking-byts/Life-Os-sub000/entities"
	"github.com/breaking-byts/Life-Os-sub000/pkg/calendar/repository"
	"github.com/breaking-byts/Life-Os-sub000/pkg/calendar/service"
	"github.com/breaking-byts/Life-Os-sub000/pkg/calendar/types"
	"github.com/breaking-byts/Life-Os-sub000/pkg/planner"
	"github.com/breaking-byts/Life-Os-sub000/pkg/timeutil"
)

type calSvc struct {
	repo repository.CalendarRepository
	cfg  planner.Config
}

func New(repo repository.CalendarRepository, cfg planner.Config) service.CalendarService {
	return &calSvc{repo: repo, cfg: cfg}
}

func (s *calSvc) Items(startDate, endDate string, includeAssignments, includeExams bool) ([]types.CalendarItem, error) {
	days, err := timeutil.DaysBetween(startDate, endDate)
	if err != nil {
		return nil, err
	}

	var items []types.CalendarItem

	meetings, err := s.repo.ActiveMeetings()
	if err != nil {
		return nil, fmt.Errorf("load meetings: %w", err)
	}
	items = append(items, expandMeetings(meetings, days)...)

	events, err := s.repo.Events()
	if err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}
	items = append(items, expandEvents(events, startDate, endDate)...)

	blocks, err := s.repo.BlocksInRange(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("load blocks: %w", err)
	}
	for _, b := range blocks {
		items = append(items, blockItem(b))
	}

	if includeAssignments {
		asgns, err := s.repo.DueAssignments(startDate, endDate)
		if err != nil {
			return nil, fmt.Errorf("load assignments: %w", err)
		}
		for _, a := range asgns {
			items = append(items, assignmentItem(a))
		}
	}

	if includeExams {
		exams, err := s.repo.ExamsInRange(startDate, endDate)
		if err != nil {
			return nil, fmt.Errorf("load exams: %w", err)
		}
		for _, e := range exams {
			items = append(items, examItem(e))
		}
	}

	return items, nil
}

func (s *calSvc) Week(startDate string) (types.WeekBuckets, error) {
	days, err := timeutil.WeekDays(startDate)
	if err != nil {
		return types.WeekBuckets{}, err
	}
	items, err := s.Items(days[0], days[len(days)-1], true, true)
	if err != nil {
		return types.WeekBuckets{}, err
	}
	return Aggregate(days, items), nil
}

func (s *calSvc) BusyIntervals(day string, items []types.CalendarItem) []planner.Interval {
	return BusyIntervals(s.cfg, day, items)
}

// expandMeetings projects weekly course meetings onto each matching day in
// the requested range.
func expandMeetings(meetings []repository.MeetingRow, days []string) []types.CalendarItem {
	var out []types.CalendarItem
	for _, m := range meetings {
		for _, day := range days {
			d, err := timeutil.ParseDate(day)
			if err != nil || int(d.Weekday()) != m.DayOfWeek {
				continue
			}
			mtype := m.MeetingType
			if mtype == "" {
				mtype = "Class"
			}
			item := types.CalendarItem{
				ID:       fmt.Sprintf("%s%d_%s", types.PrefixCourseMeeting, m.MeetingID, day),
				Source:   types.SourceCourseMeeting,
				Title:    m.CourseName + " - " + mtype,
				StartAt:  day + "T" + m.StartTime + ":00",
				EndAt:    day + "T" + m.EndTime + ":00",
				Locked:   true,
				Editable: false,
			}
			cid := m.CourseID
			item.CourseID = &cid
			name := m.CourseName
			item.CourseName = &name
			cat := "class"
			item.Category = &cat
			if m.Color != "" {
				color := m.Color
				item.Color = &color
			}
			out = append(out, item)
		}
	}
	return out
}

// expandEvents emits one-off events inside the range as-is and expands
// recurring ones through their RRULE.
func expandEvents(events []entities.CalendarEvent, startDate, endDate string) []types.CalendarItem {
	var out []types.CalendarItem
	for _, ev := range events {
		if ev.RRule == "" {
			if ev.StartAt == "" || ev.EndAt == "" {
				continue
			}
			day := timeutil.DayKey(ev.StartAt)
			if day < startDate || day > endDate {
				continue
			}
			out = append(out, eventItem(ev, fmt.Sprintf("%s%d", types.PrefixCalendarEvent, ev.EventID), ev.StartAt, ev.EndAt))
			continue
		}
		out = append(out, expandRecurringEvent(ev, startDate, endDate)...)
	}
	return out
}

func expandRecurringEvent(ev entities.CalendarEvent, startDate, endDate string) []types.CalendarItem {
	rule, err := rrule.StrToRRule(strings.TrimPrefix(ev.RRule, "RRULE:"))
	if err != nil {
		log.Printf("[calendar] skip event %d: bad rrule %q: %v", ev.EventID, ev.RRule, err)
		return nil
	}

	// DTSTART anchors the recurrence; fall back to the range start when the
	// event only carries times of day.
	anchor := ev.StartAt
	if anchor == "" {
		anchor = startDate + "T" + orClock(ev.StartTime, "09:00") + ":00"
	}
	dtstart, err := timeutil.ParseDateTime(anchor)
	if err != nil {
		log.Printf("[calendar] skip event %d: bad start %q: %v", ev.EventID, anchor, err)
		return nil
	}
	rule.DTStart(dtstart)

	rangeStart, err1 := timeutil.ParseDate(startDate)
	rangeEnd, err2 := timeutil.ParseDate(endDate)
	if err1 != nil || err2 != nil {
		return nil
	}
	// Inclusive of the whole last day.
	occurrences := rule.Between(rangeStart, rangeEnd.AddDate(0, 0, 1), true)

	st := orClock(ev.StartTime, "09:00")
	et := orClock(ev.EndTime, "10:00")

	var out []types.CalendarItem
	for _, occ := range occurrences {
		day := occ.Format(timeutil.DateLayout)
		if day > endDate {
			continue
		}
		id := fmt.Sprintf("%s%d_%s", types.PrefixCalendarEvent, ev.EventID, day)
		out = append(out, eventItem(ev, id, day+"T"+st+":00", day+"T"+et+":00"))
	}
	return out
}

func orClock(clock, def string) string {
	if clock == "" {
		return def
	}
	return clock
}

func eventItem(ev entities.CalendarEvent, id, startAt, endAt string) types.CalendarItem {
	item := types.CalendarItem{
		ID:       id,
		Source:   types.SourceCalendarEvent,
		Title:    ev.Title,
		StartAt:  startAt,
		EndAt:    endAt,
		Locked:   ev.Locked,
		Editable: false,
	}
	if ev.Category != "" {
		cat := ev.Category
		item.Category = &cat
	}
	return item
}

func blockItem(b repository.BlockRow) types.CalendarItem {
	title := b.Title
	if title == "" {
		title = b.BlockType
	}
	locked := b.Status == entities.BlockStatusLocked
	item := types.CalendarItem{
		ID:       fmt.Sprintf("%s%d", types.PrefixPlanBlock, b.BlockID),
		Source:   types.SourcePlanBlock,
		Title:    title,
		StartAt:  b.StartAt,
		EndAt:    b.EndAt,
		Locked:   locked,
		Editable: !locked,
	}
	item.CourseID = b.CourseID
	item.Color = b.Color
	cat := b.BlockType
	item.Category = &cat
	status := b.Status
	item.Status = &status
	return item
}

func assignmentItem(a repository.AssignmentRow) types.CalendarItem {
	day := timeutil.DayKey(a.DueDate)
	item := types.CalendarItem{
		ID:       fmt.Sprintf("%s%d", types.PrefixAssignment, a.AssignmentID),
		Source:   types.SourceAssignment,
		Title:    "Due: " + a.Title,
		StartAt:  day,
		EndAt:    day,
		AllDay:   true,
		Locked:   true,
		Editable: false,
	}
	cid := a.CourseID
	item.CourseID = &cid
	cat := "deadline"
	item.Category = &cat
	if a.Color != "" {
		color := a.Color
		item.Color = &color
	}
	return item
}

func examItem(e repository.ExamRow) types.CalendarItem {
	item := types.CalendarItem{
		ID:       fmt.Sprintf("%s%d", types.PrefixExam, e.ExamID),
		Source:   types.SourceExam,
		Title:    "Exam: " + e.Title,
		Locked:   true,
		Editable: false,
	}
	if strings.Contains(e.ExamDate, "T") && e.DurationMinutes > 0 {
		start, err := timeutil.ParseDateTime(e.ExamDate)
		if err == nil {
			item.StartAt = e.ExamDate
			item.EndAt = start.Add(minutes(e.DurationMinutes)).Format(timeutil.DateTimeLayout)
		}
	}
	if item.StartAt == "" {
		day := timeutil.DayKey(e.ExamDate)
		item.StartAt = day
		item.EndAt = day
		item.AllDay = true
	}
	cid := e.CourseID
	item.CourseID = &cid
	cat := "exam"
	item.Category = &cat
	if e.Color != "" {
		color := e.Color
		item.Color = &color
	}
	return item
}
