package types

// Item sources. The source tag decides styling, editability and which store
// a mutation targets; only plan_block items are ever mutated.
const (
	SourceCourseMeeting = "course_meeting"
	SourceCalendarEvent = "calendar_event"
	SourceAssignment    = "assignment"
	SourceExam          = "exam"
	SourcePlanBlock     = "plan_block"
)

// ID prefixes. A plan_block item id ("wpb_<n>") must map back to exactly one
// persisted block; every other source is a read-only projection.
const (
	PrefixCourseMeeting = "cm_"
	PrefixCalendarEvent = "ce_"
	PrefixAssignment    = "asgn_"
	PrefixExam          = "exam_"
	PrefixPlanBlock     = "wpb_"
)

// CalendarItem is the unified render model, one per occurrence in range.
type CalendarItem struct {
	ID         string  `json:"id"`
	Source     string  `json:"source"`
	Title      string  `json:"title"`
	StartAt    string  `json:"start_at"` // naive local; bare date for all-day
	EndAt      string  `json:"end_at"`
	AllDay     bool    `json:"all_day"`
	Color      *string `json:"color,omitempty"`
	CourseID   *uint   `json:"course_id,omitempty"`
	CourseName *string `json:"course_name,omitempty"`
	Category   *string `json:"category,omitempty"`
	Status     *string `json:"status,omitempty"` // plan blocks only
	Locked     bool    `json:"locked"`
	Editable   bool    `json:"editable"`
}

// WeekBuckets is the render-ready partition of items, keyed by "2006-01-02"
// day keys. Every requested day has an entry in both maps even when empty.
type WeekBuckets struct {
	Days        []string                  `json:"days"`
	AllDayByDay map[string][]CalendarItem `json:"all_day_by_day"`
	TimedByDay  map[string][]CalendarItem `json:"timed_by_day"`
}
