package repository

import "github.com/breaking-byts/Life-Os-sub000/entities"

// MeetingRow is a course meeting joined with its course for display fields.
type MeetingRow struct {
	MeetingID   uint
	CourseID    uint
	DayOfWeek   int
	StartTime   string
	EndTime     string
	MeetingType string
	CourseName  string
	Color       string
}

// BlockRow is a plan block joined with its course color.
type BlockRow struct {
	BlockID   uint
	StartAt   string
	EndAt     string
	BlockType string
	CourseID  *uint
	Title     string
	Status    string
	Color     *string
}

type AssignmentRow struct {
	AssignmentID uint
	CourseID     uint
	Title        string
	DueDate      string
	Color        string
}

type ExamRow struct {
	ExamID          uint
	CourseID        uint
	Title           string
	ExamDate        string
	DurationMinutes int
	Color           string
}

// CalendarRepository is the read side of the aggregated view plus the upsert
// surface the sync provider uses for imported events.
type CalendarRepository interface {
	ActiveMeetings() ([]MeetingRow, error)
	Events() ([]entities.CalendarEvent, error)
	BlocksInRange(startDate, endDate string) ([]BlockRow, error)
	DueAssignments(startDate, endDate string) ([]AssignmentRow, error)
	ExamsInRange(startDate, endDate string) ([]ExamRow, error)

	// UpsertImported inserts or updates an event keyed by (calendar_id,
	// external_uid). PruneImported removes imported events of calendarID
	// whose external_uid is not in keep; a full resync is last-write-wins.
	UpsertImported(ev *entities.CalendarEvent) error
	PruneImported(calendarID string, keep []string) (int64, error)
}
