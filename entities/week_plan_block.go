package entities

import "time"

// Plan block types and lifecycle statuses. Status only ever moves forward:
// suggested -> accepted -> locked (lock may skip accepted). Delete is legal
// from any status.
const (
	BlockTypeStudy      = "study"
	BlockTypeAssignment = "assignment"
	BlockTypeExamPrep   = "exam_prep"
	BlockTypeBreak      = "break"
	BlockTypeWeeklyTask = "weekly_task"

	BlockStatusSuggested = "suggested"
	BlockStatusAccepted  = "accepted"
	BlockStatusLocked    = "locked"
)

func ValidBlockType(t string) bool {
	switch t {
	case BlockTypeStudy, BlockTypeAssignment, BlockTypeExamPrep, BlockTypeBreak, BlockTypeWeeklyTask:
		return true
	}
	return false
}

func ValidBlockStatus(s string) bool {
	switch s {
	case BlockStatusSuggested, BlockStatusAccepted, BlockStatusLocked:
		return true
	}
	return false
}

// WeekPlanBlock is the only mutable entity in the aggregated calendar view.
// StartAt/EndAt are naive local date-times ("2006-01-02T15:04:05");
// WeekStartDate is the "2006-01-02" date of the Monday the block belongs to.
type WeekPlanBlock struct {
	BlockID       uint   `gorm:"primaryKey" json:"block_id"`
	WeekStartDate string `gorm:"index" json:"week_start_date"`
	StartAt       string `json:"start_at"`
	EndAt         string `json:"end_at"`
	BlockType     string `json:"block_type"`
	CourseID      *uint  `json:"course_id"`
	WeeklyTaskID  *uint  `json:"weekly_task_id"`
	Title         string `json:"title"`
	Status        string `json:"status"`
	RationaleJSON string `json:"rationale_json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
