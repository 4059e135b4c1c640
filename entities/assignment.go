package entities

import "time"

type Assignment struct {
	AssignmentID uint   `gorm:"primaryKey" json:"assignment_id"`
	CourseID     uint   `gorm:"index" json:"course_id"`
	Title        string `json:"title"`
	DueDate      string `json:"due_date"` // "2006-01-02" or "2006-01-02T15:04:05"
	IsCompleted  bool   `json:"is_completed"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
