package entities

import "time"

type Exam struct {
	ExamID          uint   `gorm:"primaryKey" json:"exam_id"`
	CourseID        uint   `gorm:"index" json:"course_id"`
	Title           string `json:"title"`
	ExamDate        string `json:"exam_date"` // "2006-01-02" (all-day) or "2006-01-02T15:04:05" (timed)
	DurationMinutes int    `json:"duration_minutes"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
