package entities

import "time"

type WeeklyTask struct {
	TaskID           uint   `gorm:"primaryKey" json:"task_id"`
	Title            string `json:"title"`
	EstimatedMinutes int    `json:"estimated_minutes"`
	DayOfWeek        *int   `json:"day_of_week"` // preferred day, nil = any

	CreatedAt time.Time
	UpdatedAt time.Time
}
