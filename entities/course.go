package entities

import "time"

type Course struct {
	CourseID uint   `gorm:"primaryKey" json:"course_id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Color    string `json:"color"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CourseMeeting is a weekly recurring class meeting. DayOfWeek follows
// time.Weekday numbering (0 = Sunday). Times are stored as "15:04".
type CourseMeeting struct {
	MeetingID   uint   `gorm:"primaryKey" json:"meeting_id"`
	CourseID    uint   `gorm:"index" json:"course_id"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Location    string `json:"location"`
	MeetingType string `json:"meeting_type"` // lecture|lab|tutorial

	CreatedAt time.Time
	UpdatedAt time.Time
}
