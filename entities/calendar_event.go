package entities

import "time"

// CalendarEvent is a one-off or recurring event. One-off events carry
// StartAt/EndAt as naive local date-times ("2006-01-02T15:04:05");
// recurring events carry an RRULE string plus StartTime/EndTime of day.
// Imported events (pulled from a remote calendar feed) are keyed by
// CalendarID+ExternalUID so a resync can upsert and prune them.
type CalendarEvent struct {
	EventID     uint   `gorm:"primaryKey" json:"event_id"`
	Title       string `json:"title"`
	StartAt     string `json:"start_at"`
	EndAt       string `json:"end_at"`
	RRule       string `json:"rrule"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Category    string `json:"category"`
	Locked      bool   `json:"locked"`
	Notes       string `json:"notes"`
	ExternalUID string `gorm:"index" json:"external_uid"`
	CalendarID  string `gorm:"index" json:"calendar_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
