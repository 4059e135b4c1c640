package entities

import "time"

// Setting is a plain key/value row used for state that lives outside the
// domain tables, e.g. the sync backoff counters.
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`

	UpdatedAt time.Time
}
