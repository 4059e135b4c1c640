package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// The store keeps naive local timestamps, the same shapes the desktop shell
// sends: bare dates for all-day values, "T"-joined date-times otherwise.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
	ClockLayout    = "15:04"
)

// DayKey returns the "2006-01-02" calendar date of a stored timestamp,
// accepting both bare dates and full date-times.
func DayKey(ts string) string {
	if len(ts) >= len(DateLayout) {
		return ts[:len(DateLayout)]
	}
	return ts
}

// ParseDate parses a bare "2006-01-02" date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseDateTime parses a stored timestamp, tolerating a bare date
// (interpreted as midnight).
func ParseDateTime(s string) (time.Time, error) {
	if !strings.Contains(s, "T") {
		return time.Parse(DateLayout, s)
	}
	return time.Parse(DateTimeLayout, s)
}

// Combine joins a day key and minutes-from-midnight into a stored timestamp.
func Combine(day string, minutes int) string {
	return fmt.Sprintf("%sT%02d:%02d:00", day, minutes/60, minutes%60)
}

// MinutesOfDay returns minutes from midnight of a stored timestamp.
// Bare dates yield 0.
func MinutesOfDay(ts string) (int, error) {
	t, err := ParseDateTime(ts)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ClockMinutes parses a "15:04" time of day into minutes from midnight.
func ClockMinutes(clock string) (int, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// DaysBetween returns every day key in [start, end], inclusive. start and
// end are "2006-01-02" dates; an inverted range yields nil.
func DaysBetween(start, end string) ([]string, error) {
	s, err := ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("parse start %q: %w", start, err)
	}
	e, err := ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("parse end %q: %w", end, err)
	}
	var days []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DateLayout))
	}
	return days, nil
}

// WeekDays returns the 7 day keys starting at weekStartDate.
func WeekDays(weekStartDate string) ([]string, error) {
	s, err := ParseDate(weekStartDate)
	if err != nil {
		return nil, fmt.Errorf("parse week start %q: %w", weekStartDate, err)
	}
	days := make([]string, 7)
	for i := range days {
		days[i] = s.AddDate(0, 0, i).Format(DateLayout)
	}
	return days, nil
}
