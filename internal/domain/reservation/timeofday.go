package reservation

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"
	minutesPerDay   = 24 * 60
)

// TimeOfDay is a wall-clock time in minutes since midnight.
type TimeOfDay struct {
	minutes int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeOfDayLayout, strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("time must be HH:mm: %w", err)
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

// AddMinutes wraps past midnight.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	v := (t.minutes + m) % minutesPerDay
	if v < 0 {
		v += minutesPerDay
	}
	return TimeOfDay{minutes: v}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// ParseDate parses a YYYY-MM-DD date at midnight in loc (UTC when nil).
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	return d, nil
}

// CombineDateTime joins a date and an HH:mm time into the timestamp string
// the manager API expects, e.g. "2025-03-01T09:00:00".
func CombineDateTime(date, hhmm string) string {
	if date == "" || hhmm == "" {
		return ""
	}
	return date + "T" + hhmm + ":00"
}

// EndTimeFor derives the end time from start and the total duration.
// An empty or malformed start yields an empty end.
func EndTimeFor(start string, totalMinutes int) string {
	if strings.TrimSpace(start) == "" {
		return ""
	}
	t, err := ParseTimeOfDay(start)
	if err != nil {
		return ""
	}
	return t.AddMinutes(totalMinutes).String()
}
