package domain

import (
	"fmt"
	"time"
)

// DateLayout is the on-disk and command-line date format.
const DateLayout = "2006-01-02"

// Date returns midnight UTC of the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DateOf truncates t to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// BlackoutWindow is a named date range during which no study happens.
// Both Start and End are inclusive.
type BlackoutWindow struct {
	Name  string
	Kind  BlackoutKind
	Start time.Time
	End   time.Time
}

// Contains reports whether day falls inside the window.
func (w BlackoutWindow) Contains(day time.Time) bool {
	d := DateOf(day)
	return !d.Before(DateOf(w.Start)) && !d.After(DateOf(w.End))
}

// Validate checks that the window is well formed.
func (w BlackoutWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("blackout %q: start and end are required", w.Name)
	}
	if w.End.Before(w.Start) {
		return fmt.Errorf("blackout %q: end %s is before start %s",
			w.Name, w.End.Format(DateLayout), w.Start.Format(DateLayout))
	}
	return nil
}

// Calendar describes the study period: [Start, End) minus blackout windows
// and excluded weekdays.
type Calendar struct {
	Start            time.Time
	End              time.Time
	Blackouts        []BlackoutWindow
	ExcludedWeekdays []time.Weekday
}

// IsExcluded reports whether day's weekday is excluded.
func (c Calendar) IsExcluded(day time.Time) bool {
	for _, wd := range c.ExcludedWeekdays {
		if day.Weekday() == wd {
			return true
		}
	}
	return false
}

// BlackoutFor returns the first blackout window containing day.
func (c Calendar) BlackoutFor(day time.Time) (BlackoutWindow, bool) {
	for _, w := range c.Blackouts {
		if w.Contains(day) {
			return w, true
		}
	}
	return BlackoutWindow{}, false
}
