package scheduler

import (
	"time"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// AvailableDays lists every calendar day in [cal.Start, cal.End) that is
// neither an excluded weekday nor inside a blackout window, ascending.
func AvailableDays(cal domain.Calendar) []time.Time {
	start, end := domain.DateOf(cal.Start), domain.DateOf(cal.End)
	var days []time.Time
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		if cal.IsExcluded(d) {
			continue
		}
		if _, blocked := cal.BlackoutFor(d); blocked {
			continue
		}
		days = append(days, d)
	}
	return days
}
