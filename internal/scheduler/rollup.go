package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// Rollup derives weekly summaries and unit-completion milestones from the
// unit plans and the available days. Both are empty when days is empty.
func Rollup(units []domain.UnitPlan, days []time.Time, hoursPerDay float64, align domain.WeekAlignment) ([]domain.WeeklySchedule, []domain.Milestone) {
	return WeeklySchedules(units, days, hoursPerDay, align), Milestones(units, days, hoursPerDay)
}

// Milestones places one milestone per unit at the day index reached by
// accumulating ceil(unitHours/hoursPerDay) days, clamped to the last day.
func Milestones(units []domain.UnitPlan, days []time.Time, hoursPerDay float64) []domain.Milestone {
	if len(days) == 0 || len(units) == 0 {
		return []domain.Milestone{}
	}

	total := 0.0
	for _, u := range units {
		total += u.EstimatedHours
	}

	out := make([]domain.Milestone, 0, len(units))
	cumulative := 0.0
	dayIndex := 0
	completed := make([]string, 0, len(units))
	for _, u := range units {
		dayIndex = min(dayIndex+daysNeeded(u.EstimatedHours, hoursPerDay), len(days)-1)
		cumulative += u.EstimatedHours
		completed = append(completed, u.UnitTitle)

		out = append(out, domain.Milestone{
			Date:            days[dayIndex],
			DayIndex:        dayIndex,
			UnitNumber:      u.UnitNumber,
			Description:     "Complete " + u.UnitTitle,
			HoursCompleted:  domain.Round(cumulative, 1),
			PercentComplete: percentOf(cumulative, total),
			UnitsCompleted:  append([]string(nil), completed...),
		})
	}
	return out
}

func daysNeeded(hours, hoursPerDay float64) int {
	if hoursPerDay <= 0 || hours <= 0 {
		return 0
	}
	return int(math.Ceil(hours / hoursPerDay))
}

// percentOf treats a zero total as fully complete.
func percentOf(part, total float64) int {
	if total <= 0 {
		return 100
	}
	return int(math.Round(part / total * 100))
}

// WeeklySchedules groups days into 7-day windows and assigns each window
// a slice of the current unit's topics. A unit is left once the weeks
// spent on it reach ceil(unitHours/weeklyHours); weeks with no study
// hours do not count toward that.
func WeeklySchedules(units []domain.UnitPlan, days []time.Time, hoursPerDay float64, align domain.WeekAlignment) []domain.WeeklySchedule {
	if len(days) == 0 || len(units) == 0 {
		return []domain.WeeklySchedule{}
	}

	weekStart := weekAnchor(days[0], align)
	last := days[len(days)-1]
	unitIndex, weeksInUnit := 0, 1
	var out []domain.WeeklySchedule

	for n := 1; !weekStart.After(last) && unitIndex < len(units); n++ {
		weekEnd := weekStart.AddDate(0, 0, 6)
		available := countDaysBetween(days, weekStart, weekEnd)
		weeklyHours := float64(available) * hoursPerDay
		u := units[unitIndex]

		topics := topicsForWeek(u, weeklyHours)
		out = append(out, domain.WeeklySchedule{
			WeekNumber:       n,
			WeekStart:        weekStart,
			WeekEnd:          weekEnd,
			AvailableDays:    available,
			UnitNumber:       u.UnitNumber,
			UnitTitle:        u.UnitTitle,
			TopicsToComplete: append([]string{}, u.Topics[:topics]...),
			TotalHours:       weeklyHours,
			ShortWeek:        available < 7,
		})

		if weeklyHours > 0 {
			if float64(weeksInUnit) >= math.Ceil(u.EstimatedHours/weeklyHours) {
				unitIndex++
				weeksInUnit = 1
			} else {
				weeksInUnit++
			}
		}
		weekStart = weekStart.AddDate(0, 0, 7)
	}
	return out
}

func weekAnchor(first time.Time, align domain.WeekAlignment) time.Time {
	if align == domain.AlignSunday {
		return first.AddDate(0, 0, -int(first.Weekday()))
	}
	return first
}

func countDaysBetween(days []time.Time, from, to time.Time) int {
	n := 0
	for _, d := range days {
		if !d.Before(from) && !d.After(to) {
			n++
		}
	}
	return n
}

func topicsForWeek(u domain.UnitPlan, weeklyHours float64) int {
	if len(u.Topics) == 0 || weeklyHours <= 0 {
		return 0
	}
	perTopic := u.EstimatedHours / float64(len(u.Topics))
	if perTopic <= 0 {
		return len(u.Topics)
	}
	return min(int(math.Floor(weeklyHours/perTopic)), len(u.Topics))
}
