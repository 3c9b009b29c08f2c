// Package report renders study plans as text, PDF, XLSX, PNG and JSON.
// All human-facing phrasing of plan data lives here.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// EmptySchedule is shown wherever a plan has no study days.
const EmptySchedule = "No study days available"

const reviewMaterial = "Review previous material"

// GoalText renders a day goal as a one-line instruction.
func GoalText(g domain.DayGoal) string {
	switch g.Kind {
	case domain.GoalItemPart:
		return fmt.Sprintf("Work on: %s Part %d/%d - %s", g.Topic, g.Part, g.TotalParts, g.Title)
	case domain.GoalCompleteItem:
		return fmt.Sprintf("Complete: %s (%s)", g.Title, g.ItemKind)
	case domain.GoalSingleTopic:
		return fmt.Sprintf("Work on: %s (%d items)", g.Topic, g.ItemCount)
	case domain.GoalMixedTopics:
		if len(g.Topics) <= 2 {
			return "Work on: " + strings.Join(g.Topics, " + ")
		}
		return fmt.Sprintf("Work on: %s + %d more topics", g.Topics[0], len(g.Topics)-1)
	default:
		return "Review previous topics"
	}
}

// SliceText renders one scheduled slice, e.g. "Video: Intro (Part 1/3) [30min]".
func SliceText(s domain.ScheduledSlice) string {
	part := ""
	if s.Partial {
		part = fmt.Sprintf(" (Part %d/%d)", s.Part, s.TotalParts)
	}
	return fmt.Sprintf("%s: %s%s [%dmin]", s.Kind, s.Title, part, int(math.Round(s.Minutes)))
}

// ScheduleLines returns one line per slice scheduled on the day, or a
// single review line for a day with nothing scheduled.
func ScheduleLines(d domain.DailyBreakdown) []string {
	if len(d.Items) == 0 {
		return []string{reviewMaterial}
	}
	lines := make([]string, len(d.Items))
	for i, s := range d.Items {
		lines[i] = SliceText(s)
	}
	return lines
}

// ScheduleText joins ScheduleLines with " | ".
func ScheduleText(d domain.DailyBreakdown) string {
	return strings.Join(ScheduleLines(d), " | ")
}

// WeeklyGoalText renders the target of one week.
func WeeklyGoalText(w domain.WeeklySchedule) string {
	return fmt.Sprintf("Complete %d topics from %s", len(w.TopicsToComplete), w.UnitTitle)
}

// ProgressStatus labels a completion percentage with its stage.
func ProgressStatus(pct int) string {
	switch {
	case pct <= 25:
		return fmt.Sprintf("%d%% Complete (Early Stage)", pct)
	case pct <= 50:
		return fmt.Sprintf("%d%% Complete (Quarter Done)", pct)
	case pct <= 75:
		return fmt.Sprintf("%d%% Complete (Halfway)", pct)
	default:
		return fmt.Sprintf("%d%% Complete (Final Stage)", pct)
	}
}

// DayProgress is the share of the calendar elapsed by the end of day i.
func DayProgress(i, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(i+1) / float64(total) * 100))
}

// StatusText renders a day status.
func StatusText(s domain.DayStatus) string {
	switch s {
	case domain.DayCompleted:
		return "Completes items"
	case domain.DayPartial:
		return "Partial progress"
	default:
		return "Review"
	}
}

// FormatMinutes renders minutes as "45min" or, from an hour up, "1.5h".
func FormatMinutes(m float64) string {
	if m >= 60 {
		return fmt.Sprintf("%.1fh", m/60)
	}
	return fmt.Sprintf("%dmin", int(math.Round(m)))
}

// FormatHours renders hours with at most one decimal.
func FormatHours(h float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", h), ".0") + "h"
}

// StudyPeriod renders the first and last study day of the plan.
func StudyPeriod(p *domain.StudyPlan) string {
	if !p.HasSchedule() {
		return EmptySchedule
	}
	first := p.DailyBreakdown[0]
	last := p.DailyBreakdown[len(p.DailyBreakdown)-1]
	return first.DateLabel + " to " + last.DateLabel
}

// ContentTotals counts plan content by the kinds reports list.
type ContentTotals struct {
	Videos    int
	Exercises int
	Quizzes   int
	Tests     int
	Items     int
	Topics    int
}

func Totals(units []domain.UnitPlan) ContentTotals {
	var t ContentTotals
	for _, u := range units {
		t.Videos += u.CountKind(isVideo)
		t.Exercises += u.CountKind(isExercise)
		t.Quizzes += u.CountKind(domain.ContentKind.IsQuiz)
		t.Tests += u.CountKind(domain.ContentKind.IsTest)
		t.Items += u.ContentCount()
		t.Topics += len(u.Topics)
	}
	return t
}

func isVideo(k domain.ContentKind) bool    { return k == domain.KindVideo }
func isExercise(k domain.ContentKind) bool { return k == domain.KindExercise }
