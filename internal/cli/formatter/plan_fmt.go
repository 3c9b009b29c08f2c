package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/report"
)

const (
	planTopicPreview = 2
	planWeekPreview  = 6
	planDayPreview   = 3
	planBarWidth     = 12
)

// FormatPlan renders the console summary of a study plan.
func FormatPlan(p *domain.StudyPlan) string {
	var b strings.Builder

	b.WriteString(formatPlanOverview(p))
	b.WriteString("\n")
	b.WriteString(FormatUnits(p.UnitPlans))

	if len(p.TimeBlocks) > 0 {
		b.WriteString("\n" + Header("Daily schedule template") + "\n")
		rows := make([][]string, len(p.TimeBlocks))
		for i, tb := range p.TimeBlocks {
			rows[i] = []string{StyleBlue.Render(tb.TimeSlot), Bold(tb.Activity), tb.Duration, Dim(tb.Description)}
		}
		b.WriteString(RenderTable([]string{"SLOT", "ACTIVITY", "DURATION", "NOTES"}, rows))
	}

	if !p.HasSchedule() {
		b.WriteString("\n" + StyleYellow.Render(report.EmptySchedule) + "\n")
		b.WriteString(formatBacklog(p))
		return RenderBox("Study plan", b.String())
	}

	b.WriteString("\n" + Header("Weekly goals") + "\n")
	b.WriteString(formatWeeks(p.Weekly))

	b.WriteString("\n" + Header("Milestones") + "\n")
	b.WriteString(formatMilestones(p.Milestones))

	b.WriteString("\n" + Header("First days") + "\n")
	for _, d := range p.DailyBreakdown[:min(planDayPreview, len(p.DailyBreakdown))] {
		b.WriteString(FormatDay(d))
		b.WriteString("\n")
	}
	if extra := len(p.DailyBreakdown) - planDayPreview; extra > 0 {
		b.WriteString(Dim(fmt.Sprintf("... and %d more days (see the pdf, excel or browse commands)", extra)) + "\n")
	}

	b.WriteString(formatBacklog(p))

	return RenderBox("Study plan", b.String())
}

func formatBacklog(p *domain.StudyPlan) string {
	if len(p.Backlog) == 0 {
		return ""
	}
	return "\n" + Warning(fmt.Sprintf("%s (%s) do not fit before the end date",
		Plural(len(p.Backlog), "item"), report.FormatMinutes(p.BacklogMinutes))) + "\n"
}

func formatPlanOverview(p *domain.StudyPlan) string {
	coverage := 0.0
	if p.TotalHoursNeeded > 0 {
		coverage = p.ScheduledHours() / p.TotalHoursNeeded
	}
	rows := [][]string{
		{"Course", Bold(p.CourseTitle)},
		{"Plan", Dim(p.ID)},
		{"Study period", report.StudyPeriod(p)},
		{"Study days", fmt.Sprintf("%d", p.TotalStudyDays)},
		{"Daily hours", fmt.Sprintf("%s study + %s side work", report.FormatHours(p.HoursPerDay), report.FormatHours(p.SideHoursPerDay))},
		{"Total needed", report.FormatHours(domain.Round(p.TotalHoursNeeded, 1))},
		{"Coverage", RenderProgress(coverage, planBarWidth)},
		{"Pace", string(p.Pace)},
	}
	var b strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", StyleDim.Width(14).Render(r[0]), r[1])
	}
	return b.String()
}

// FormatUnits renders the per-unit curriculum summary and content totals.
func FormatUnits(units []domain.UnitPlan) string {
	var b strings.Builder
	b.WriteString(Header("Curriculum") + "\n")
	for _, u := range units {
		fmt.Fprintf(&b, "%s %s %s\n",
			StyleBlue.Render(fmt.Sprintf("%2d.", u.UnitNumber)),
			Bold(u.UnitTitle),
			Dim(fmt.Sprintf("(%s)", report.FormatHours(u.EstimatedHours))))

		counts := []string{Plural(len(u.Topics), "topic")}
		for _, c := range []struct {
			n    int
			noun string
		}{
			{u.CountKind(isVideo), "video"},
			{u.CountKind(isExercise), "exercise"},
			{u.CountKind(domain.ContentKind.IsQuiz), "quiz"},
			{u.CountKind(domain.ContentKind.IsTest), "test"},
		} {
			if c.n > 0 {
				counts = append(counts, Plural(c.n, c.noun))
			}
		}
		b.WriteString("    " + Dim(strings.Join(counts, ", ")) + "\n")

		for _, t := range u.Topics[:min(planTopicPreview, len(u.Topics))] {
			b.WriteString("    - " + t + "\n")
		}
		if extra := len(u.Topics) - planTopicPreview; extra > 0 {
			b.WriteString(Dim(fmt.Sprintf("    ... and %d more", extra)) + "\n")
		}
	}

	t := report.Totals(units)
	fmt.Fprintf(&b, "\n%s %s, %s, %s, %s, %s\n",
		Bold("Total:"),
		Plural(t.Topics, "topic"),
		Plural(t.Videos, "video"),
		Plural(t.Exercises, "exercise"),
		Plural(t.Quizzes, "quiz"),
		Plural(t.Tests, "test"))
	return b.String()
}

func formatWeeks(weeks []domain.WeeklySchedule) string {
	rows := make([][]string, 0, planWeekPreview)
	for _, w := range weeks[:min(planWeekPreview, len(weeks))] {
		days := fmt.Sprintf("%d", w.AvailableDays)
		if w.ShortWeek {
			days = StyleYellow.Render(days + " (short)")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", w.WeekNumber),
			ShortDate(w.WeekStart),
			days,
			report.FormatHours(w.TotalHours),
			report.WeeklyGoalText(w),
		})
	}
	out := RenderTable([]string{"WEEK", "STARTS", "DAYS", "HOURS", "GOAL"}, rows)
	if extra := len(weeks) - planWeekPreview; extra > 0 {
		out += Dim(fmt.Sprintf("... and %d more weeks", extra)) + "\n"
	}
	return out
}

func formatMilestones(ms []domain.Milestone) string {
	if len(ms) == 0 {
		return Dim("No unit is completed within the calendar") + "\n"
	}
	var b strings.Builder
	for _, m := range ms {
		fmt.Fprintf(&b, "%s  %s  %s\n",
			StyleGreen.Render(m.Date.Format(domain.DateLayout)),
			m.Description,
			RenderProgress(float64(m.PercentComplete)/100, planBarWidth))
	}
	return b.String()
}

// FormatDay renders one study day with its goal and slices.
func FormatDay(d domain.DailyBreakdown) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n",
		Bold(fmt.Sprintf("Day %d", d.DayIndex+1)),
		StyleBlue.Render(fmt.Sprintf("%s, %s", d.Day, d.DateLabel)),
		StatusIndicator(d.Status))
	fmt.Fprintf(&b, "  %s\n", report.GoalText(d.Goal))
	if d.UnitTitle != "" {
		fmt.Fprintf(&b, "  %s\n", Dim("Unit: "+d.UnitTitle))
	}
	for _, line := range report.ScheduleLines(d) {
		fmt.Fprintf(&b, "    - %s\n", line)
	}
	fmt.Fprintf(&b, "  %s\n", Dim(fmt.Sprintf("%s of %s scheduled",
		report.FormatMinutes(d.ScheduledMinutes), report.FormatMinutes(d.BudgetMinutes))))
	return b.String()
}

func isVideo(k domain.ContentKind) bool    { return k == domain.KindVideo }
func isExercise(k domain.ContentKind) bool { return k == domain.KindExercise }
