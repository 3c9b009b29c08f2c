package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/alexanderramin/courseplan/internal/domain"
)

type rgb struct{ r, g, b int }

var (
	pdfBlue     = rgb{0x25, 0x63, 0xeb}
	pdfNavy     = rgb{0x1e, 0x40, 0xaf}
	pdfGreen    = rgb{0x05, 0x96, 0x69}
	pdfText     = rgb{0x37, 0x41, 0x51}
	pdfMuted    = rgb{0x6b, 0x72, 0x80}
	pdfRule     = rgb{0xe5, 0xe7, 0xeb}
	pdfFootnote = rgb{0x9c, 0xa3, 0xaf}
	pdfWarning  = rgb{0xb9, 0x1c, 0x1c}
)

// topicPreview is how many items of each topic the breakdown lists.
const topicPreview = 3

// pdfWriter wraps an fpdf document with the section helpers every page
// of the report uses.
type pdfWriter struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	width float64
	left  float64
}

func newPDFWriter(title string) *pdfWriter {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(title, true)
	pdf.SetAuthor("courseplan", true)
	pdf.SetSubject("Daily study schedule with content breakdown", true)
	pdf.SetKeywords("study plan, daily schedule, content breakdown", true)
	pdf.SetCreator("courseplan", true)

	w, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pw := &pdfWriter{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		width: w - left - right,
		left:  left,
	}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pw.font("", 8, pdfFootnote)
		pdf.CellFormat(0, 6, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	return pw
}

func (w *pdfWriter) font(style string, size float64, c rgb) {
	w.pdf.SetFont("Helvetica", style, size)
	w.pdf.SetTextColor(c.r, c.g, c.b)
}

func (w *pdfWriter) line(h float64, text string) {
	w.pdf.MultiCell(0, h, w.tr(text), "", "L", false)
}

func (w *pdfWriter) indented(indent, h float64, text string) {
	w.pdf.SetX(w.left + indent)
	w.pdf.MultiCell(w.width-indent, h, w.tr(text), "", "L", false)
}

func (w *pdfWriter) centered(h float64, text string) {
	w.pdf.CellFormat(0, h, w.tr(text), "", 1, "C", false, 0, "")
}

// section starts a titled section, on a new page when little room is left.
func (w *pdfWriter) section(title string) {
	w.needs(30)
	w.pdf.Ln(4)
	w.font("B", 14, pdfNavy)
	w.line(8, title)
	w.pdf.Ln(2)
}

func (w *pdfWriter) needs(mm float64) {
	_, pageH := w.pdf.GetPageSize()
	_, _, _, bottom := w.pdf.GetMargins()
	if w.pdf.GetY()+mm > pageH-bottom {
		w.pdf.AddPage()
	}
}

func (w *pdfWriter) rule() {
	y := w.pdf.GetY() + 2
	w.pdf.SetDrawColor(pdfRule.r, pdfRule.g, pdfRule.b)
	w.pdf.SetLineWidth(0.3)
	w.pdf.Line(w.left, y, w.left+w.width, y)
	w.pdf.SetY(y + 4)
}

// WritePDF renders the full plan report.
func WritePDF(p *domain.StudyPlan, out io.Writer) error {
	title := p.CourseTitle + " Daily Study Plan"
	w := newPDFWriter(title)
	w.pdf.AddPage()

	w.header(p, title)
	w.overview(p)
	w.contentSummary(p.UnitPlans)
	w.timeBlocks(p.TimeBlocks)
	w.topicBreakdown(p.UnitPlans)
	w.weekly(p.Weekly)
	w.daily(p)
	w.milestones(p.Milestones)
	if err := w.chart(p); err != nil {
		return err
	}

	if err := w.pdf.Error(); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	if err := w.pdf.Output(out); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func (w *pdfWriter) header(p *domain.StudyPlan, title string) {
	w.font("B", 22, pdfBlue)
	w.centered(12, title)
	w.font("", 13, pdfMuted)
	w.centered(8, "Complete daily breakdown with content, quizzes, and tests")
	w.font("", 10, pdfMuted)
	w.centered(6, "Generated on "+p.GeneratedAt.Format("January 2, 2006"))
	w.centered(6, "Plan "+p.ID)
	w.rule()
}

func (w *pdfWriter) overview(p *domain.StudyPlan) {
	w.section("Study Plan Overview")
	t := Totals(p.UnitPlans)
	w.font("", 11, pdfText)
	for _, s := range []string{
		fmt.Sprintf("- Total study time needed: %s", FormatHours(p.TotalHoursNeeded)),
		fmt.Sprintf("- Daily study: %s/day", FormatHours(p.HoursPerDay)),
		fmt.Sprintf("- Daily side work: %s/day", FormatHours(p.SideHoursPerDay)),
		fmt.Sprintf("- Available study days: %d", p.TotalStudyDays),
		fmt.Sprintf("- Study period: %s", StudyPeriod(p)),
		fmt.Sprintf("- Total content: %d videos, %d exercises, %d quizzes, %d tests", t.Videos, t.Exercises, t.Quizzes, t.Tests),
		fmt.Sprintf("- Pace: %s", p.Pace),
	} {
		w.line(6, s)
	}
	if len(p.Backlog) > 0 {
		w.font("B", 11, pdfWarning)
		w.line(6, fmt.Sprintf("- Not scheduled: %d items (%s) do not fit the calendar", len(p.Backlog), FormatMinutes(p.BacklogMinutes)))
	}
}

func (w *pdfWriter) contentSummary(units []domain.UnitPlan) {
	w.section("Content Breakdown by Unit")
	for _, u := range units {
		w.needs(16)
		w.font("B", 11, pdfBlue)
		w.line(6, fmt.Sprintf("%d. %s", u.UnitNumber, u.UnitTitle))
		w.font("", 10, pdfMuted)
		w.indented(4, 5, fmt.Sprintf("Time: %s | Topics: %d | Videos: %d | Exercises: %d",
			FormatHours(u.EstimatedHours), len(u.Topics), u.CountKind(isVideo), u.CountKind(isExercise)))
		quizzes, tests := u.CountKind(domain.ContentKind.IsQuiz), u.CountKind(domain.ContentKind.IsTest)
		if quizzes > 0 || tests > 0 {
			w.indented(4, 5, fmt.Sprintf("Assessments: %d quizzes, %d tests", quizzes, tests))
		}
		w.pdf.Ln(2)
	}
}

func (w *pdfWriter) timeBlocks(blocks []domain.TimeBlock) {
	if len(blocks) == 0 {
		return
	}
	w.section("Daily Schedule Template")
	for _, b := range blocks {
		w.font("B", 10, pdfBlue)
		w.pdf.CellFormat(42, 6, w.tr(b.TimeSlot), "", 0, "L", false, 0, "")
		w.font("", 10, pdfText)
		w.pdf.MultiCell(0, 6, w.tr(b.Activity+" - "+b.Description), "", "L", false)
	}
}

func (w *pdfWriter) topicBreakdown(units []domain.UnitPlan) {
	w.section("Comprehensive Topic Breakdown")
	for _, u := range units {
		w.needs(24)
		w.font("B", 12, pdfNavy)
		w.line(7, fmt.Sprintf("Unit %d: %s", u.UnitNumber, u.UnitTitle))
		w.font("", 10, pdfMuted)
		w.indented(4, 5, fmt.Sprintf("%s | %d topics | %d content items", FormatHours(u.EstimatedHours), len(u.Topics), u.ContentCount()))

		for i, t := range u.TopicDetails {
			w.needs(14)
			w.font("B", 10, pdfGreen)
			w.indented(8, 5, fmt.Sprintf("%d. %s", i+1, t.Title))
			w.font("", 9, pdfMuted)
			w.indented(12, 4.5, fmt.Sprintf("%s | %d items | %d videos", FormatHours(t.EstimatedHours), len(t.Contents), t.VideoCount))

			w.font("", 8, pdfText)
			for _, c := range t.Contents[:min(topicPreview, len(t.Contents))] {
				w.indented(16, 4, fmt.Sprintf("- %s: %s (%s)", c.Kind, c.Title, FormatMinutes(c.EstimatedMinutes)))
			}
			if extra := len(t.Contents) - topicPreview; extra > 0 {
				w.font("I", 8, pdfMuted)
				w.indented(16, 4, fmt.Sprintf("... and %d more content items", extra))
			}
			w.pdf.Ln(1)
		}
		w.pdf.Ln(2)
	}
}

func (w *pdfWriter) weekly(weeks []domain.WeeklySchedule) {
	w.section("Weekly Goals Summary")
	if len(weeks) == 0 {
		w.font("I", 11, pdfMuted)
		w.line(6, EmptySchedule)
		return
	}
	for _, wk := range weeks {
		w.font("B", 11, pdfNavy)
		w.pdf.CellFormat(22, 6, fmt.Sprintf("Week %d:", wk.WeekNumber), "", 0, "L", false, 0, "")
		w.font("", 11, pdfText)
		w.pdf.MultiCell(0, 6, w.tr(fmt.Sprintf("%s (%s, %d days)", WeeklyGoalText(wk), FormatHours(wk.TotalHours), wk.AvailableDays)), "", "L", false)
	}
}

func (w *pdfWriter) daily(p *domain.StudyPlan) {
	w.section("Detailed Daily Study Plan")
	if !p.HasSchedule() {
		w.font("I", 11, pdfMuted)
		w.line(6, EmptySchedule)
		return
	}

	week := 0
	for i, d := range p.DailyBreakdown {
		if d.WeekNumber != week {
			week = d.WeekNumber
			w.needs(30)
			w.font("B", 12, pdfNavy)
			w.line(8, fmt.Sprintf("Week %d", week))
		}
		w.needs(26)
		w.font("B", 11, pdfGreen)
		w.line(6, fmt.Sprintf("%s, %s", d.Day, d.DateLabel))
		w.font("", 10, pdfText)
		w.indented(4, 5, "Topic: "+d.Topic)
		w.indented(4, 5, "Goal: "+GoalText(d.Goal))
		w.indented(4, 5, "Unit: "+d.UnitTitle)

		w.font("B", 10, pdfBlue)
		w.indented(4, 5, "Today's content:")
		w.font("", 9, pdfText)
		for _, l := range ScheduleLines(d) {
			w.indented(8, 4.5, "- "+l)
		}
		w.font("", 8, pdfMuted)
		w.indented(4, 4.5, fmt.Sprintf("%s scheduled of %s budget, %s idle",
			FormatMinutes(d.ScheduledMinutes), FormatMinutes(d.BudgetMinutes), FormatMinutes(d.IdleMinutes)))
		w.pdf.Ln(2)

		if (i+1)%7 == 0 && i < len(p.DailyBreakdown)-1 {
			w.rule()
		}
	}
}

func (w *pdfWriter) milestones(ms []domain.Milestone) {
	w.section("Major Milestones")
	if len(ms) == 0 {
		w.font("I", 11, pdfMuted)
		w.line(6, EmptySchedule)
		return
	}
	for _, m := range ms {
		w.needs(14)
		w.font("B", 11, pdfGreen)
		w.pdf.CellFormat(30, 6, m.Date.Format(domain.DateLayout), "", 0, "L", false, 0, "")
		w.font("", 11, pdfText)
		w.pdf.MultiCell(0, 6, w.tr(m.Description), "", "L", false)
		w.font("", 10, pdfMuted)
		w.indented(4, 5, fmt.Sprintf("Progress: %d%% (%.1fh total)", m.PercentComplete, m.HoursCompleted))
	}
}

func (w *pdfWriter) chart(p *domain.StudyPlan) error {
	var buf bytes.Buffer
	if err := WriteChart(p, &buf); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}

	w.section("Progress Chart")
	const name = "progress-chart"
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	w.pdf.RegisterImageOptionsReader(name, opts, &buf)
	h := w.width * ChartHeight / ChartWidth
	w.needs(h)
	w.pdf.ImageOptions(name, w.left, w.pdf.GetY(), w.width, h, true, opts, 0, "")
	return nil
}
