package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/courseplan/internal/domain"
)

const (
	SheetDaily   = "Daily Study Schedule"
	SheetSummary = "Study Plan Summary"
	SheetContent = "Detailed Content Breakdown"
)

var (
	dailyHeader   = []interface{}{"Day", "Date", "Topic", "Daily Goal", "Daily Schedule", "Unit", "Week", "Study Hours", "Status"}
	summaryHeader = []interface{}{"Study Metric", "Value", "Progress"}
	contentHeader = []interface{}{"Unit", "Topic", "Content Type", "Title", "Minutes", "URL", "Completed"}

	dailyWidths   = []float64{12, 14, 35, 45, 80, 35, 8, 12, 15}
	summaryWidths = []float64{30, 30, 18}
	contentWidths = []float64{35, 35, 16, 50, 10, 60, 12}
)

type workbook struct {
	f      *excelize.File
	header int
	wrap   int
	link   int
}

// WriteExcel writes the plan as a three sheet workbook: the daily schedule,
// a summary of plan metrics and the per item content breakdown.
func WriteExcel(p *domain.StudyPlan, out io.Writer) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	wb := &workbook{f: f}
	if err := wb.styles(); err != nil {
		return err
	}
	if err := f.SetSheetName("Sheet1", SheetDaily); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}
	for _, name := range []string{SheetSummary, SheetContent} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("creating sheet %q: %w", name, err)
		}
	}

	steps := []func(*domain.StudyPlan) error{wb.daily, wb.summary, wb.content}
	for _, step := range steps {
		if err := step(p); err != nil {
			return err
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       p.CourseTitle + " Study Plan",
		Subject:     "Daily study schedule",
		Creator:     "courseplan",
		Description: "Plan " + p.ID,
	}); err != nil {
		return fmt.Errorf("setting document properties: %w", err)
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func (wb *workbook) styles() error {
	var err error
	wb.header, err = wb.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"2563EB"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	wb.wrap, err = wb.f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("creating cell style: %w", err)
	}
	wb.link, err = wb.f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "1E40AF", Underline: "single"},
	})
	if err != nil {
		return fmt.Errorf("creating link style: %w", err)
	}
	return nil
}

// table writes the header row, column widths and a frozen header pane.
func (wb *workbook) table(sheet string, header []interface{}, widths []float64) error {
	if err := wb.f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("writing %s header: %w", sheet, err)
	}
	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := wb.f.SetCellStyle(sheet, "A1", last+"1", wb.header); err != nil {
		return fmt.Errorf("styling %s header: %w", sheet, err)
	}
	if err := wb.f.SetRowHeight(sheet, 1, 22); err != nil {
		return err
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := wb.f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	return wb.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (wb *workbook) row(sheet string, n int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	if err := wb.f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("writing %s row %d: %w", sheet, n, err)
	}
	return nil
}

func (wb *workbook) daily(p *domain.StudyPlan) error {
	if err := wb.table(SheetDaily, dailyHeader, dailyWidths); err != nil {
		return err
	}
	if !p.HasSchedule() {
		return wb.row(SheetDaily, 2, []interface{}{EmptySchedule})
	}

	total := len(p.DailyBreakdown)
	for i, d := range p.DailyBreakdown {
		n := i + 2
		values := []interface{}{
			d.Day,
			d.DateLabel,
			d.Topic,
			GoalText(d.Goal),
			ScheduleText(d),
			d.UnitTitle,
			d.WeekNumber,
			d.StudyHours,
			ProgressStatus(DayProgress(i, total)),
		}
		if err := wb.row(SheetDaily, n, values); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(dailyHeader), total+1)
	if err != nil {
		return err
	}
	return wb.f.SetCellStyle(SheetDaily, "A2", last, wb.wrap)
}

func (wb *workbook) summary(p *domain.StudyPlan) error {
	if err := wb.table(SheetSummary, summaryHeader, summaryWidths); err != nil {
		return err
	}

	t := Totals(p.UnitPlans)
	scheduled := p.ScheduledHours()
	coverage := "0%"
	if p.TotalHoursNeeded > 0 {
		coverage = fmt.Sprintf("%d%%", int(min(scheduled/p.TotalHoursNeeded, 1)*100))
	}
	rows := [][]interface{}{
		{"Course", p.CourseTitle, ""},
		{"Total Study Days", p.TotalStudyDays, ""},
		{"Daily Study Hours", p.HoursPerDay, ""},
		{"Daily Side Hours", p.SideHoursPerDay, ""},
		{"Total Hours Needed", domain.Round(p.TotalHoursNeeded, 2), ""},
		{"Hours Scheduled", domain.Round(scheduled, 2), coverage},
		{"Study Period", StudyPeriod(p), ""},
		{"Pace", string(p.Pace), ""},
		{"Units", len(p.UnitPlans), ""},
		{"Topics", t.Topics, ""},
		{"Videos", t.Videos, ""},
		{"Exercises", t.Exercises, ""},
		{"Quizzes", t.Quizzes, ""},
		{"Tests", t.Tests, ""},
		{"Unscheduled Items", len(p.Backlog), FormatMinutes(p.BacklogMinutes)},
	}
	for _, m := range p.Milestones {
		rows = append(rows, []interface{}{
			"Milestone: " + m.Date.Format(domain.DateLayout),
			m.Description,
			fmt.Sprintf("%d%%", m.PercentComplete),
		})
	}

	for i, r := range rows {
		if err := wb.row(SheetSummary, i+2, r); err != nil {
			return err
		}
	}
	return nil
}

func (wb *workbook) content(p *domain.StudyPlan) error {
	if err := wb.table(SheetContent, contentHeader, contentWidths); err != nil {
		return err
	}

	n := 2
	for _, u := range p.UnitPlans {
		for _, t := range u.TopicDetails {
			for _, c := range t.Contents {
				values := []interface{}{
					u.UnitTitle,
					t.Title,
					string(c.Kind),
					c.Title,
					domain.Round(c.EstimatedMinutes, 1),
					c.URL,
					"",
				}
				if err := wb.row(SheetContent, n, values); err != nil {
					return err
				}
				if c.URL != "" {
					cell, err := excelize.CoordinatesToCellName(6, n)
					if err != nil {
						return err
					}
					if err := wb.f.SetCellHyperLink(SheetContent, cell, c.URL, "External"); err != nil {
						return fmt.Errorf("linking %s: %w", cell, err)
					}
					if err := wb.f.SetCellStyle(SheetContent, cell, cell, wb.link); err != nil {
						return err
					}
				}
				n++
			}
		}
	}
	return nil
}
