package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/alexanderramin/courseplan/internal/config"
	"github.com/alexanderramin/courseplan/internal/domain"
)

func courseplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// planAnswers holds the wizard fields as the form edits them.
type planAnswers struct {
	Start           string
	End             string
	HoursPerDay     string
	Pace            string
	ExcludeWeekdays []string
}

func answersFrom(cfg config.Config) planAnswers {
	excluded := make([]string, 0, len(cfg.Calendar.ExcludedWeekdays))
	for _, name := range cfg.Calendar.ExcludedWeekdays {
		if wd, err := config.ParseWeekday(name); err == nil {
			excluded = append(excluded, strings.ToLower(wd.String()))
		}
	}
	return planAnswers{
		Start:           cfg.Calendar.Start,
		End:             cfg.Calendar.End,
		HoursPerDay:     strconv.FormatFloat(cfg.Study.HoursPerDay, 'f', -1, 64),
		Pace:            cfg.Study.Pace,
		ExcludeWeekdays: excluded,
	}
}

// apply copies the answers onto cfg and validates the result.
func (a planAnswers) apply(cfg config.Config) (config.Config, error) {
	hours, err := strconv.ParseFloat(strings.TrimSpace(a.HoursPerDay), 64)
	if err != nil {
		return config.Config{}, fmt.Errorf("hours per day %q: %w", a.HoursPerDay, err)
	}
	cfg.Calendar.Start = strings.TrimSpace(a.Start)
	cfg.Calendar.End = strings.TrimSpace(a.End)
	cfg.Calendar.ExcludedWeekdays = append([]string(nil), a.ExcludeWeekdays...)
	cfg.Study.HoursPerDay = hours
	cfg.Study.Pace = a.Pace

	if err := cfg.Check(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func planWizardForm(a *planAnswers) *huh.Form {
	weekdays := make([]huh.Option[string], 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		name := strings.ToLower(wd.String())
		weekdays = append(weekdays, huh.NewOption(wd.String(), name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First study day").
				Placeholder("2025-06-23").
				Value(&a.Start).
				Validate(validateDate),
			huh.NewInput().
				Title("End date").
				Description("The first day without study").
				Placeholder("2025-09-14").
				Value(&a.End).
				Validate(validateDate),
			huh.NewInput().
				Title("Study hours per day").
				Placeholder("3").
				Value(&a.HoursPerDay).
				Validate(validateHours),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pace").
				Options(
					huh.NewOption("Adaptive (more hours on heavy days)", string(domain.PaceAdaptive)),
					huh.NewOption("Fixed (same hours every day)", string(domain.PaceFixed)),
				).
				Value(&a.Pace),
			huh.NewMultiSelect[string]().
				Title("Days without study").
				Options(weekdays...).
				Value(&a.ExcludeWeekdays),
		),
	).WithTheme(courseplanHuhTheme()).WithShowHelp(true)
}

// runPlanWizard asks for the plan settings, prefilled from cfg.
func runPlanWizard(cfg config.Config) (config.Config, error) {
	answers := answersFrom(cfg)
	if err := planWizardForm(&answers).Run(); err != nil {
		return config.Config{}, fmt.Errorf("plan wizard: %w", err)
	}
	return answers.apply(cfg)
}

func validateDate(s string) error {
	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validateHours(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 || v > 24 {
		return fmt.Errorf("enter a number of hours between 0 and 24")
	}
	return nil
}
