package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/report"
)

type browseKeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	PrevWeek key.Binding
	NextWeek key.Binding
	First    key.Binding
	Last     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Prev:     key.NewBinding(key.WithKeys("left", "h", "k", "up"), key.WithHelp("←", "previous day")),
		Next:     key.NewBinding(key.WithKeys("right", "l", "j", "down"), key.WithHelp("→", "next day")),
		PrevWeek: key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "previous week")),
		NextWeek: key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next week")),
		First:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first day")),
		Last:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last day")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Help, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.PrevWeek, k.NextWeek},
		{k.First, k.Last, k.Help, k.Quit},
	}
}

// browseModel pages through a plan one study day at a time.
type browseModel struct {
	plan   *domain.StudyPlan
	cursor int
	keys   browseKeyMap
	help   help.Model
}

func newBrowseModel(plan *domain.StudyPlan) browseModel {
	return browseModel{
		plan: plan,
		keys: newBrowseKeyMap(),
		help: help.New(),
	}
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		last := len(m.plan.DailyBreakdown) - 1
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case last < 0:
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, m.keys.Next):
			m.cursor = min(m.cursor+1, last)
		case key.Matches(msg, m.keys.PrevWeek):
			m.cursor = m.weekStart(m.week() - 1)
		case key.Matches(msg, m.keys.NextWeek):
			m.cursor = m.weekStart(m.week() + 1)
		case key.Matches(msg, m.keys.First):
			m.cursor = 0
		case key.Matches(msg, m.keys.Last):
			m.cursor = last
		}
	}
	return m, nil
}

func (m browseModel) week() int {
	return m.plan.DailyBreakdown[m.cursor].WeekNumber
}

// weekStart returns the first day of week n, clamped to the plan's weeks.
func (m browseModel) weekStart(n int) int {
	days := m.plan.DailyBreakdown
	if n < days[0].WeekNumber {
		return 0
	}
	for i, d := range days {
		if d.WeekNumber >= n {
			return i
		}
	}
	// past the last week: stay on the first day of the last week
	return m.weekStart(days[len(days)-1].WeekNumber)
}

func (m browseModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header(m.plan.CourseTitle) + "\n\n")

	days := m.plan.DailyBreakdown
	if len(days) == 0 {
		b.WriteString(formatter.StyleYellow.Render(report.EmptySchedule) + "\n\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	d := days[m.cursor]
	fmt.Fprintf(&b, "%s  %s\n\n",
		formatter.Dim(fmt.Sprintf("Day %d of %d, week %d", m.cursor+1, len(days), d.WeekNumber)),
		formatter.RenderProgress(float64(report.DayProgress(m.cursor, len(days)))/100, 20))
	b.WriteString(formatter.FormatDay(d))

	if w := m.weekly(d.WeekNumber); w != nil {
		fmt.Fprintf(&b, "\n%s %s\n", formatter.Dim("This week:"), report.WeeklyGoalText(*w))
	}
	for _, ms := range m.plan.Milestones {
		if ms.DayIndex == d.DayIndex {
			fmt.Fprintf(&b, "%s %s\n", formatter.StyleGreen.Render("★"), ms.Description)
		}
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m browseModel) weekly(n int) *domain.WeeklySchedule {
	for i := range m.plan.Weekly {
		if m.plan.Weekly[i].WeekNumber == n {
			return &m.plan.Weekly[i]
		}
	}
	return nil
}

func newBrowseCmd(app *App) *cobra.Command {
	var flags planFlags

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through the study plan day by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			cfg, err := flags.apply(app.Config, cmd.Flags())
			if err != nil {
				return err
			}
			plan, err := app.buildPlan(cmd, cfg)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newBrowseModel(plan), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().AddFlagSet(flags.flagSet())
	return cmd
}
