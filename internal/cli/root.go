package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/alexanderramin/courseplan/internal/config"
	"github.com/alexanderramin/courseplan/internal/logger"
	"github.com/alexanderramin/courseplan/internal/service"
)

// App holds what the commands need: configuration, services and the
// terminal probes.
type App struct {
	Config config.Config
	Plans  service.PlanService
	Log    *logger.Logger

	// Courses returns the course service bound to a data file.
	Courses func(dataFile string) service.CourseService

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// ShowProgress reports whether progress output to stderr is wanted.
	ShowProgress func() bool
}

// NewRootCmd creates the top-level "courseplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "courseplan",
		Short:         "Course curriculum fetcher and daily study planner",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newGenerateDataCmd(app),
		newCheckDataCmd(app),
		newPlanCmd(app),
		newCurriculumCmd(app),
		newPDFCmd(app),
		newExcelCmd(app),
		newExportCmd(app),
		newBrowseCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) progress(cmd *cobra.Command, message string) func() {
	if a.ShowProgress == nil || !a.ShowProgress() {
		return func() {}
	}
	return formatter.StartSpinner(cmd.ErrOrStderr(), message)
}

func (a *App) logger() *logger.Logger {
	if a.Log == nil {
		return logger.Nop()
	}
	return a.Log
}
