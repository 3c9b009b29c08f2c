package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/alexanderramin/courseplan/internal/config"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/report"
)

var errNotInteractive = errors.New("interactive mode needs a terminal on stdin")

func newPlanCmd(app *App) *cobra.Command {
	var flags planFlags
	var interactive, asJSON bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate the daily study plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.apply(app.Config, cmd.Flags())
			if err != nil {
				return err
			}
			if interactive {
				if !app.interactive() {
					return errNotInteractive
				}
				if cfg, err = runPlanWizard(cfg); err != nil {
					return err
				}
			}

			plan, err := app.buildPlan(cmd, cfg)
			if err != nil {
				return err
			}
			if asJSON {
				return report.WriteJSON(plan, cmd.OutOrStdout())
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Collect dates, hours and pace in a form before planning")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	cmd.Flags().AddFlagSet(flags.flagSet())
	return cmd
}

func newCurriculumCmd(app *App) *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "curriculum",
		Short: "Show the course units and topics with their estimated time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.ensureCourse(cmd, app.dataFile(dataFile), false)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCurriculum(res.File.CourseFile))
			return nil
		},
	}

	cmd.Flags().AddFlagSet(dataFileFlagSet(&dataFile))
	return cmd
}

// buildPlan loads the course named by cfg and runs the planner on it.
func (a *App) buildPlan(cmd *cobra.Command, cfg config.Config) (*domain.StudyPlan, error) {
	res, err := a.ensureCourse(cmd, cfg.Course.DataFile, false)
	if err != nil {
		return nil, err
	}
	req, err := planRequest(cfg, res.File.Course)
	if err != nil {
		return nil, err
	}

	plan, err := a.Plans.Generate(cmd.Context(), req)
	if err != nil {
		return nil, fmt.Errorf("generating plan: %w", err)
	}
	a.logger().Debug("plan generated",
		"plan_id", plan.ID,
		"days", plan.TotalStudyDays,
		"backlog_items", len(plan.Backlog),
	)
	return plan, nil
}
