package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/alexanderramin/courseplan/internal/report"
)

type reportSpec struct {
	use    string
	short  string
	suffix string
	label  string
	write  report.Writer
}

func newPDFCmd(app *App) *cobra.Command {
	return newReportCmd(app, reportSpec{
		use:    "pdf",
		short:  "Write the study plan as a PDF report",
		suffix: "-study-plan.pdf",
		label:  "PDF report",
		write:  report.WritePDF,
	})
}

func newExcelCmd(app *App) *cobra.Command {
	return newReportCmd(app, reportSpec{
		use:    "excel",
		short:  "Write the daily schedule as an Excel workbook",
		suffix: "-daily-schedule.xlsx",
		label:  "Excel workbook",
		write:  report.WriteExcel,
	})
}

func newExportCmd(app *App) *cobra.Command {
	return newReportCmd(app, reportSpec{
		use:    "export",
		short:  "Write the full study plan as JSON",
		suffix: "-study-plan.json",
		label:  "JSON export",
		write:  report.WriteJSON,
	})
}

func newReportCmd(app *App, spec reportSpec) *cobra.Command {
	var flags planFlags
	var output string

	cmd := &cobra.Command{
		Use:   spec.use,
		Short: spec.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.apply(app.Config, cmd.Flags())
			if err != nil {
				return err
			}
			plan, err := app.buildPlan(cmd, cfg)
			if err != nil {
				return err
			}

			if output == "" {
				output = defaultOutput(cfg, spec.suffix)
			}
			if err := report.SaveFile(output, plan, spec.write); err != nil {
				return fmt.Errorf("writing %s: %w", spec.label, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s written to %s\n",
				formatter.StyleGreen.Render("✔"), spec.label, formatter.Bold(output))
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", formatter.Dim(fmt.Sprintf("%s, %s",
				formatter.Plural(plan.TotalStudyDays, "study day"), report.StudyPeriod(plan))))
			if len(plan.Backlog) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "  "+formatter.Warning(fmt.Sprintf("%s do not fit the calendar",
					formatter.Plural(len(plan.Backlog), "item"))))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (defaults to <course>"+spec.suffix+")")
	cmd.Flags().AddFlagSet(flags.flagSet())
	return cmd
}
