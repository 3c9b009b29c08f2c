package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/courseplan/internal/cli/formatter"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/service"
)

func newGenerateDataCmd(app *App) *cobra.Command {
	var force bool
	var dataFile string

	cmd := &cobra.Command{
		Use:   "generate-data",
		Short: "Fetch the course and write the local course data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.ensureCourse(cmd, app.dataFile(dataFile), force)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEnsure(res))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Fetch again even if a valid data file exists")
	cmd.Flags().AddFlagSet(dataFileFlagSet(&dataFile))
	return cmd
}

func newCheckDataCmd(app *App) *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "check-data",
		Short: "Report on the local course data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Courses(app.dataFile(dataFile)).Check(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCheck(res)+"\n")
			if !res.Exists || !res.Valid {
				return fmt.Errorf("course data at %s is not usable", res.Path)
			}
			return nil
		},
	}

	cmd.Flags().AddFlagSet(dataFileFlagSet(&dataFile))
	return cmd
}

func (a *App) dataFile(flag string) string {
	return domain.CoalesceStr(flag, a.Config.Course.DataFile)
}

// ensureCourse makes sure the course data file exists, fetching it when
// needed, and warns on stderr when it is stale.
func (a *App) ensureCourse(cmd *cobra.Command, dataFile string, force bool) (*service.EnsureResult, error) {
	stop := a.progress(cmd, "Loading course data...")
	res, err := a.Courses(dataFile).Ensure(cmd.Context(), force)
	stop()
	if err != nil {
		return nil, err
	}
	if res.Stale && !force {
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.Warning(
			fmt.Sprintf("%s is older than %d days, run generate-data --force to refresh", res.File.Path, a.Config.Course.StaleAfterDays)))
	}
	return res, nil
}
