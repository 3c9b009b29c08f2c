package cli

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/pflag"

	"github.com/alexanderramin/courseplan/internal/config"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/service"
)

// planFlags are the calendar and study overrides shared by every command
// that builds a plan.
type planFlags struct {
	start           string
	end             string
	blackouts       []string
	excludeWeekdays []string
	hoursPerDay     float64
	sideHoursPerDay float64
	pace            string
	weekAlignment   string
	dataFile        string
}

func (f *planFlags) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("plan", pflag.ContinueOnError)
	fs.StringVar(&f.start, "start", "", "First study day (YYYY-MM-DD)")
	fs.StringVar(&f.end, "end", "", "Day after the last study day (YYYY-MM-DD)")
	fs.StringArrayVar(&f.blackouts, "blackout", nil, "Blackout window name:YYYY-MM-DD:YYYY-MM-DD, replaces the configured ones (repeatable)")
	fs.StringSliceVar(&f.excludeWeekdays, "exclude-weekday", nil, "Weekdays without study, replaces the configured ones (e.g. sunday,saturday)")
	fs.Float64Var(&f.hoursPerDay, "hours-per-day", 0, "Study hours per available day")
	fs.Float64Var(&f.sideHoursPerDay, "side-hours-per-day", 0, "Hours of side work per day, shown in reports")
	fs.StringVar(&f.pace, "pace", "", "Allocation pace: adaptive or fixed")
	fs.StringVar(&f.weekAlignment, "week-alignment", "", "Weekly rollup start: first_day or sunday")
	fs.AddFlagSet(dataFileFlagSet(&f.dataFile))
	return fs
}

func dataFileFlagSet(dataFile *string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("data", pflag.ContinueOnError)
	fs.StringVar(dataFile, "data-file", "", "Course data file (defaults to course.data_file)")
	return fs
}

// apply copies every flag the user set onto cfg and validates the result.
func (f *planFlags) apply(cfg config.Config, fs *pflag.FlagSet) (config.Config, error) {
	if fs.Changed("start") {
		cfg.Calendar.Start = f.start
	}
	if fs.Changed("end") {
		cfg.Calendar.End = f.end
	}
	if fs.Changed("blackout") {
		cfg.Calendar.Blackouts = nil
		for _, raw := range f.blackouts {
			b, err := config.ParseBlackout(raw)
			if err != nil {
				return config.Config{}, fmt.Errorf("--blackout: %w", err)
			}
			cfg.Calendar.Blackouts = append(cfg.Calendar.Blackouts, b)
		}
	}
	if fs.Changed("exclude-weekday") {
		cfg.Calendar.ExcludedWeekdays = f.excludeWeekdays
	}
	if fs.Changed("hours-per-day") {
		cfg.Study.HoursPerDay = f.hoursPerDay
	}
	if fs.Changed("side-hours-per-day") {
		cfg.Study.SideHoursPerDay = f.sideHoursPerDay
	}
	if fs.Changed("pace") {
		cfg.Study.Pace = strings.ToLower(f.pace)
	}
	if fs.Changed("week-alignment") {
		cfg.Calendar.WeekAlignment = strings.ToLower(f.weekAlignment)
	}
	if fs.Changed("data-file") {
		cfg.Course.DataFile = f.dataFile
	}

	if err := cfg.Check(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// planRequest turns a validated configuration and a course into a
// planning request.
func planRequest(cfg config.Config, course *domain.Course) (service.PlanRequest, error) {
	cal, err := cfg.Calendar.Calendar()
	if err != nil {
		return service.PlanRequest{}, err
	}
	return service.PlanRequest{
		Course:          course,
		Calendar:        cal,
		HoursPerDay:     cfg.Study.HoursPerDay,
		SideHoursPerDay: cfg.Study.SideHoursPerDay,
		Pace:            domain.Pace(cfg.Study.Pace),
		WeekAlignment:   cfg.Calendar.Alignment(),
		TimeBlocks:      cfg.TimeBlocks,
	}, nil
}

// defaultOutput names report files after the course slug, e.g.
// "calculus-2-study-plan.pdf".
func defaultOutput(cfg config.Config, suffix string) string {
	slug := path.Base(strings.Trim(cfg.Course.Path, "/"))
	if slug == "." || slug == "" {
		slug = "course"
	}
	return slug + suffix
}
