package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/logger"
)

// DefaultPath is read when no config path is given.
const DefaultPath = "courseplan.yaml"

// ErrInvalidConfig indicates a configuration that failed validation.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Course     CourseConfig       `yaml:"course"`
	API        APIConfig          `yaml:"api"`
	Calendar   CalendarConfig     `yaml:"calendar"`
	Study      StudyConfig        `yaml:"study"`
	TimeBlocks []domain.TimeBlock `yaml:"time_blocks"`
	Log        LogConfig          `yaml:"log"`
}

type CourseConfig struct {
	Path           string `yaml:"path"`
	Region         string `yaml:"region"`
	DataFile       string `yaml:"data_file"`
	MaxVideos      int    `yaml:"max_videos"`
	StaleAfterDays int    `yaml:"stale_after_days"`
}

type APIConfig struct {
	Endpoint       string `yaml:"endpoint"`
	TimeoutMs      int    `yaml:"timeout_ms"`
	RequestDelayMs int    `yaml:"request_delay_ms"`
}

type BlackoutConfig struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

type CalendarConfig struct {
	Start            string           `yaml:"start"`
	End              string           `yaml:"end"`
	Blackouts        []BlackoutConfig `yaml:"blackouts"`
	ExcludedWeekdays []string         `yaml:"excluded_weekdays"`
	WeekAlignment    string           `yaml:"week_alignment"`
}

type StudyConfig struct {
	HoursPerDay     float64 `yaml:"hours_per_day"`
	SideHoursPerDay float64 `yaml:"side_hours_per_day"`
	Pace            string  `yaml:"pace"`
}

type LogConfig struct {
	Mode     string `yaml:"mode"`
	Level    string `yaml:"level"`
	UseCases bool   `yaml:"use_cases"`
}

// Default returns the configuration of the original summer plan: a
// Calculus 2 course studied from late June until the camping trip.
func Default() Config {
	return Config{
		Course: CourseConfig{
			Path:           "math/calculus-2",
			Region:         "US",
			DataFile:       "math-calculus-2.json",
			MaxVideos:      50,
			StaleAfterDays: 30,
		},
		API: APIConfig{
			Endpoint:       "https://www.khanacademy.org/api/internal/graphql/ContentForPath",
			TimeoutMs:      15000,
			RequestDelayMs: 200,
		},
		Calendar: CalendarConfig{
			Start: "2025-06-23",
			End:   "2025-09-14",
			Blackouts: []BlackoutConfig{
				{Name: "Summer Vacation", Kind: string(domain.BlackoutVacation), Start: "2025-07-23", End: "2025-08-07"},
				{Name: "Camping Trip", Kind: string(domain.BlackoutCamping), Start: "2025-09-14", End: "2025-09-17"},
			},
			ExcludedWeekdays: []string{"sunday"},
			WeekAlignment:    string(domain.AlignFirstDay),
		},
		Study: StudyConfig{
			HoursPerDay:     3,
			SideHoursPerDay: 2,
			Pace:            string(domain.PaceAdaptive),
		},
		TimeBlocks: DefaultTimeBlocks(),
		Log: LogConfig{
			Mode:  "dev",
			Level: "info",
		},
	}
}

// DefaultTimeBlocks is the fixed daily routine printed alongside the plan.
func DefaultTimeBlocks() []domain.TimeBlock {
	return []domain.TimeBlock{
		{TimeSlot: "10:00 - 11:00 AM", Activity: "Course Study", Duration: "1 hour", Description: "Focus on current unit topics with videos and practice"},
		{TimeSlot: "11:00 - 11:30 AM", Activity: "Light Workout/Break", Duration: "30 minutes", Description: "Physical activity to refresh mind and body"},
		{TimeSlot: "11:30 AM - 12:30 PM", Activity: "Video Editing Work", Duration: "1 hour", Description: "Part-time job responsibilities"},
		{TimeSlot: "12:30 - 2:00 PM", Activity: "Lunch & Break", Duration: "1.5 hours", Description: "Meal time and personal break"},
		{TimeSlot: "2:00 - 4:00 PM", Activity: "Deep Course Study", Duration: "2 hours", Description: "Problem solving, practice exercises, and concept reinforcement"},
		{TimeSlot: "4:00 - 5:00 PM", Activity: "Video Editing Work", Duration: "1 hour", Description: "Continue part-time job work"},
		{TimeSlot: "Evening", Activity: "Free Time/Review", Duration: "Flexible", Description: "Optional review or personal time"},
	}
}

// Load layers defaults, the YAML file and COURSEPLAN_* environment
// variables, then validates the result. When path is empty the
// COURSEPLAN_CONFIG variable or DefaultPath is used, and a missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		if v := os.Getenv("COURSEPLAN_CONFIG"); v != "" {
			path, explicit = v, true
		} else {
			path = DefaultPath
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// defaults only
	default:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	applyEnv(&cfg)

	if err := cfg.Check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Check wraps every Validate problem into a single ErrInvalidConfig.
func (c Config) Check() error {
	if errs := c.Validate(); len(errs) > 0 {
		return formatValidationErrors(errs)
	}
	return nil
}

// Validate returns every problem found in the configuration.
func (c Config) Validate() []error {
	var errs []error

	if c.Course.Path == "" {
		errs = append(errs, fmt.Errorf("course.path is required"))
	}
	if c.Course.DataFile == "" {
		errs = append(errs, fmt.Errorf("course.data_file is required"))
	}
	if c.Course.MaxVideos < 0 {
		errs = append(errs, fmt.Errorf("course.max_videos must be >= 0, got %d", c.Course.MaxVideos))
	}
	if c.API.Endpoint == "" {
		errs = append(errs, fmt.Errorf("api.endpoint is required"))
	}
	if c.API.TimeoutMs <= 0 {
		errs = append(errs, fmt.Errorf("api.timeout_ms must be > 0, got %d", c.API.TimeoutMs))
	}
	if c.API.RequestDelayMs < 0 {
		errs = append(errs, fmt.Errorf("api.request_delay_ms must be >= 0, got %d", c.API.RequestDelayMs))
	}
	if c.Study.HoursPerDay <= 0 || c.Study.HoursPerDay > 24 {
		errs = append(errs, fmt.Errorf("study.hours_per_day must be in (0, 24], got %g", c.Study.HoursPerDay))
	}
	if c.Study.SideHoursPerDay < 0 {
		errs = append(errs, fmt.Errorf("study.side_hours_per_day must be >= 0, got %g", c.Study.SideHoursPerDay))
	}
	if !domain.ValidPaces[c.Study.Pace] {
		errs = append(errs, fmt.Errorf("study.pace %q must be adaptive or fixed", c.Study.Pace))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if _, calErrs := c.Calendar.build(); len(calErrs) > 0 {
		errs = append(errs, calErrs...)
	}
	return errs
}

// Calendar converts the calendar section into a domain.Calendar.
func (c CalendarConfig) Calendar() (domain.Calendar, error) {
	cal, errs := c.build()
	if len(errs) > 0 {
		return domain.Calendar{}, formatValidationErrors(errs)
	}
	return cal, nil
}

// Alignment returns the configured week alignment.
func (c CalendarConfig) Alignment() domain.WeekAlignment {
	return domain.WeekAlignment(domain.CoalesceStr(c.WeekAlignment, string(domain.AlignFirstDay)))
}

func (c CalendarConfig) build() (domain.Calendar, []error) {
	var errs []error
	var cal domain.Calendar

	start, err := domain.ParseDate(c.Start)
	if err != nil {
		errs = append(errs, fmt.Errorf("calendar.start: %w", err))
	}
	end, err := domain.ParseDate(c.End)
	if err != nil {
		errs = append(errs, fmt.Errorf("calendar.end: %w", err))
	}
	if len(errs) == 0 && !end.After(start) {
		errs = append(errs, fmt.Errorf("calendar.end %s must be after calendar.start %s", c.End, c.Start))
	}
	cal.Start, cal.End = start, end

	for i, b := range c.Blackouts {
		w, err := b.window()
		if err != nil {
			errs = append(errs, fmt.Errorf("calendar.blackouts[%d]: %w", i, err))
			continue
		}
		cal.Blackouts = append(cal.Blackouts, w)
	}

	for _, name := range c.ExcludedWeekdays {
		wd, err := ParseWeekday(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("calendar.excluded_weekdays: %w", err))
			continue
		}
		cal.ExcludedWeekdays = append(cal.ExcludedWeekdays, wd)
	}

	if c.WeekAlignment != "" && !domain.ValidWeekAlignments[c.WeekAlignment] {
		errs = append(errs, fmt.Errorf("calendar.week_alignment %q must be first_day or sunday", c.WeekAlignment))
	}
	return cal, errs
}

func (b BlackoutConfig) window() (domain.BlackoutWindow, error) {
	start, err := domain.ParseDate(b.Start)
	if err != nil {
		return domain.BlackoutWindow{}, err
	}
	end, err := domain.ParseDate(b.End)
	if err != nil {
		return domain.BlackoutWindow{}, err
	}
	w := domain.BlackoutWindow{
		Name:  domain.CoalesceStr(b.Name, "Blackout"),
		Kind:  domain.BlackoutKind(domain.CoalesceStr(b.Kind, string(domain.BlackoutOther))),
		Start: start,
		End:   end,
	}
	if err := w.Validate(); err != nil {
		return domain.BlackoutWindow{}, err
	}
	return w, nil
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// ParseWeekday accepts full or three-letter English weekday names.
func ParseWeekday(name string) (time.Weekday, error) {
	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return time.Sunday, fmt.Errorf("unknown weekday %q", name)
	}
	return wd, nil
}

// ParseBlackout parses the command-line form name:YYYY-MM-DD:YYYY-MM-DD.
func ParseBlackout(s string) (BlackoutConfig, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return BlackoutConfig{}, fmt.Errorf("blackout %q: want name:YYYY-MM-DD:YYYY-MM-DD", s)
	}
	b := BlackoutConfig{Name: parts[0], Kind: string(domain.BlackoutOther), Start: parts[1], End: parts[2]}
	if _, err := b.window(); err != nil {
		return BlackoutConfig{}, fmt.Errorf("blackout %q: %w", s, err)
	}
	return b, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("config validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, msg)
}
