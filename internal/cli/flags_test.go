package cli

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/courseplan/internal/config"
	"github.com/alexanderramin/courseplan/internal/domain"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestPlanFlags_UnsetFlagsKeepConfig(t *testing.T) {
	var f planFlags
	fs := f.flagSet()
	require.NoError(t, fs.Parse(nil))

	cfg, err := f.apply(config.Default(), fs)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestPlanFlags_Apply(t *testing.T) {
	var f planFlags
	fs := f.flagSet()
	require.NoError(t, fs.Parse([]string{
		"--start", "2025-07-01",
		"--end", "2025-08-01",
		"--blackout", "Trip:2025-07-10:2025-07-12",
		"--blackout", "Visit:2025-07-20:2025-07-20",
		"--exclude-weekday", "sat,sun",
		"--hours-per-day", "4.5",
		"--side-hours-per-day", "1",
		"--pace", "FIXED",
		"--week-alignment", "sunday",
		"--data-file", "alt.json",
	}))

	cfg, err := f.apply(config.Default(), fs)
	require.NoError(t, err)
	assert.Equal(t, "2025-07-01", cfg.Calendar.Start)
	assert.Equal(t, "2025-08-01", cfg.Calendar.End)
	require.Len(t, cfg.Calendar.Blackouts, 2)
	assert.Equal(t, "Trip", cfg.Calendar.Blackouts[0].Name)
	assert.Equal(t, []string{"sat", "sun"}, cfg.Calendar.ExcludedWeekdays)
	assert.Equal(t, 4.5, cfg.Study.HoursPerDay)
	assert.Equal(t, 1.0, cfg.Study.SideHoursPerDay)
	assert.Equal(t, "fixed", cfg.Study.Pace)
	assert.Equal(t, domain.AlignSunday, cfg.Calendar.Alignment())
	assert.Equal(t, "alt.json", cfg.Course.DataFile)
}

func TestPlanRequest(t *testing.T) {
	cfg := testConfig()
	course := testCourse()

	req, err := planRequest(cfg, course)
	require.NoError(t, err)
	assert.Same(t, course, req.Course)
	assert.Equal(t, domain.Date(2025, time.June, 23), req.Calendar.Start)
	assert.Equal(t, []time.Weekday{time.Sunday}, req.Calendar.ExcludedWeekdays)
	assert.Equal(t, domain.PaceAdaptive, req.Pace)
	assert.Equal(t, domain.AlignFirstDay, req.WeekAlignment)
	assert.Len(t, req.TimeBlocks, 7)
}

func TestDefaultOutput(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "calculus-2-study-plan.pdf", defaultOutput(cfg, "-study-plan.pdf"))

	cfg.Course.Path = ""
	assert.Equal(t, "course-daily-schedule.xlsx", defaultOutput(cfg, "-daily-schedule.xlsx"))
}
