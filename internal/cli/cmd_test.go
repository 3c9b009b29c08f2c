package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexanderramin/courseplan/internal/config"
	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/importer"
	"github.com/alexanderramin/courseplan/internal/report"
	"github.com/alexanderramin/courseplan/internal/service"
	"github.com/alexanderramin/courseplan/internal/testutil"
)

// fakeCourses serves a fixed course for any data file and records calls.
type fakeCourses struct {
	course   *domain.Course
	dataFile string
	forced   bool
	stale    bool
	check    *service.CheckResult
	err      error
}

func (f *fakeCourses) Ensure(_ context.Context, force bool) (*service.EnsureResult, error) {
	f.forced = force
	if f.err != nil {
		return nil, f.err
	}
	return &service.EnsureResult{
		File: &importer.LoadedFile{
			CourseFile: &importer.CourseFile{Course: f.course},
			Path:       f.dataFile,
		},
		Generated: force,
		Stale:     f.stale,
	}, nil
}

func (f *fakeCourses) Check(context.Context) (*service.CheckResult, error) {
	if f.check != nil {
		return f.check, nil
	}
	return &service.CheckResult{Path: f.dataFile}, nil
}

func testCourse() *domain.Course {
	return testutil.NewTestCourse(
		testutil.WithUnit("Integrals review",
			testutil.Topic("Riemann sums",
				testutil.Video("Intro", 10),
				testutil.Item(domain.KindExercise, "Practice"),
			),
			testutil.Topic("Topic quiz"),
		),
		testutil.WithUnit("Series",
			testutil.Topic("Geometric series", testutil.Item(domain.KindArticle, "Reading")),
		),
	)
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Calendar.Start = "2025-06-23"
	cfg.Calendar.End = "2025-07-07"
	cfg.Calendar.Blackouts = nil
	cfg.Calendar.ExcludedWeekdays = []string{"sunday"}
	return cfg
}

func testApp(t *testing.T) (*App, *fakeCourses) {
	t.Helper()
	courses := &fakeCourses{course: testCourse()}
	app := &App{
		Config: testConfig(),
		Plans:  service.NewPlanService(nil),
		Courses: func(dataFile string) service.CourseService {
			courses.dataFile = dataFile
			return courses
		},
	}
	return app, courses
}

func execute(t *testing.T, app *App, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(out.String()), stripANSI(errOut.String()), err
}

func TestPlanCmd_PrintsPlan(t *testing.T) {
	app, courses := testApp(t)

	out, _, err := execute(t, app, "plan")
	require.NoError(t, err)
	assert.Equal(t, "math-calculus-2.json", courses.dataFile)
	assert.False(t, courses.forced)
	assert.Contains(t, out, "Calculus 2")
	assert.Contains(t, out, "Jun 23, 2025 to Jul 5, 2025")
	assert.Contains(t, out, "Day 1")
}

func TestPlanCmd_JSON(t *testing.T) {
	app, _ := testApp(t)

	out, _, err := execute(t, app, "plan", "--json", "--hours-per-day", "2", "--pace", "fixed")
	require.NoError(t, err)

	var plan domain.StudyPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, 12, plan.TotalStudyDays)
	assert.Equal(t, 2.0, plan.HoursPerDay)
	assert.Equal(t, domain.PaceFixed, plan.Pace)
}

func TestPlanCmd_FlagsOverrideCalendar(t *testing.T) {
	app, courses := testApp(t)

	out, _, err := execute(t, app, "plan", "--json",
		"--start", "2025-06-23", "--end", "2025-06-30",
		"--exclude-weekday", "saturday,sunday",
		"--blackout", "Trip:2025-06-25:2025-06-26",
		"--data-file", "other.json")
	require.NoError(t, err)
	assert.Equal(t, "other.json", courses.dataFile)

	var plan domain.StudyPlan
	require.NoError(t, json.Unmarshal([]byte(out), &plan))
	assert.Equal(t, 3, plan.TotalStudyDays)
}

func TestPlanCmd_EmptyCalendar(t *testing.T) {
	app, _ := testApp(t)

	out, _, err := execute(t, app, "plan", "--blackout", "All:2025-06-23:2025-07-06")
	require.NoError(t, err)
	out = stripANSI(out)
	assert.Contains(t, out, report.EmptySchedule)
	assert.Contains(t, out, "WARNING: 4 items")
}

func TestPlanCmd_InvalidFlags(t *testing.T) {
	app, _ := testApp(t)

	_, _, err := execute(t, app, "plan", "--pace", "sprint", "--hours-per-day", "0")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "(2 errors)")

	_, _, err = execute(t, app, "plan", "--blackout", "broken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--blackout")
}

func TestPlanCmd_InteractiveNeedsTerminal(t *testing.T) {
	app, _ := testApp(t)
	app.IsInteractive = func() bool { return false }

	_, _, err := execute(t, app, "plan", "--interactive")
	require.ErrorIs(t, err, errNotInteractive)

	_, _, err = execute(t, app, "browse")
	require.ErrorIs(t, err, errNotInteractive)
}

func TestPlanCmd_CourseError(t *testing.T) {
	app, courses := testApp(t)
	courses.err = errors.New("content api unavailable")

	_, _, err := execute(t, app, "plan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content api unavailable")
}

func TestPlanCmd_StaleWarning(t *testing.T) {
	app, courses := testApp(t)
	courses.stale = true

	_, errOut, err := execute(t, app, "plan")
	require.NoError(t, err)
	assert.Contains(t, errOut, "older than 30 days")
}

func TestGenerateDataCmd(t *testing.T) {
	app, courses := testApp(t)

	out, _, err := execute(t, app, "generate-data", "--force")
	require.NoError(t, err)
	assert.True(t, courses.forced)
	assert.Contains(t, stripANSI(out), "Generated: math-calculus-2.json (2 units, 3 topics)")
}

func TestCheckDataCmd(t *testing.T) {
	app, courses := testApp(t)

	out, _, err := execute(t, app, "check-data")
	require.Error(t, err)
	assert.Contains(t, out, "Missing")

	courses.check = &service.CheckResult{
		Path: "math-calculus-2.json", Exists: true, Valid: true,
		ModTime: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), CourseTitle: "Calculus 2", UnitCount: 2, TopicCount: 3,
	}
	out, _, err = execute(t, app, "check-data")
	require.NoError(t, err)
	assert.Contains(t, out, "✔ Valid")
}

func TestCurriculumCmd(t *testing.T) {
	app, _ := testApp(t)

	out, _, err := execute(t, app, "curriculum")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Integrals review")
	assert.Contains(t, out, "└─ Topic quiz")
	assert.Contains(t, out, "2. Series")
}

func TestReportCmds_WriteFiles(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		cmd   string
		file  string
		check func(t *testing.T, data []byte)
	}{
		{"pdf", "plan.pdf", func(t *testing.T, data []byte) {
			assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
		}},
		{"excel", "plan.xlsx", func(t *testing.T, data []byte) {
			f, err := excelize.OpenReader(bytes.NewReader(data))
			require.NoError(t, err)
			defer f.Close()
			assert.Equal(t, []string{report.SheetDaily, report.SheetSummary, report.SheetContent}, f.GetSheetList())
		}},
		{"export", "plan.json", func(t *testing.T, data []byte) {
			assert.True(t, json.Valid(data))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			app, _ := testApp(t)
			path := filepath.Join(dir, tt.file)

			out, _, err := execute(t, app, tt.cmd, "--output", path)
			require.NoError(t, err)
			assert.Contains(t, out, "written to "+path)
			assert.Contains(t, out, "12 study days")

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			tt.check(t, data)
		})
	}
}

func TestReportCmd_DefaultOutput(t *testing.T) {
	chdir(t, t.TempDir())
	app, _ := testApp(t)

	out, _, err := execute(t, app, "export")
	require.NoError(t, err)
	assert.Contains(t, out, "calculus-2-study-plan.json")
	assert.FileExists(t, "calculus-2-study-plan.json")
}

// chdir changes the working directory for the test and restores it on cleanup
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
