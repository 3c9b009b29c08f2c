package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/service"
	"github.com/alexanderramin/courseplan/internal/teatest"
)

func browsePlan(t *testing.T) *domain.StudyPlan {
	t.Helper()
	req, err := planRequest(testConfig(), testCourse())
	require.NoError(t, err)
	plan, err := service.NewPlanService(nil).Generate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 12, plan.TotalStudyDays)
	return plan
}

func press(t *testing.T, m browseModel, keys ...string) browseModel {
	t.Helper()
	d := teatest.New(t, m)
	d.Press(keys...)
	return d.Model().(browseModel)
}

func TestBrowseModel_DayNavigation(t *testing.T) {
	m := newBrowseModel(browsePlan(t))
	assert.Equal(t, 0, m.cursor)

	m = press(t, m, "left")
	assert.Equal(t, 0, m.cursor, "clamped at the first day")

	m = press(t, m, "right", "right", "l")
	assert.Equal(t, 3, m.cursor)

	m = press(t, m, "G")
	assert.Equal(t, 11, m.cursor)
	m = press(t, m, "right")
	assert.Equal(t, 11, m.cursor, "clamped at the last day")

	m = press(t, m, "g")
	assert.Equal(t, 0, m.cursor)
}

func TestBrowseModel_WeekNavigation(t *testing.T) {
	plan := browsePlan(t)
	m := newBrowseModel(plan)

	m = press(t, m, "n")
	assert.Equal(t, 2, plan.DailyBreakdown[m.cursor].WeekNumber)
	assert.Equal(t, 7, m.cursor)

	m = press(t, m, "n")
	assert.Equal(t, 7, m.cursor, "stays in the last week")

	m = press(t, m, "p")
	assert.Equal(t, 0, m.cursor)
	m = press(t, m, "p")
	assert.Equal(t, 0, m.cursor)
}

func TestBrowseModel_QuitAndHelp(t *testing.T) {
	d := teatest.New(t, newBrowseModel(browsePlan(t)), teatest.WithSize(100, 40))

	d.Press("?")
	assert.True(t, d.Model().(browseModel).help.ShowAll)
	assert.False(t, d.Quitting())

	d.Press("q")
	assert.True(t, d.Quitting())
}

func TestBrowseModel_View(t *testing.T) {
	m := newBrowseModel(browsePlan(t))

	view := stripANSI(m.View())
	assert.Contains(t, view, "CALCULUS 2")
	assert.Contains(t, view, "Day 1 of 12, week 1")
	assert.Contains(t, view, "Monday, Jun 23, 2025")
	assert.Contains(t, view, "This week:")
	assert.Contains(t, view, "quit")
}

func TestBrowseModel_EmptyPlan(t *testing.T) {
	m := newBrowseModel(&domain.StudyPlan{CourseTitle: "Calculus 2"})

	m = press(t, m, "right", "n", "G")
	assert.Equal(t, 0, m.cursor)
	assert.Contains(t, stripANSI(m.View()), "No study days available")
}
