package service

import (
	"context"
	"time"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/importer"
)

// CourseService keeps the local course file present and current.
type CourseService interface {
	// Ensure returns a valid course file, fetching and reshaping the course
	// when the file is missing, invalid, or force is set.
	Ensure(ctx context.Context, force bool) (*EnsureResult, error)

	// Check reports on the course file without touching the network.
	Check(ctx context.Context) (*CheckResult, error)
}

// PlanService turns a course tree and a calendar into a study plan.
type PlanService interface {
	Generate(ctx context.Context, req PlanRequest) (*domain.StudyPlan, error)
}

// EnsureResult holds the outcome of CourseService.Ensure.
type EnsureResult struct {
	File      *importer.LoadedFile
	Generated bool
	Stale     bool
}

// CheckResult describes the course file on disk.
type CheckResult struct {
	Path        string
	Exists      bool
	Valid       bool
	Stale       bool
	Size        int64
	ModTime     time.Time
	CourseTitle string
	UnitCount   int
	TopicCount  int
	Problem     string
}

// PlanRequest holds everything a planning run needs.
type PlanRequest struct {
	Course          *domain.Course
	Calendar        domain.Calendar
	HoursPerDay     float64
	SideHoursPerDay float64
	Pace            domain.Pace
	WeekAlignment   domain.WeekAlignment
	TimeBlocks      []domain.TimeBlock
	Now             *time.Time
}
