package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/alexanderramin/courseplan/internal/logger"
	"github.com/alexanderramin/courseplan/internal/scheduler"
)

type planService struct {
	log      *logger.Logger
	observer UseCaseObserver
}

func NewPlanService(log *logger.Logger, observers ...UseCaseObserver) PlanService {
	if log == nil {
		log = logger.Nop()
	}
	return &planService{log: log, observer: useCaseObserverOrNoop(observers)}
}

func (s *planService) Generate(ctx context.Context, req PlanRequest) (plan *domain.StudyPlan, err error) {
	fields := map[string]any{"pace": string(req.Pace)}
	defer observe(ctx, s.observer, "generate-plan", time.Now().UTC(), fields, &err)

	if req.HoursPerDay <= 0 {
		return nil, fmt.Errorf("%w: hours per day must be positive, got %v", domain.ErrInvalidInput, req.HoursPerDay)
	}

	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	alloc, err := scheduler.NewAllocator(req.Pace)
	if err != nil {
		return nil, err
	}

	units, err := scheduler.BuildPlan(req.Course)
	if err != nil {
		return nil, fmt.Errorf("building unit plans: %w", err)
	}

	days := scheduler.AvailableDays(req.Calendar)
	allocation := alloc.Allocate(units, days, req.HoursPerDay)
	weekly, milestones := scheduler.Rollup(units, days, req.HoursPerDay, req.WeekAlignment)

	plan = &domain.StudyPlan{
		ID:               uuid.New().String(),
		GeneratedAt:      now,
		CourseTitle:      req.Course.Title,
		Pace:             alloc.Pace(),
		WeekAlignment:    req.WeekAlignment,
		TotalStudyDays:   len(days),
		HoursPerDay:      req.HoursPerDay,
		SideHoursPerDay:  req.SideHoursPerDay,
		TotalHoursNeeded: scheduler.TotalHours(units),
		UnitPlans:        units,
		DailyBreakdown:   allocation.Days,
		Weekly:           weekly,
		Milestones:       milestones,
		Backlog:          allocation.Backlog,
		BacklogMinutes:   allocation.BacklogMinutes,
		TimeBlocks:       req.TimeBlocks,
	}
	if plan.Backlog == nil {
		plan.Backlog = []domain.BacklogItem{}
	}
	if plan.TimeBlocks == nil {
		plan.TimeBlocks = []domain.TimeBlock{}
	}

	fields["plan_id"] = plan.ID
	fields["units"] = len(units)
	fields["study_days"] = len(days)
	fields["backlog_items"] = len(plan.Backlog)
	if allocation.HasBacklog() {
		s.log.Warn("plan leaves content unscheduled",
			"items", len(allocation.Backlog),
			"minutes", allocation.BacklogMinutes,
		)
	}
	return plan, nil
}
