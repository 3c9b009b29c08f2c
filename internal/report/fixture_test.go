package report

import (
	"time"

	"github.com/alexanderramin/courseplan/internal/domain"
)

func samplePlan() *domain.StudyPlan {
	day1 := domain.Date(2025, time.June, 23)
	day2 := domain.Date(2025, time.June, 24)

	units := []domain.UnitPlan{
		{
			UnitNumber:     1,
			UnitTitle:      "Integrals review",
			Topics:         []string{"Accumulations of change", "Approximation"},
			EstimatedHours: 1.5,
			WeekTarget:     1,
			TopicDetails: []domain.TopicDetail{
				{
					Title:          "Accumulations of change",
					EstimatedHours: 1,
					ContentCount:   4,
					VideoCount:     2,
					Contents: []domain.ContentItem{
						{ID: "v1", Title: "Intro to accumulation", Kind: domain.KindVideo, EstimatedMinutes: 20, URL: "https://www.khanacademy.org/v/intro"},
						{ID: "v2", Title: "Rate and area", Kind: domain.KindVideo, EstimatedMinutes: 10},
						{ID: "e1", Title: "Accumulation practice", Kind: domain.KindExercise, EstimatedMinutes: 15},
						{ID: "q1", Title: "Quiz 1", Kind: domain.KindTopicQuiz, EstimatedMinutes: 15},
					},
				},
				{
					Title:          "Approximation",
					EstimatedHours: 0.5,
					ContentCount:   1,
					Contents: []domain.ContentItem{
						{ID: "t1", Title: "Unit test", Kind: domain.KindTopicUnitTest, EstimatedMinutes: 30},
					},
				},
			},
		},
	}

	days := []domain.DailyBreakdown{
		{
			DayIndex:         0,
			Day:              "Monday",
			Date:             day1,
			DateLabel:        "Jun 23, 2025",
			Topic:            "Accumulations of change",
			UnitTitle:        "Integrals review",
			WeekNumber:       1,
			StudyHours:       1,
			BudgetMinutes:    60,
			ScheduledMinutes: 60,
			Status:           domain.DayCompleted,
			Goal:             domain.DayGoal{Kind: domain.GoalSingleTopic, Topic: "Accumulations of change", ItemCount: 4},
			Items: []domain.ScheduledSlice{
				{Topic: "Accumulations of change", ContentID: "v1", Title: "Intro to accumulation", Kind: domain.KindVideo, Minutes: 20},
				{Topic: "Accumulations of change", ContentID: "v2", Title: "Rate and area", Kind: domain.KindVideo, Minutes: 10},
				{Topic: "Accumulations of change", ContentID: "e1", Title: "Accumulation practice", Kind: domain.KindExercise, Minutes: 15},
				{Topic: "Accumulations of change", ContentID: "q1", Title: "Quiz 1", Kind: domain.KindTopicQuiz, Minutes: 15},
			},
		},
		{
			DayIndex:         1,
			Day:              "Tuesday",
			Date:             day2,
			DateLabel:        "Jun 24, 2025",
			Topic:            "Approximation",
			UnitTitle:        "Integrals review",
			WeekNumber:       1,
			StudyHours:       1,
			BudgetMinutes:    60,
			ScheduledMinutes: 30,
			IdleMinutes:      30,
			Status:           domain.DayCompleted,
			Goal:             domain.DayGoal{Kind: domain.GoalCompleteItem, Topic: "Approximation", Title: "Unit test", ItemKind: domain.KindTopicUnitTest, ItemCount: 1},
			Items: []domain.ScheduledSlice{
				{Topic: "Approximation", ContentID: "t1", Title: "Unit test", Kind: domain.KindTopicUnitTest, Minutes: 30},
			},
		},
	}

	return &domain.StudyPlan{
		ID:               "7f1c2a8e-0000-4000-8000-000000000001",
		GeneratedAt:      time.Date(2025, time.June, 20, 9, 0, 0, 0, time.UTC),
		CourseTitle:      "Calculus 2",
		Pace:             domain.PaceAdaptive,
		WeekAlignment:    domain.AlignFirstDay,
		TotalStudyDays:   len(days),
		HoursPerDay:      1,
		SideHoursPerDay:  0.5,
		TotalHoursNeeded: 1.5,
		UnitPlans:        units,
		DailyBreakdown:   days,
		Weekly: []domain.WeeklySchedule{
			{
				WeekNumber:       1,
				WeekStart:        day1,
				WeekEnd:          day1.AddDate(0, 0, 6),
				AvailableDays:    2,
				UnitNumber:       1,
				UnitTitle:        "Integrals review",
				TopicsToComplete: []string{"Accumulations of change", "Approximation"},
				TotalHours:       2,
			},
		},
		Milestones: []domain.Milestone{
			{
				Date:            day2,
				DayIndex:        1,
				UnitNumber:      1,
				Description:     "Complete Unit 1: Integrals review",
				HoursCompleted:  1.5,
				PercentComplete: 100,
				UnitsCompleted:  []string{"Integrals review"},
			},
		},
		Backlog: []domain.BacklogItem{},
		TimeBlocks: []domain.TimeBlock{
			{TimeSlot: "8:00 - 9:00", Activity: "Video lessons", Duration: "1 hour", Description: "Watch the day's videos"},
		},
	}
}

func emptyPlan() *domain.StudyPlan {
	p := samplePlan()
	p.ID = "7f1c2a8e-0000-4000-8000-000000000002"
	p.TotalStudyDays = 0
	p.DailyBreakdown = []domain.DailyBreakdown{}
	p.Weekly = []domain.WeeklySchedule{}
	p.Milestones = []domain.Milestone{}
	return p
}
