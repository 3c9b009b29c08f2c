package domain

import "time"

// ContentItem is a schedulable unit of course material with its resolved
// estimate in minutes.
type ContentItem struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Kind             ContentKind `json:"contentKind"`
	EstimatedMinutes float64     `json:"estimatedMinutes"`
	URL              string      `json:"url,omitempty"`
}

type TopicDetail struct {
	Title                string        `json:"title"`
	EstimatedHours       float64       `json:"estimatedHours"`
	ContentCount         int           `json:"contentCount"`
	VideoCount           int           `json:"videoCount"`
	VideoDurationMinutes float64       `json:"videoDurationMinutes"`
	Contents             []ContentItem `json:"contents"`
}

// CountKind returns how many of the topic's items satisfy match.
func (t TopicDetail) CountKind(match func(ContentKind) bool) int {
	n := 0
	for _, c := range t.Contents {
		if match(c.Kind) {
			n++
		}
	}
	return n
}

type UnitPlan struct {
	UnitNumber     int           `json:"unitNumber"`
	UnitTitle      string        `json:"unitTitle"`
	Topics         []string      `json:"topics"`
	EstimatedHours float64       `json:"estimatedHours"`
	WeekTarget     int           `json:"weekTarget"`
	TopicDetails   []TopicDetail `json:"topicDetails"`
}

// CountKind returns how many items across all topics satisfy match.
func (u UnitPlan) CountKind(match func(ContentKind) bool) int {
	n := 0
	for _, t := range u.TopicDetails {
		n += t.CountKind(match)
	}
	return n
}

// ContentCount returns the number of items across all topics.
func (u UnitPlan) ContentCount() int {
	n := 0
	for _, t := range u.TopicDetails {
		n += len(t.Contents)
	}
	return n
}

// ScheduledSlice is the portion of one content item worked on during a day.
type ScheduledSlice struct {
	UnitTitle  string      `json:"unitTitle"`
	Topic      string      `json:"topic"`
	ContentID  string      `json:"contentId"`
	Title      string      `json:"title"`
	Kind       ContentKind `json:"contentKind"`
	Minutes    float64     `json:"minutes"`
	Partial    bool        `json:"partial"`
	Part       int         `json:"part,omitempty"`
	TotalParts int         `json:"totalParts,omitempty"`
}

// DayGoal is the structured summary of a day's work. Presentation code
// turns it into text.
type DayGoal struct {
	Kind       GoalKind    `json:"kind"`
	Topic      string      `json:"topic,omitempty"`
	Title      string      `json:"title,omitempty"`
	ItemKind   ContentKind `json:"itemKind,omitempty"`
	Part       int         `json:"part,omitempty"`
	TotalParts int         `json:"totalParts,omitempty"`
	ItemCount  int         `json:"itemCount,omitempty"`
	Topics     []string    `json:"topics,omitempty"`
}

// DailyBreakdown is the schedule for one available study day.
type DailyBreakdown struct {
	DayIndex         int              `json:"dayIndex"`
	Day              string           `json:"day"`
	Date             time.Time        `json:"date"`
	DateLabel        string           `json:"dateLabel"`
	Topic            string           `json:"topic"`
	UnitTitle        string           `json:"unitTitle"`
	WeekNumber       int              `json:"weekNumber"`
	StudyHours       float64          `json:"studyHours"`
	BudgetMinutes    float64          `json:"budgetMinutes"`
	ScheduledMinutes float64          `json:"scheduledMinutes"`
	IdleMinutes      float64          `json:"idleMinutes"`
	Status           DayStatus        `json:"status"`
	Goal             DayGoal          `json:"goal"`
	Items            []ScheduledSlice `json:"items"`
}

// BacklogItem is content left unconsumed after the last study day.
type BacklogItem struct {
	UnitTitle        string      `json:"unitTitle"`
	Topic            string      `json:"topic"`
	ContentID        string      `json:"contentId"`
	Title            string      `json:"title"`
	Kind             ContentKind `json:"contentKind"`
	EstimatedMinutes float64     `json:"estimatedMinutes"`
	RemainingMinutes float64     `json:"remainingMinutes"`
}

type Milestone struct {
	Date            time.Time `json:"date"`
	DayIndex        int       `json:"dayIndex"`
	UnitNumber      int       `json:"unitNumber"`
	Description     string    `json:"description"`
	HoursCompleted  float64   `json:"hoursCompleted"`
	PercentComplete int       `json:"percentComplete"`
	UnitsCompleted  []string  `json:"unitsCompleted"`
}

// WeeklySchedule summarizes one 7-day window of the calendar.
type WeeklySchedule struct {
	WeekNumber       int       `json:"weekNumber"`
	WeekStart        time.Time `json:"weekStart"`
	WeekEnd          time.Time `json:"weekEnd"`
	AvailableDays    int       `json:"availableDays"`
	UnitNumber       int       `json:"unitNumber"`
	UnitTitle        string    `json:"unitTitle"`
	TopicsToComplete []string  `json:"topicsToComplete"`
	TotalHours       float64   `json:"totalHours"`
	ShortWeek        bool      `json:"shortWeek"`
}

// TimeBlock is one slot of the fixed daily routine.
type TimeBlock struct {
	TimeSlot    string `json:"timeSlot" yaml:"slot"`
	Activity    string `json:"activity" yaml:"activity"`
	Duration    string `json:"duration" yaml:"duration"`
	Description string `json:"description" yaml:"description"`
}

// StudyPlan is the result of one planning run.
type StudyPlan struct {
	ID               string           `json:"id"`
	GeneratedAt      time.Time        `json:"generatedAt"`
	CourseTitle      string           `json:"courseTitle"`
	Pace             Pace             `json:"pace"`
	WeekAlignment    WeekAlignment    `json:"weekAlignment"`
	TotalStudyDays   int              `json:"totalStudyDays"`
	HoursPerDay      float64          `json:"hoursPerDay"`
	SideHoursPerDay  float64          `json:"sideHoursPerDay"`
	TotalHoursNeeded float64          `json:"totalHoursNeeded"`
	UnitPlans        []UnitPlan       `json:"unitPlans"`
	DailyBreakdown   []DailyBreakdown `json:"dailyBreakdown"`
	Weekly           []WeeklySchedule `json:"weeklySchedule"`
	Milestones       []Milestone      `json:"milestones"`
	Backlog          []BacklogItem    `json:"backlog"`
	BacklogMinutes   float64          `json:"backlogMinutes"`
	TimeBlocks       []TimeBlock      `json:"timeBlocks"`
}

// HasSchedule reports whether the plan has at least one study day.
func (p *StudyPlan) HasSchedule() bool {
	return len(p.DailyBreakdown) > 0
}

// ScheduledHours returns the hours of content actually placed on days.
func (p *StudyPlan) ScheduledHours() float64 {
	total := 0.0
	for _, d := range p.DailyBreakdown {
		total += d.ScheduledMinutes
	}
	return total / 60
}

// TotalStudyHours returns the study hours offered by the calendar.
func (p *StudyPlan) TotalStudyHours() float64 {
	total := 0.0
	for _, d := range p.DailyBreakdown {
		total += d.StudyHours
	}
	return total
}
