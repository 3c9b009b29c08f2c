package scheduler

import (
	"fmt"
	"math"

	"github.com/alexanderramin/courseplan/internal/domain"
)

const (
	minAssessmentTopicHours = 0.5
	minTopicHours           = 1.0
	maxTopicHours           = 4.0
)

// BuildPlan turns a normalized course tree into ordered unit plans with
// resolved per-item minutes and per-topic hours. A nil course or a course
// without a units list is rejected with domain.ErrInvalidInput.
func BuildPlan(course *domain.Course) ([]domain.UnitPlan, error) {
	if course == nil {
		return nil, fmt.Errorf("building plan: course is nil: %w", domain.ErrInvalidInput)
	}
	if course.Units == nil {
		return nil, fmt.Errorf("building plan: course %q has no units list: %w", course.Title, domain.ErrInvalidInput)
	}

	plans := make([]domain.UnitPlan, 0, len(course.Units))
	for i, unit := range course.Units {
		details := make([]domain.TopicDetail, 0, len(unit.Topics))
		titles := make([]string, 0, len(unit.Topics))
		unitHours := 0.0
		for _, topic := range unit.Topics {
			d := buildTopic(topic)
			details = append(details, d)
			titles = append(titles, topic.Title)
			unitHours += d.EstimatedHours
		}
		plans = append(plans, domain.UnitPlan{
			UnitNumber:     i + 1,
			UnitTitle:      unit.Title,
			Topics:         titles,
			EstimatedHours: domain.Round(unitHours, 1),
			WeekTarget:     i + 1,
			TopicDetails:   details,
		})
	}
	return plans, nil
}

func buildTopic(topic domain.Topic) domain.TopicDetail {
	items := make([]domain.ContentItem, 0, len(topic.Contents)+1)
	videoCount, exerciseCount := 0, 0
	videoMinutes := 0.0
	for _, c := range topic.Contents {
		kind := c.Kind()
		switch kind {
		case domain.KindVideo:
			videoCount++
			videoMinutes += c.VideoDurationMinutes()
		case domain.KindExercise:
			exerciseCount++
		}
		items = append(items, domain.ContentItem{
			ID:               c.ID,
			Title:            c.Title,
			Kind:             kind,
			EstimatedMinutes: EstimateMinutes(c),
			URL:              c.URL,
		})
	}
	if item, ok := synthesizeAssessment(topic); ok {
		items = append(items, item)
	}

	return domain.TopicDetail{
		Title:                topic.Title,
		EstimatedHours:       domain.Round(topicHours(topic, items, videoCount, exerciseCount), 1),
		ContentCount:         len(items),
		VideoCount:           videoCount,
		VideoDurationMinutes: domain.Round(videoMinutes, 1),
		Contents:             items,
	}
}

// topicHours trusts an authoritative topic estimate fully and bounds the
// content-sum fallback.
func topicHours(topic domain.Topic, items []domain.ContentItem, videoCount, exerciseCount int) float64 {
	if te := topic.TotalTimeEstimate; te != nil {
		if m := domain.FirstPositive(te.TotalMinutes, te.AverageMinutes); m > 0 {
			return m / 60
		}
	}

	sum := 0.0
	for _, it := range items {
		sum += it.EstimatedMinutes
	}
	hours := sum / 60

	switch {
	case len(items) == 1 && (items[0].Kind == domain.KindTopicQuiz || items[0].Kind == domain.KindTopicUnitTest):
		return items[0].EstimatedMinutes / 60
	case videoCount == 0 && exerciseCount == 0 && len(items) > 0:
		return math.Max(minAssessmentTopicHours, hours)
	case len(items) > 0:
		return clamp(hours, minTopicHours, maxTopicHours)
	default:
		return 0
	}
}

func clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// TotalHours sums the estimated hours of all units.
func TotalHours(units []domain.UnitPlan) float64 {
	total := 0.0
	for _, u := range units {
		total += u.EstimatedHours
	}
	return domain.Round(total, 1)
}
