package scheduler

import (
	"strings"

	"github.com/alexanderramin/courseplan/internal/domain"
)

const (
	// defaultVideoMinutes is assumed for videos whose duration was never fetched.
	defaultVideoMinutes = 5.0
	// videoNoteFactor scales watch time to include note-taking.
	videoNoteFactor = 1.5

	topicQuizMinutes     = 25.0
	topicUnitTestMinutes = 45.0
)

var heuristicMinutes = map[domain.ContentKind]float64{
	domain.KindExercise:      18,
	domain.KindArticle:       10,
	domain.KindTopicQuiz:     topicQuizMinutes,
	domain.KindTopicUnitTest: topicUnitTestMinutes,
	domain.KindQuiz:          20,
	domain.KindTest:          40,
	domain.KindAssessment:    30,
	domain.KindPractice:      15,
	domain.KindOther:         15,
}

// EstimateMinutes resolves how long one content item takes. Authoritative
// totals win over averages, which win over the per-kind heuristic.
func EstimateMinutes(c domain.Content) float64 {
	var minutes float64
	if c.TimeEstimate != nil {
		minutes = domain.FirstPositive(c.TimeEstimate.TotalMinutes, c.TimeEstimate.AverageMinutes)
	}
	if minutes == 0 {
		minutes = heuristicEstimate(c)
	}
	return domain.Round(minutes, 1)
}

func heuristicEstimate(c domain.Content) float64 {
	kind := c.Kind()
	if kind == domain.KindVideo {
		d := domain.FirstPositive(c.VideoDurationMinutes(), defaultVideoMinutes)
		return d * videoNoteFactor
	}
	if m, ok := heuristicMinutes[kind]; ok {
		return m
	}
	return heuristicMinutes[domain.KindOther]
}

// synthesizeAssessment builds the single item for an empty topic that is
// itself a quiz or unit test. Titles match case-insensitively and a unit
// test match takes precedence.
func synthesizeAssessment(t domain.Topic) (domain.ContentItem, bool) {
	if len(t.Contents) > 0 {
		return domain.ContentItem{}, false
	}
	item := domain.ContentItem{ID: t.ID, Title: t.Title, URL: t.URL}
	title := strings.ToLower(t.Title)
	switch {
	case strings.Contains(title, "unit test"):
		item.Kind = domain.KindTopicUnitTest
		item.EstimatedMinutes = topicUnitTestMinutes
	case strings.Contains(title, "quiz"):
		item.Kind = domain.KindTopicQuiz
		item.EstimatedMinutes = topicQuizMinutes
	default:
		return domain.ContentItem{}, false
	}
	return item, true
}
