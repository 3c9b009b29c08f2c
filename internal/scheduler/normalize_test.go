package scheduler

import (
	"testing"

	"github.com/alexanderramin/courseplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestEstimateMinutes_AuthoritativeTotalWins(t *testing.T) {
	c := domain.Content{
		ContentKind:  "Exercise",
		TimeEstimate: &domain.TimeEstimate{TotalMinutes: 33, AverageMinutes: 12},
	}
	assert.Equal(t, 33.0, EstimateMinutes(c))
}

func TestEstimateMinutes_FallsBackToAverage(t *testing.T) {
	c := domain.Content{
		ContentKind:  "Exercise",
		TimeEstimate: &domain.TimeEstimate{TotalMinutes: 0, AverageMinutes: 42},
	}
	assert.Equal(t, 42.0, EstimateMinutes(c), "tier 2 must ignore the heuristic table")
}

func TestEstimateMinutes_HeuristicTable(t *testing.T) {
	cases := []struct {
		kind string
		want float64
	}{
		{"Exercise", 18},
		{"Article", 10},
		{"Topic quiz", 25},
		{"Topic unit test", 45},
		{"Quiz", 20},
		{"Test", 40},
		{"Assessment", 30},
		{"Practice", 15},
		{"Interactive", 15},
	}
	for _, tc := range cases {
		got := EstimateMinutes(domain.Content{ContentKind: tc.kind})
		assert.Equal(t, tc.want, got, "kind=%s", tc.kind)
	}
}

func TestEstimateMinutes_ZeroEstimateUsesHeuristic(t *testing.T) {
	c := domain.Content{ContentKind: "Article", TimeEstimate: &domain.TimeEstimate{}}
	assert.Equal(t, 10.0, EstimateMinutes(c))
}

func TestEstimateMinutes_Video(t *testing.T) {
	withDuration := domain.Content{
		ContentKind:   "Video",
		VideoMetadata: &domain.VideoMetadata{DurationMinutes: 10},
	}
	assert.Equal(t, 15.0, EstimateMinutes(withDuration))

	unknown := domain.Content{ContentKind: "Video"}
	assert.Equal(t, 7.5, EstimateMinutes(unknown))

	rounded := domain.Content{
		ContentKind:   "Video",
		VideoMetadata: &domain.VideoMetadata{DurationMinutes: 7.37},
	}
	assert.Equal(t, 11.1, EstimateMinutes(rounded)) // 11.055
}

func TestSynthesizeAssessment(t *testing.T) {
	quiz, ok := synthesizeAssessment(domain.Topic{ID: "t1", Title: "Quiz 1", URL: "/q1"})
	assert.True(t, ok)
	assert.Equal(t, domain.KindTopicQuiz, quiz.Kind)
	assert.Equal(t, 25.0, quiz.EstimatedMinutes)
	assert.Equal(t, "t1", quiz.ID)
	assert.Equal(t, "/q1", quiz.URL)

	test, ok := synthesizeAssessment(domain.Topic{Title: "Unit test"})
	assert.True(t, ok)
	assert.Equal(t, domain.KindTopicUnitTest, test.Kind)
	assert.Equal(t, 45.0, test.EstimatedMinutes)

	lower, ok := synthesizeAssessment(domain.Topic{Title: "Topic quiz"})
	assert.True(t, ok)
	assert.Equal(t, domain.KindTopicQuiz, lower.Kind)

	mixed, ok := synthesizeAssessment(domain.Topic{Title: "Quiz and Unit Test"})
	assert.True(t, ok)
	assert.Equal(t, domain.KindTopicUnitTest, mixed.Kind, "unit test wins over quiz")

	_, ok = synthesizeAssessment(domain.Topic{Title: "Integrals"})
	assert.False(t, ok)

	_, ok = synthesizeAssessment(domain.Topic{Title: "Quiz 2", Contents: []domain.Content{{}}})
	assert.False(t, ok, "topics with content are never synthesized")
}
