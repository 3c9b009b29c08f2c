package domain

import "strings"

// ContentKind is the normalized kind of a schedulable content item.
type ContentKind string

const (
	KindVideo         ContentKind = "Video"
	KindExercise      ContentKind = "Exercise"
	KindArticle       ContentKind = "Article"
	KindTopicQuiz     ContentKind = "Topic quiz"
	KindTopicUnitTest ContentKind = "Topic unit test"
	KindQuiz          ContentKind = "Quiz"
	KindTest          ContentKind = "Test"
	KindAssessment    ContentKind = "Assessment"
	KindPractice      ContentKind = "Practice"
	KindOther         ContentKind = "Other"
)

var contentKindAliases = map[string]ContentKind{
	"video":           KindVideo,
	"exercise":        KindExercise,
	"article":         KindArticle,
	"topic quiz":      KindTopicQuiz,
	"topicquiz":       KindTopicQuiz,
	"topic unit test": KindTopicUnitTest,
	"topicunittest":   KindTopicUnitTest,
	"unit test":       KindTopicUnitTest,
	"quiz":            KindQuiz,
	"test":            KindTest,
	"assessment":      KindAssessment,
	"practice":        KindPractice,
}

// ParseContentKind maps a raw upstream content kind onto a ContentKind.
// Unrecognized kinds map to KindOther.
func ParseContentKind(raw string) ContentKind {
	key := strings.ToLower(strings.TrimSpace(raw))
	if k, ok := contentKindAliases[key]; ok {
		return k
	}
	return KindOther
}

// IsAssessment reports whether the kind is a quiz or test of any flavour.
func (k ContentKind) IsAssessment() bool {
	switch k {
	case KindTopicQuiz, KindTopicUnitTest, KindQuiz, KindTest, KindAssessment:
		return true
	}
	return false
}

// IsQuiz reports whether the kind counts as a quiz in content summaries.
func (k ContentKind) IsQuiz() bool {
	return k == KindTopicQuiz || k == KindQuiz
}

// IsTest reports whether the kind counts as a test in content summaries.
func (k ContentKind) IsTest() bool {
	return k == KindTopicUnitTest || k == KindTest
}

// DayStatus is the machine-readable outcome of one scheduled day.
type DayStatus string

const (
	DayCompleted DayStatus = "completed"
	DayPartial   DayStatus = "partial"
	DayReview    DayStatus = "review"
)

// GoalKind classifies what a day's work looks like.
type GoalKind string

const (
	GoalReview       GoalKind = "review"
	GoalCompleteItem GoalKind = "complete_item"
	GoalItemPart     GoalKind = "item_part"
	GoalSingleTopic  GoalKind = "single_topic"
	GoalMixedTopics  GoalKind = "mixed_topics"
)

// Pace selects the daily allocation strategy.
type Pace string

const (
	PaceAdaptive Pace = "adaptive"
	PaceFixed    Pace = "fixed"
)

// ValidPaces is the canonical set of accepted pace strings.
var ValidPaces = map[string]bool{
	string(PaceAdaptive): true,
	string(PaceFixed):    true,
}

// WeekAlignment decides where weekly rollup windows start.
type WeekAlignment string

const (
	AlignFirstDay WeekAlignment = "first_day"
	AlignSunday   WeekAlignment = "sunday"
)

// ValidWeekAlignments is the canonical set of accepted alignment strings.
var ValidWeekAlignments = map[string]bool{
	string(AlignFirstDay): true,
	string(AlignSunday):   true,
}

type BlackoutKind string

const (
	BlackoutVacation BlackoutKind = "vacation"
	BlackoutCamping  BlackoutKind = "camping"
	BlackoutSchool   BlackoutKind = "school"
	BlackoutOther    BlackoutKind = "other"
)
