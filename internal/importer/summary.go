package importer

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// CourseSummary is the digest written next to every course file.
type CourseSummary struct {
	Course       CourseInfo      `json:"course"`
	Content      ContentTotals   `json:"content"`
	TimeEstimate SummaryTime     `json:"timeEstimate"`
	Units        []UnitSummary   `json:"unitSummaries"`
	Metadata     SummaryMetadata `json:"metadata"`
}

type CourseInfo struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	Slug              string `json:"slug"`
	TotalUnits        int    `json:"totalUnits"`
	TotalTopics       int    `json:"totalTopics"`
	TotalContentItems int    `json:"totalContentItems"`
	MasteryEnabled    bool   `json:"masteryEnabled"`
}

type VideoTotals struct {
	Total                  int     `json:"total"`
	WithMetadata           int     `json:"withMetadata"`
	WithKeyMoments         int     `json:"withKeyMoments"`
	WithSubtitles          int     `json:"withSubtitles"`
	TotalDurationMinutes   float64 `json:"totalDurationMinutes"`
	TotalDurationFormatted string  `json:"totalDurationFormatted"`
}

type ContentTotals struct {
	Videos    VideoTotals `json:"videos"`
	Exercises int         `json:"exercises"`
	Articles  int         `json:"articles"`
	Quizzes   int         `json:"quizzes"`
	UnitTests int         `json:"unitTests"`
	Other     int         `json:"other"`
}

type ChallengeTime struct {
	Minutes   float64 `json:"minutes"`
	Formatted string  `json:"formatted"`
}

type SummaryTime struct {
	VideoMinutes     float64        `json:"videoMinutes"`
	VideoFormatted   string         `json:"videoFormatted"`
	ExerciseMinutes  float64        `json:"exerciseMinutes"`
	TotalMinutes     float64        `json:"totalMinutes"`
	TotalFormatted   string         `json:"totalFormatted"`
	CourseChallenge  *ChallengeTime `json:"courseChallenge,omitempty"`
	MasteryChallenge *ChallengeTime `json:"masteryChallenge,omitempty"`
}

type UnitSummary struct {
	Title                string  `json:"title"`
	TopicCount           int     `json:"topicCount"`
	ContentCount         int     `json:"contentCount"`
	VideoCount           int     `json:"videoCount"`
	VideoDurationMinutes float64 `json:"videoDurationMinutes"`
	EstimatedMinutes     float64 `json:"estimatedMinutes"`
}

type SummaryMetadata struct {
	ExtractedAt time.Time `json:"extractedAt"`
	Path        string    `json:"path"`
	CountryCode string    `json:"countryCode"`
}

// Summarize derives the digest of a reshaped course.
func Summarize(course *domain.Course, meta Metadata) *CourseSummary {
	s := &CourseSummary{
		Course: CourseInfo{
			Title:             course.Title,
			Description:       course.Description,
			Slug:              course.Slug,
			TotalUnits:        len(course.Units),
			TotalTopics:       course.TopicCount(),
			TotalContentItems: course.ContentCount(),
			MasteryEnabled:    course.MasteryEnabled,
		},
		Units: make([]UnitSummary, 0, len(course.Units)),
		Metadata: SummaryMetadata{
			ExtractedAt: meta.ExtractedAt,
			Path:        meta.Path,
			CountryCode: meta.CountryCode,
		},
	}

	var videoDuration float64
	for _, u := range course.Units {
		us := UnitSummary{Title: u.Title, TopicCount: len(u.Topics)}
		for _, t := range u.Topics {
			us.ContentCount += len(t.Contents)
			for _, c := range t.Contents {
				s.Content.count(c)
				if c.Kind() == domain.KindVideo {
					us.VideoCount++
				}
				us.VideoDurationMinutes += c.VideoDurationMinutes()
			}
		}
		var unitTotal float64
		if u.TotalTimeEstimate != nil {
			unitTotal = u.TotalTimeEstimate.TotalMinutes
		}
		us.EstimatedMinutes = domain.FirstPositive(unitTotal, us.VideoDurationMinutes)
		videoDuration += us.VideoDurationMinutes
		s.Units = append(s.Units, us)
	}
	s.Content.Videos.TotalDurationMinutes = domain.Round(videoDuration, 2)
	s.Content.Videos.TotalDurationFormatted = FormatDuration(videoDuration)

	var est domain.TimeEstimate
	if course.TotalTimeEstimate != nil {
		est = *course.TotalTimeEstimate
	}
	video := domain.FirstPositive(est.VideoMinutes, videoDuration)
	total := domain.FirstPositive(est.TotalMinutes, video)
	s.TimeEstimate = SummaryTime{
		VideoMinutes:    domain.Round(video, 2),
		VideoFormatted:  FormatDuration(video),
		ExerciseMinutes: math.Max(0, domain.Round(est.AverageMinutes-video, 2)),
		TotalMinutes:    domain.Round(total, 2),
		TotalFormatted:  FormatDuration(total),
	}
	if course.CourseChallenge != nil {
		s.TimeEstimate.CourseChallenge = challengeTime(course.CourseChallenge)
	}
	if course.MasteryChallenge != nil {
		s.TimeEstimate.MasteryChallenge = challengeTime(course.MasteryChallenge)
	}

	return s
}

func (t *ContentTotals) count(c domain.Content) {
	switch c.Kind() {
	case domain.KindVideo:
		t.Videos.Total++
		if m := c.VideoMetadata; m != nil {
			t.Videos.WithMetadata++
			if len(m.KeyMoments) > 0 {
				t.Videos.WithKeyMoments++
			}
			if len(m.Subtitles) > 0 {
				t.Videos.WithSubtitles++
			}
		}
	case domain.KindExercise:
		t.Exercises++
	case domain.KindArticle:
		t.Articles++
	case domain.KindTopicQuiz:
		t.Quizzes++
	case domain.KindTopicUnitTest:
		t.UnitTests++
	default:
		t.Other++
	}
}

func challengeTime(c *domain.Challenge) *ChallengeTime {
	return &ChallengeTime{
		Minutes:   c.TimeEstimate.AverageMinutes,
		Formatted: FormatDuration(c.TimeEstimate.AverageMinutes),
	}
}

// FormatDuration renders minutes as "< 1 minute", "N minutes",
// "1 hour [M minutes]" or "H hours [M minutes]".
func FormatDuration(minutes float64) string {
	if minutes < 1 {
		return "< 1 minute"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d minutes", int(math.Round(minutes)))
	}

	hours := int(math.Floor(minutes / 60))
	rest := int(math.Round(math.Mod(minutes, 60)))
	if rest == 60 {
		hours++
		rest = 0
	}

	unit := "hours"
	if hours == 1 {
		unit = "hour"
	}
	if rest > 0 {
		return fmt.Sprintf("%d %s %d minutes", hours, unit, rest)
	}
	return fmt.Sprintf("%d %s", hours, unit)
}
