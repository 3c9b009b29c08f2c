// Package testutil builds course trees and calendars for tests.
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/courseplan/internal/domain"
)

var contentCounter atomic.Int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, contentCounter.Add(1))
}

// CourseOption customizes a course built by NewTestCourse.
type CourseOption func(*domain.Course)

func WithTitle(title string) CourseOption {
	return func(c *domain.Course) { c.Title = title }
}

// WithUnit appends a unit holding the given topics.
func WithUnit(title string, topics ...domain.Topic) CourseOption {
	return func(c *domain.Course) {
		c.Units = append(c.Units, domain.Unit{
			ID:     nextID("u"),
			Title:  title,
			Slug:   slug(title),
			Topics: topics,
		})
	}
}

func WithCourseChallenge(lower, upper float64) CourseOption {
	return func(c *domain.Course) {
		c.CourseChallenge = &domain.Challenge{
			ID:           nextID("cc"),
			TimeEstimate: domain.TimeEstimate{LowerBound: lower, UpperBound: upper, AverageMinutes: (lower + upper) / 2},
		}
	}
}

// NewTestCourse returns an empty but structurally valid course unless
// options add units.
func NewTestCourse(opts ...CourseOption) *domain.Course {
	c := &domain.Course{
		ID:    nextID("c"),
		Title: "Calculus 2",
		Slug:  "calculus-2",
		URL:   "https://www.khanacademy.org/math/calculus-2",
		Units: []domain.Unit{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Topic builds a topic with the given contents.
func Topic(title string, contents ...domain.Content) domain.Topic {
	return domain.Topic{
		ID:       nextID("t"),
		Title:    title,
		Slug:     slug(title),
		Contents: contents,
	}
}

// Video builds video content with a fetched duration.
func Video(title string, minutes float64) domain.Content {
	return domain.Content{
		ID:            nextID("v"),
		Title:         title,
		ContentKind:   string(domain.KindVideo),
		Slug:          slug(title),
		VideoMetadata: &domain.VideoMetadata{Duration: minutes * 60, DurationMinutes: minutes},
	}
}

// Item builds content of any kind without time data, so the per-kind
// heuristic decides its length.
func Item(kind domain.ContentKind, title string) domain.Content {
	return domain.Content{
		ID:          nextID("i"),
		Title:       title,
		ContentKind: string(kind),
		Slug:        slug(title),
	}
}

// Estimated builds content of any kind with an explicit time range.
func Estimated(kind domain.ContentKind, title string, lower, upper float64) domain.Content {
	c := Item(kind, title)
	c.TimeEstimate = &domain.TimeEstimate{LowerBound: lower, UpperBound: upper, AverageMinutes: (lower + upper) / 2}
	return c
}

// Calendar returns a calendar from start (inclusive) to end (exclusive)
// with the given weekdays excluded.
func Calendar(start, end time.Time, excluded ...time.Weekday) domain.Calendar {
	return domain.Calendar{Start: start, End: end, ExcludedWeekdays: excluded}
}

func slug(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), "-"))
}
