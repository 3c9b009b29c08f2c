package scheduler

import (
	"math"

	"github.com/alexanderramin/courseplan/internal/domain"
)

// Combine sums a set of estimates plus extra video minutes into one
// composite estimate. It returns nil when there is nothing to combine, so
// callers can omit the field instead of reporting zero.
func Combine(estimates []domain.TimeEstimate, extraVideoMinutes float64) *domain.TimeEstimate {
	if len(estimates) == 0 && extraVideoMinutes == 0 {
		return nil
	}

	var lower, upper, video float64
	for _, e := range estimates {
		lower += e.LowerBound
		upper += e.UpperBound
		video += e.VideoMinutes
	}
	video += extraVideoMinutes

	return &domain.TimeEstimate{
		LowerBound:     lower,
		UpperBound:     upper,
		AverageMinutes: math.Round((lower + upper) / 2),
		VideoMinutes:   video,
		TotalMinutes:   math.Round(video + (lower+upper)/2),
	}
}

// FromBounds wraps a raw bound pair with no video component.
func FromBounds(lower, upper float64) domain.TimeEstimate {
	avg := math.Round((lower + upper) / 2)
	return domain.TimeEstimate{
		LowerBound:     lower,
		UpperBound:     upper,
		AverageMinutes: avg,
		TotalMinutes:   avg,
	}
}

// VideoOnly is the estimate of a topic whose only known time is its videos.
func VideoOnly(videoMinutes float64) *domain.TimeEstimate {
	if videoMinutes <= 0 {
		return nil
	}
	return &domain.TimeEstimate{VideoMinutes: videoMinutes, TotalMinutes: videoMinutes}
}

// VideoMinutes sums the known video durations of contents.
func VideoMinutes(contents []domain.Content) float64 {
	total := 0.0
	for _, c := range contents {
		total += c.VideoDurationMinutes()
	}
	return total
}
