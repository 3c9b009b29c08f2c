package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/courseplan/internal/domain"
)

const (
	// minSliceMinutes is the smallest day remainder still worth filling.
	minSliceMinutes = 5.0
	// consumedThreshold treats an item with this little left as done, so
	// rounding residue can never stall the queue.
	consumedThreshold = 1.0
	// adaptiveFloorMinutes is the least an adaptive day is budgeted.
	adaptiveFloorMinutes = 60.0
	// partChunkMinutes is the nominal size used only for "part k/n" labels.
	partChunkMinutes = 30.0
)

// DateLabelLayout formats DailyBreakdown.DateLabel.
const DateLabelLayout = "Jan 2, 2006"

// Allocation is the outcome of distributing content over study days.
// Backlog holds every item not fully consumed by the last day.
type Allocation struct {
	Days           []domain.DailyBreakdown
	Backlog        []domain.BacklogItem
	BacklogMinutes float64
}

// HasBacklog reports whether content was left over.
func (a Allocation) HasBacklog() bool {
	return len(a.Backlog) > 0
}

// Allocator distributes the flattened content queue over study days.
type Allocator interface {
	Pace() domain.Pace
	Allocate(units []domain.UnitPlan, days []time.Time, hoursPerDay float64) Allocation
}

// AdaptivePace re-targets each day's budget against remaining work and
// remaining days, never above hoursPerDay and never below one hour.
type AdaptivePace struct{}

func (AdaptivePace) Pace() domain.Pace { return domain.PaceAdaptive }

func (AdaptivePace) Allocate(units []domain.UnitPlan, days []time.Time, hoursPerDay float64) Allocation {
	return allocate(units, days, hoursPerDay, func(minutesPerDay, remainingContent float64, remainingDays int) float64 {
		return math.Min(minutesPerDay, math.Max(adaptiveFloorMinutes, remainingContent/float64(remainingDays)))
	})
}

// FixedPace spends the full hoursPerDay budget every day, front-loading
// content and leaving trailing days idle once the queue is empty.
type FixedPace struct{}

func (FixedPace) Pace() domain.Pace { return domain.PaceFixed }

func (FixedPace) Allocate(units []domain.UnitPlan, days []time.Time, hoursPerDay float64) Allocation {
	return allocate(units, days, hoursPerDay, func(minutesPerDay, _ float64, _ int) float64 {
		return minutesPerDay
	})
}

// NewAllocator returns the allocator for pace. An empty pace selects
// AdaptivePace.
func NewAllocator(pace domain.Pace) (Allocator, error) {
	switch pace {
	case domain.PaceAdaptive, "":
		return AdaptivePace{}, nil
	case domain.PaceFixed:
		return FixedPace{}, nil
	default:
		return nil, fmt.Errorf("unknown pace %q (want adaptive or fixed)", pace)
	}
}

type budgetFunc func(minutesPerDay, remainingContent float64, remainingDays int) float64

type queueEntry struct {
	unitTitle string
	topic     string
	item      domain.ContentItem
	remaining float64
}

// newQueue flattens units into a freshly owned queue in unit, topic,
// content order.
func newQueue(units []domain.UnitPlan) []queueEntry {
	var q []queueEntry
	for _, u := range units {
		for _, t := range u.TopicDetails {
			for _, c := range t.Contents {
				q = append(q, queueEntry{
					unitTitle: u.UnitTitle,
					topic:     t.Title,
					item:      c,
					remaining: c.EstimatedMinutes,
				})
			}
		}
	}
	return q
}

func remainingFrom(q []queueEntry, cursor int) float64 {
	total := 0.0
	for _, e := range q[cursor:] {
		if e.remaining > 0 {
			total += e.remaining
		}
	}
	return total
}

func allocate(units []domain.UnitPlan, days []time.Time, hoursPerDay float64, budget budgetFunc) Allocation {
	q := newQueue(units)
	minutesPerDay := hoursPerDay * 60
	cursor := 0
	out := make([]domain.DailyBreakdown, 0, len(days))

	for i, day := range days {
		dayBudget := budget(minutesPerDay, remainingFrom(q, cursor), len(days)-i)
		left := dayBudget
		var slices []domain.ScheduledSlice

		for left > minSliceMinutes && cursor < len(q) {
			e := &q[cursor]
			take := math.Min(left, e.remaining)
			if take > 0 {
				slices = append(slices, takeSlice(e, take))
				e.remaining -= take
				left -= take
			}

			advanced := false
			if e.remaining <= consumedThreshold {
				cursor++
				advanced = true
			}
			if take <= 0 && !advanced {
				break
			}
		}

		out = append(out, buildDay(i, day, hoursPerDay, dayBudget, slices))
	}

	alloc := Allocation{Days: out}
	for _, e := range q[cursor:] {
		if e.remaining <= 0 {
			continue
		}
		alloc.Backlog = append(alloc.Backlog, domain.BacklogItem{
			UnitTitle:        e.unitTitle,
			Topic:            e.topic,
			ContentID:        e.item.ID,
			Title:            e.item.Title,
			Kind:             e.item.Kind,
			EstimatedMinutes: e.item.EstimatedMinutes,
			RemainingMinutes: e.remaining,
		})
		alloc.BacklogMinutes += e.remaining
	}
	return alloc
}

// takeSlice records take minutes of e. Part numbers use a nominal chunk
// size and are only set when the item is not finished by this slice.
func takeSlice(e *queueEntry, take float64) domain.ScheduledSlice {
	s := domain.ScheduledSlice{
		UnitTitle: e.unitTitle,
		Topic:     e.topic,
		ContentID: e.item.ID,
		Title:     e.item.Title,
		Kind:      e.item.Kind,
		Minutes:   take,
	}
	if e.remaining > take {
		est := e.item.EstimatedMinutes
		s.Partial = true
		s.TotalParts = int(math.Ceil(est / partChunkMinutes))
		s.Part = int(math.Ceil((est - e.remaining + take) / partChunkMinutes))
	}
	return s
}

func buildDay(index int, day time.Time, hoursPerDay, dayBudget float64, slices []domain.ScheduledSlice) domain.DailyBreakdown {
	scheduled := 0.0
	for _, s := range slices {
		scheduled += s.Minutes
	}

	d := domain.DailyBreakdown{
		DayIndex:         index,
		Day:              day.Weekday().String(),
		Date:             day,
		DateLabel:        day.Format(DateLabelLayout),
		Topic:            "Review",
		UnitTitle:        "Review",
		WeekNumber:       index/7 + 1,
		StudyHours:       hoursPerDay,
		BudgetMinutes:    dayBudget,
		ScheduledMinutes: scheduled,
		IdleMinutes:      math.Max(0, hoursPerDay*60-scheduled),
		Status:           dayStatus(slices),
		Goal:             BuildGoal(slices),
		Items:            slices,
	}
	if len(slices) > 0 {
		d.Topic = slices[0].Topic
		d.UnitTitle = slices[0].UnitTitle
	}
	if d.Items == nil {
		d.Items = []domain.ScheduledSlice{}
	}
	return d
}

func dayStatus(slices []domain.ScheduledSlice) domain.DayStatus {
	if len(slices) == 0 {
		return domain.DayReview
	}
	for _, s := range slices {
		if s.Partial {
			return domain.DayPartial
		}
	}
	return domain.DayCompleted
}
