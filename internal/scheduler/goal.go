package scheduler

import "github.com/alexanderramin/courseplan/internal/domain"

// BuildGoal summarizes the slices scheduled on one day.
func BuildGoal(slices []domain.ScheduledSlice) domain.DayGoal {
	switch len(slices) {
	case 0:
		return domain.DayGoal{Kind: domain.GoalReview}
	case 1:
		s := slices[0]
		if s.Partial {
			return domain.DayGoal{
				Kind:       domain.GoalItemPart,
				Topic:      s.Topic,
				Title:      s.Title,
				ItemKind:   s.Kind,
				Part:       s.Part,
				TotalParts: s.TotalParts,
				ItemCount:  1,
			}
		}
		return domain.DayGoal{
			Kind:      domain.GoalCompleteItem,
			Topic:     s.Topic,
			Title:     s.Title,
			ItemKind:  s.Kind,
			ItemCount: 1,
		}
	}

	topics := distinctTopics(slices)
	if len(topics) == 1 {
		return domain.DayGoal{
			Kind:      domain.GoalSingleTopic,
			Topic:     topics[0],
			ItemCount: len(slices),
		}
	}
	return domain.DayGoal{
		Kind:      domain.GoalMixedTopics,
		Topic:     topics[0],
		Topics:    topics,
		ItemCount: len(slices),
	}
}

func distinctTopics(slices []domain.ScheduledSlice) []string {
	seen := make(map[string]bool, len(slices))
	var out []string
	for _, s := range slices {
		if seen[s.Topic] {
			continue
		}
		seen[s.Topic] = true
		out = append(out, s.Topic)
	}
	return out
}
