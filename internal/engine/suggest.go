package engine

import "weekend-planner/internal/catalog"

const maxSuggestions = 4

// Suggest recommends up to four unplanned activities for the plan. Mood
// balancing runs first: an energetic-heavy plan gets relaxed activities and
// vice versa, a tied (or empty) plan gets happy ones, at most two either way.
// Category gaps are then filled in the fixed catalog category order. The
// result is deduplicated by activity ID, never includes anything already in
// the plan, and is fully deterministic: candidates are taken in catalog order.
func Suggest(plan WeekendPlan, activities []catalog.Activity) []Suggestion {
	planned := append(append(DayPlan{}, plan.Saturday...), plan.Sunday...)

	plannedIDs := make(map[int64]struct{}, len(planned))
	for _, item := range planned {
		plannedIDs[item.ActivityID] = struct{}{}
	}

	var unplanned []catalog.Activity
	for _, a := range activities {
		if _, ok := plannedIDs[a.ID]; !ok {
			unplanned = append(unplanned, a)
		}
	}

	moodCounts := make(map[catalog.Mood]int)
	for _, item := range planned {
		moodCounts[item.Activity.Mood]++
	}

	var balancing catalog.Mood
	switch {
	case moodCounts[catalog.MoodEnergetic] > moodCounts[catalog.MoodRelaxed]:
		balancing = catalog.MoodRelaxed
	case moodCounts[catalog.MoodRelaxed] > moodCounts[catalog.MoodEnergetic]:
		balancing = catalog.MoodEnergetic
	default:
		balancing = catalog.MoodHappy
	}

	var suggestions []Suggestion
	chosen := make(map[int64]struct{})

	added := 0
	for _, a := range unplanned {
		if added == 2 {
			break
		}
		if a.Mood != balancing {
			continue
		}
		suggestions = append(suggestions, Suggestion{Activity: a, Reason: ReasonMoodBalance})
		chosen[a.ID] = struct{}{}
		added++
	}

	plannedCategories := make(map[catalog.Category]struct{})
	for _, item := range planned {
		plannedCategories[item.Activity.Category] = struct{}{}
	}

	for _, cat := range catalog.Categories {
		if _, present := plannedCategories[cat]; present {
			continue
		}
		for _, a := range unplanned {
			if a.Category != cat {
				continue
			}
			if _, taken := chosen[a.ID]; taken {
				continue
			}
			suggestions = append(suggestions, Suggestion{Activity: a, Reason: ReasonCategoryGap})
			chosen[a.ID] = struct{}{}
			break
		}
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}
