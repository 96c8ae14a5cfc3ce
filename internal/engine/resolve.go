package engine

import (
	"strings"

	"weekend-planner/internal/catalog"
)

// ResolveSuggestions matches the language model's free-text activity names
// back to catalog records and assembles the resolved weekend. A suggestion
// matches an activity when either name contains the other, case-insensitive;
// the first catalog match wins. Suggestions that match nothing are dropped
// without error and counted in Dropped. The insights are always populated,
// even when every suggestion failed to resolve.
func ResolveSuggestions(raw RawWeekendSuggestion, activities []catalog.Activity) ResolvedWeekend {
	resolved := ResolvedWeekend{
		Saturday: DayPlan{},
		Sunday:   DayPlan{},
		Insights: Insights{
			Reasoning:             raw.OverallReasoning,
			WeatherConsiderations: raw.WeatherConsiderations,
		},
	}

	resolved.Saturday = resolveDay(raw.Saturday, activities, &resolved.Dropped)
	resolved.Sunday = resolveDay(raw.Sunday, activities, &resolved.Dropped)
	return resolved
}

func resolveDay(suggestions []NamedSuggestion, activities []catalog.Activity, dropped *int) DayPlan {
	day := DayPlan{}
	for _, s := range suggestions {
		activity, ok := matchByName(s.ActivityName, activities)
		if !ok {
			*dropped++
			continue
		}
		day = append(day, ScheduledItem{
			ActivityID: activity.ID,
			Activity:   activity,
			StartTime:  s.StartTime,
			Notes:      s.Reasoning,
		})
	}
	return day
}

func matchByName(name string, activities []catalog.Activity) (catalog.Activity, bool) {
	needle := strings.ToLower(name)
	for _, a := range activities {
		candidate := strings.ToLower(a.Name)
		if strings.Contains(candidate, needle) || strings.Contains(needle, candidate) {
			return a, true
		}
	}
	return catalog.Activity{}, false
}
