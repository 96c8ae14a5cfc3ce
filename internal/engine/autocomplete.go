package engine

import (
	"math/rand"
	"strings"
	"time"

	"weekend-planner/internal/catalog"
)

// themeKeywords maps each theme to the literal keywords matched (OR, case
// insensitive) against activity names, descriptions and categories.
var themeKeywords = map[Theme][]string{
	ThemeLazy:        {"reading", "spa", "movie", "brunch", "meditation", "yoga"},
	ThemeAdventurous: {"hiking", "bike", "photography", "beach", "outdoor", "explore"},
	ThemeFamily:      {"board", "family", "park", "cook", "game", "picnic"},
}

// startSlots assigns a start time by an item's position within its day.
var startSlots = []string{"09:00", "12:00", "15:00", "18:00"}

const dayCapacity = 3

// AutoComplete builds a fresh weekend from a theme: filter the catalog by
// theme keywords, re-rank by weather when a forecast is available, then make
// a single pass over the moods energetic, happy, relaxed placing one random
// matching activity per mood. Placement alternates between the days starting
// with Saturday, skipping a day once it holds three items; the day pointer
// advances every iteration whether or not an activity was placed. One pass
// only, so days can end up with zero to three items.
//
// rng is the sole source of randomness; tests inject a fixed seed. A nil rng
// falls back to a time-seeded source.
func AutoComplete(theme Theme, activities []catalog.Activity, forecast []WeatherDay, rng *rand.Rand) GeneratedWeekend {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	keywords := themeKeywords[theme]

	var pool []catalog.Activity
	for _, a := range activities {
		if matchesAnyKeyword(a, keywords) {
			pool = append(pool, a)
		}
	}

	if len(forecast) > 0 {
		pool = RankByWeather(pool, forecast)
	}

	result := GeneratedWeekend{Saturday: DayPlan{}, Sunday: DayPlan{}}
	onSaturday := true

	for _, mood := range []catalog.Mood{catalog.MoodEnergetic, catalog.MoodHappy, catalog.MoodRelaxed} {
		var candidates []int
		for i, a := range pool {
			if a.Mood == mood {
				candidates = append(candidates, i)
			}
		}

		if len(candidates) > 0 {
			idx := candidates[rng.Intn(len(candidates))]
			picked := pool[idx]

			if onSaturday && len(result.Saturday) < dayCapacity {
				result.Saturday = append(result.Saturday, ScheduledItem{
					ActivityID: picked.ID,
					Activity:   picked,
					StartTime:  slotFor(len(result.Saturday)),
				})
			} else if len(result.Sunday) < dayCapacity {
				result.Sunday = append(result.Sunday, ScheduledItem{
					ActivityID: picked.ID,
					Activity:   picked,
					StartTime:  slotFor(len(result.Sunday)),
				})
			}

			pool = append(pool[:idx:idx], pool[idx+1:]...)
		}

		onSaturday = !onSaturday
	}

	return result
}

func matchesAnyKeyword(a catalog.Activity, keywords []string) bool {
	name := strings.ToLower(a.Name)
	desc := strings.ToLower(a.Description)
	cat := strings.ToLower(string(a.Category))
	for _, kw := range keywords {
		if strings.Contains(name, kw) || strings.Contains(desc, kw) || strings.Contains(cat, kw) {
			return true
		}
	}
	return false
}

func slotFor(position int) string {
	if position < len(startSlots) {
		return startSlots[position]
	}
	return "10:00"
}
