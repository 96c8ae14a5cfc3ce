package engine

import (
	"math/rand"
	"testing"

	"weekend-planner/internal/catalog"
)

func seededCatalog() []catalog.Activity {
	activities := make([]catalog.Activity, len(catalog.Seed))
	copy(activities, catalog.Seed)
	for i := range activities {
		activities[i].ID = int64(i + 1)
	}
	return activities
}

func TestAutoComplete(t *testing.T) {
	activities := seededCatalog()

	t.Run("DaysNeverExceedThreeItems", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			rng := rand.New(rand.NewSource(seed))
			for _, theme := range []Theme{ThemeLazy, ThemeAdventurous, ThemeFamily} {
				weekend := AutoComplete(theme, activities, nil, rng)
				if len(weekend.Saturday) > 3 || len(weekend.Sunday) > 3 {
					t.Fatalf("theme %s seed %d: day over capacity (%d/%d)",
						theme, seed, len(weekend.Saturday), len(weekend.Sunday))
				}
			}
		}
	})

	t.Run("ReproducibleWithSameSeed", func(t *testing.T) {
		a := AutoComplete(ThemeAdventurous, activities, nil, rand.New(rand.NewSource(42)))
		b := AutoComplete(ThemeAdventurous, activities, nil, rand.New(rand.NewSource(42)))

		if len(a.Saturday) != len(b.Saturday) || len(a.Sunday) != len(b.Sunday) {
			t.Fatal("same seed produced different day sizes")
		}
		for i := range a.Saturday {
			if a.Saturday[i].ActivityID != b.Saturday[i].ActivityID {
				t.Error("same seed produced different Saturday picks")
			}
		}
		for i := range a.Sunday {
			if a.Sunday[i].ActivityID != b.Sunday[i].ActivityID {
				t.Error("same seed produced different Sunday picks")
			}
		}
	})

	t.Run("OnlyThemeMatchesArePlaced", func(t *testing.T) {
		lazyKeywords := themeKeywords[ThemeLazy]
		weekend := AutoComplete(ThemeLazy, activities, nil, rand.New(rand.NewSource(7)))
		for _, item := range append(append(DayPlan{}, weekend.Saturday...), weekend.Sunday...) {
			if !matchesAnyKeyword(item.Activity, lazyKeywords) {
				t.Errorf("%q does not match any lazy keyword", item.Activity.Name)
			}
		}
	})

	t.Run("StartTimesFollowSlotTable", func(t *testing.T) {
		weekend := AutoComplete(ThemeFamily, activities, nil, rand.New(rand.NewSource(3)))
		for _, day := range []DayPlan{weekend.Saturday, weekend.Sunday} {
			for i, item := range day {
				want := startSlots[i]
				if item.StartTime != want {
					t.Errorf("slot %d: expected %s, got %s", i, want, item.StartTime)
				}
			}
		}
	})

	t.Run("DayPointerAdvancesOnEmptyMood", func(t *testing.T) {
		// No energetic activities at all: the first mood pass places nothing
		// but still flips the pointer, so the happy pick lands on Sunday.
		pool := []catalog.Activity{
			{ID: 1, Name: "Movie Night", Category: catalog.CategoryEntertainment, DurationHours: 3, Mood: catalog.MoodRelaxed, Description: "Cozy movie watching", IsIndoor: true},
			{ID: 2, Name: "Brunch", Category: catalog.CategoryFood, DurationHours: 2, Mood: catalog.MoodHappy, Description: "Brunch outing", IsIndoor: true},
		}
		weekend := AutoComplete(ThemeLazy, pool, nil, rand.New(rand.NewSource(1)))

		if len(weekend.Saturday) != 1 || weekend.Saturday[0].ActivityID != 1 {
			t.Errorf("expected the relaxed pick on Saturday, got %+v", weekend.Saturday)
		}
		if len(weekend.Sunday) != 1 || weekend.Sunday[0].ActivityID != 2 {
			t.Errorf("expected the happy pick on Sunday, got %+v", weekend.Sunday)
		}
	})

	t.Run("ForecastReordersPool", func(t *testing.T) {
		// Rain: indoor lazy picks should be favored over outdoor ones when
		// the ranked pool feeds the mood pass. With a pool of one relaxed
		// indoor and one relaxed outdoor activity, ranking changes which one
		// sits first but random choice still runs over all candidates; here
		// we only assert the call degrades gracefully with and without
		// weather.
		forecast := []WeatherDay{{Day: "Saturday", TempCelsius: 18, Condition: "Rain"}}
		withWeather := AutoComplete(ThemeLazy, activities, forecast, rand.New(rand.NewSource(9)))
		withoutWeather := AutoComplete(ThemeLazy, activities, nil, rand.New(rand.NewSource(9)))

		total := func(w GeneratedWeekend) int { return len(w.Saturday) + len(w.Sunday) }
		if total(withWeather) == 0 || total(withoutWeather) == 0 {
			t.Error("lazy theme over the full catalog should always place something")
		}
	})

	t.Run("NilRandomSource", func(t *testing.T) {
		weekend := AutoComplete(ThemeLazy, activities, nil, nil)
		if len(weekend.Saturday)+len(weekend.Sunday) == 0 {
			t.Error("nil rng should fall back to a time-seeded source, not an empty weekend")
		}
	})

	t.Run("UnknownThemeYieldsEmptyWeekend", func(t *testing.T) {
		weekend := AutoComplete(Theme("spontaneous"), activities, nil, rand.New(rand.NewSource(1)))
		if len(weekend.Saturday) != 0 || len(weekend.Sunday) != 0 {
			t.Error("an unknown theme has no keywords and should place nothing")
		}
	})
}
