package engine

import (
	"math"
	"testing"

	"weekend-planner/internal/catalog"
)

var (
	yoga = catalog.Activity{
		ID: 1, Name: "Yoga", Category: catalog.CategoryWellness,
		DurationHours: 1, Mood: catalog.MoodRelaxed, IsIndoor: true,
	}
	hiking = catalog.Activity{
		ID: 2, Name: "Hiking", Category: catalog.CategoryOutdoor,
		DurationHours: 4, Mood: catalog.MoodEnergetic, IsIndoor: false,
	}
	concert = catalog.Activity{
		ID: 3, Name: "Concert", Category: catalog.CategoryEntertainment,
		DurationHours: 4, Mood: catalog.MoodEnergetic, IsIndoor: false,
	}
)

func approx(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected score %v, got %v", want, got)
	}
}

func TestScore(t *testing.T) {
	t.Run("RainPrefersIndoor", func(t *testing.T) {
		forecast := []WeatherDay{{Day: "Saturday", TempCelsius: 20, Condition: "Rain"}}
		indoor := Score(yoga, forecast)
		outdoor := Score(hiking, forecast)
		if indoor <= outdoor {
			t.Errorf("indoor (%v) should outscore outdoor (%v) in rain", indoor, outdoor)
		}
		approx(t, indoor, 1.0)
		approx(t, outdoor, 0.3)
	})

	t.Run("DrizzleCaseInsensitive", func(t *testing.T) {
		forecast := []WeatherDay{{Day: "Sunday", TempCelsius: 20, Condition: "Light DRIZZLE"}}
		approx(t, Score(hiking, forecast), 0.3)
	})

	t.Run("ClearBoostsOutdoor", func(t *testing.T) {
		forecast := []WeatherDay{
			{Day: "Saturday", TempCelsius: 22, Condition: "Clear"},
			{Day: "Sunday", TempCelsius: 24, Condition: "Clouds"},
		}
		approx(t, Score(hiking, forecast), 1.0)
		approx(t, Score(yoga, forecast), 0.7)
	})

	t.Run("ColdHalvesOutdoorOnly", func(t *testing.T) {
		forecast := []WeatherDay{
			{Day: "Saturday", TempCelsius: 10, Condition: "Clear"},
			{Day: "Sunday", TempCelsius: 12, Condition: "Clear"},
		}
		approx(t, Score(hiking, forecast), 0.5) // 1.0 outdoor base * 0.5 cold
		approx(t, Score(yoga, forecast), 0.7)   // indoor untouched
	})

	t.Run("HeatSparesWellnessAndIndoor", func(t *testing.T) {
		forecast := []WeatherDay{{Day: "Saturday", TempCelsius: 33, Condition: "Clear"}}
		approx(t, Score(concert, forecast), 0.8) // outdoor, not wellness
		approx(t, Score(yoga, forecast), 0.7)    // indoor wellness untouched
	})

	t.Run("ColdAndRainStack", func(t *testing.T) {
		forecast := []WeatherDay{{Day: "Saturday", TempCelsius: 8, Condition: "Rain"}}
		approx(t, Score(hiking, forecast), 0.15) // 0.3 * 0.5
	})
}

func TestRankByWeather(t *testing.T) {
	t.Run("EmptyForecastIsNoOp", func(t *testing.T) {
		activities := []catalog.Activity{hiking, yoga, concert}
		ranked := RankByWeather(activities, nil)
		if len(ranked) != 3 {
			t.Fatalf("expected 3 activities, got %d", len(ranked))
		}
		for i, a := range activities {
			if ranked[i].ID != a.ID {
				t.Errorf("position %d changed: expected %q, got %q", i, a.Name, ranked[i].Name)
			}
		}
	})

	t.Run("RainRanksIndoorFirst", func(t *testing.T) {
		forecast := []WeatherDay{{Day: "Saturday", TempCelsius: 20, Condition: "Rain"}}
		ranked := RankByWeather([]catalog.Activity{hiking, concert, yoga}, forecast)
		if ranked[0].ID != yoga.ID {
			t.Errorf("expected Yoga first in rain, got %q", ranked[0].Name)
		}
	})

	t.Run("TiesKeepCatalogOrder", func(t *testing.T) {
		forecast := []WeatherDay{{Day: "Saturday", TempCelsius: 20, Condition: "Clear"}}
		// Hiking and Concert both score 1.0 outdoors in clear weather.
		ranked := RankByWeather([]catalog.Activity{hiking, concert, yoga}, forecast)
		if ranked[0].ID != hiking.ID || ranked[1].ID != concert.ID {
			t.Errorf("stable sort should preserve tie order, got %q then %q", ranked[0].Name, ranked[1].Name)
		}
	})

	t.Run("InputNotMutated", func(t *testing.T) {
		forecast := []WeatherDay{{Day: "Saturday", TempCelsius: 20, Condition: "Rain"}}
		activities := []catalog.Activity{hiking, concert, yoga}
		RankByWeather(activities, forecast)
		if activities[0].ID != hiking.ID {
			t.Error("RankByWeather must not reorder its input slice")
		}
	})
}
