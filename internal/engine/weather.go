package engine

import (
	"sort"
	"strings"

	"weekend-planner/internal/catalog"
)

// Score computes the weather suitability of an activity for the given
// forecast. Factors are multiplicative: the rain/clear baseline, a cold
// penalty for outdoor activities below 15°C, and a heat penalty above 30°C
// for anything that is neither wellness nor indoor.
func Score(a catalog.Activity, forecast []WeatherDay) float64 {
	hasRain := false
	isCold := false
	isHot := false
	for _, day := range forecast {
		cond := strings.ToLower(day.Condition)
		if strings.Contains(cond, "rain") || strings.Contains(cond, "drizzle") {
			hasRain = true
		}
		if day.TempCelsius < 15 {
			isCold = true
		}
		if day.TempCelsius > 30 {
			isHot = true
		}
	}

	var score float64
	if hasRain {
		if a.IsIndoor {
			score = 1.0
		} else {
			score = 0.3
		}
	} else {
		if a.IsIndoor {
			score = 0.7
		} else {
			score = 1.0
		}
	}

	if isCold && !a.IsIndoor {
		score *= 0.5
	}
	if isHot && a.Category != catalog.CategoryWellness && !a.IsIndoor {
		score *= 0.8
	}

	return score
}

// RankByWeather returns the activities sorted by descending weather score.
// The sort is stable, so ties keep their catalog order. An empty forecast
// means no weather signal: the input is returned untouched.
func RankByWeather(activities []catalog.Activity, forecast []WeatherDay) []catalog.Activity {
	if len(forecast) == 0 {
		return activities
	}

	ranked := make([]catalog.Activity, len(activities))
	copy(ranked, activities)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(ranked[i], forecast) > Score(ranked[j], forecast)
	})
	return ranked
}
