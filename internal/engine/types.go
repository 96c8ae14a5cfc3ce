// Package engine implements the scheduling and recommendation core: time
// conflict detection, weather suitability scoring, smart suggestions,
// theme-based autocompletion and resolution of free-text suggestions against
// the catalog. Every function is a pure computation over snapshots passed by
// the caller; none of them touch storage or the network.
package engine

import "weekend-planner/internal/catalog"

// Theme is a named planning style driving keyword-based filtering.
type Theme string

const (
	ThemeLazy        Theme = "lazy"
	ThemeAdventurous Theme = "adventurous"
	ThemeFamily      Theme = "family"
)

// ScheduledItem places an activity on a day at a start time. The Activity is
// denormalized alongside its ID so plans render without a catalog lookup.
type ScheduledItem struct {
	ActivityID int64            `json:"activityId"`
	Activity   catalog.Activity `json:"activity"`
	StartTime  string           `json:"startTime"` // "HH:MM", 24-hour
	Notes      string           `json:"notes"`
}

// DayPlan is the ordered list of items for one weekend day. Order is
// insertion order, not time order.
type DayPlan []ScheduledItem

// WeekendPlan is a full two-day plan. It is a value: the plan operations in
// this package return modified copies and never mutate their input.
type WeekendPlan struct {
	ID            string  `json:"id,omitempty"`
	Title         string  `json:"title"`
	Theme         Theme   `json:"theme"`
	Saturday      DayPlan `json:"saturday"`
	Sunday        DayPlan `json:"sunday"`
	IsLongWeekend bool    `json:"isLongWeekend"`
}

// WeatherDay is the forecast for one weekend day.
type WeatherDay struct {
	Day         string  `json:"day"` // "Saturday" or "Sunday"
	Date        string  `json:"date"`
	TempCelsius float64 `json:"temp"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
}

// SuggestionReason explains why an activity was suggested.
type SuggestionReason string

const (
	ReasonMoodBalance SuggestionReason = "mood-balance"
	ReasonCategoryGap SuggestionReason = "category-gap"
)

// Suggestion pairs a recommended activity with its rationale.
type Suggestion struct {
	Activity catalog.Activity `json:"activity"`
	Reason   SuggestionReason `json:"reason"`
}

// GeneratedWeekend is the output of AutoComplete: two freshly built days.
type GeneratedWeekend struct {
	Saturday DayPlan `json:"saturday"`
	Sunday   DayPlan `json:"sunday"`
}

// NamedSuggestion is one activity reference as produced by the language
// model: a free-text name rather than a catalog ID.
type NamedSuggestion struct {
	ActivityName string `json:"activityName"`
	StartTime    string `json:"startTime"`
	Reasoning    string `json:"reasoning"`
}

// RawWeekendSuggestion is the parsed day-by-day output of the language model.
type RawWeekendSuggestion struct {
	Saturday              []NamedSuggestion `json:"saturday"`
	Sunday                []NamedSuggestion `json:"sunday"`
	OverallReasoning      string            `json:"overallReasoning"`
	WeatherConsiderations string            `json:"weatherConsiderations"`
}

// Insights carries the model's plan-level commentary through resolution.
type Insights struct {
	Reasoning             string `json:"reasoning"`
	WeatherConsiderations string `json:"weatherConsiderations"`
}

// ResolvedWeekend is a RawWeekendSuggestion matched back against the catalog.
// Dropped counts the suggestions whose names matched nothing; they are
// omitted from the days without error.
type ResolvedWeekend struct {
	Saturday DayPlan  `json:"saturday"`
	Sunday   DayPlan  `json:"sunday"`
	Insights Insights `json:"insights"`
	Dropped  int      `json:"-"`
}
