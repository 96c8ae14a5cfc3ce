// Package assistant turns free-text weekend requests into resolved plans by
// prompting a language model with the activity catalog and forecast, then
// matching the model's suggestions back against the catalog.
package assistant

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"text/template"
	"time"

	"weekend-planner/internal/catalog"
	"weekend-planner/internal/engine"
	"weekend-planner/internal/llm"
	"weekend-planner/internal/shared"
)

//go:embed assistant_prompt.md
var assistantPrompt string

// Models rarely answer with bare JSON; grab the outermost object.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// Request is one natural-language planning request with its context.
type Request struct {
	Prompt     string
	Theme      engine.Theme
	Activities []catalog.Activity
	Forecast   []engine.WeatherDay
}

// Result pairs the resolved weekend with execution metadata.
type Result struct {
	Weekend engine.ResolvedWeekend
	Meta    shared.AgentMeta
}

// Assistant handles language-model-backed weekend generation.
type Assistant struct {
	textGen llm.TextGenerator
}

// New creates a new Assistant instance.
func New(textGen llm.TextGenerator) *Assistant {
	return &Assistant{textGen: textGen}
}

// Plan builds the prompt, calls the model and resolves the response against
// the catalog. Suggestions that name no known activity are dropped silently;
// the count is available on the returned weekend.
func (a *Assistant) Plan(ctx context.Context, req Request) (Result, error) {
	start := time.Now()

	prompt, err := buildPrompt(req)
	if err != nil {
		return Result{}, err
	}

	resp, err := a.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate weekend plan: %w", err)
	}

	meta := shared.AgentMeta{
		AgentName: "WeekendAssistant",
		Usage:     resp.Usage,
		Latency:   time.Since(start),
	}

	raw, err := parseSuggestion(resp.Content)
	if err != nil {
		return Result{Meta: meta}, err
	}

	return Result{
		Weekend: engine.ResolveSuggestions(raw, req.Activities),
		Meta:    meta,
	}, nil
}

func buildPrompt(req Request) (string, error) {
	var activities strings.Builder
	for _, a := range req.Activities {
		fmt.Fprintf(&activities, "%s (%s, %s, %gh) - %s\n", a.Name, a.Category, a.Mood, a.DurationHours, a.Description)
	}

	weather := "Weather data not available"
	if len(req.Forecast) > 0 {
		var b strings.Builder
		for _, day := range req.Forecast {
			fmt.Fprintf(&b, "%s: %.0f°C, %s\n", day.Day, day.TempCelsius, day.Description)
		}
		weather = strings.TrimRight(b.String(), "\n")
	}

	tmpl, err := template.New("WeekendAssistant").Parse(assistantPrompt)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]string{
		"ActivitiesContext": strings.TrimRight(activities.String(), "\n"),
		"WeatherContext":    weather,
		"Theme":             string(req.Theme),
		"Request":           req.Prompt,
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// parseSuggestion extracts the first JSON object from the model output and
// decodes it.
func parseSuggestion(content string) (engine.RawWeekendSuggestion, error) {
	match := jsonObjectPattern.FindString(content)
	if match == "" {
		return engine.RawWeekendSuggestion{}, fmt.Errorf("no JSON object in model response: %s", content)
	}

	var raw engine.RawWeekendSuggestion
	if err := json.Unmarshal([]byte(match), &raw); err != nil {
		return engine.RawWeekendSuggestion{}, fmt.Errorf("failed to parse weekend suggestion: %w. Response: %s", err, content)
	}
	return raw, nil
}
