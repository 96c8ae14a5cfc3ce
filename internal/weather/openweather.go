// Package weather fetches the weekend forecast from OpenWeatherMap. The
// forecast is advisory: callers treat any failure as "no forecast" and the
// planning engine degrades to unranked behavior.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"weekend-planner/internal/config"
	"weekend-planner/internal/engine"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/forecast"

// Client is a client for the OpenWeatherMap 5-day forecast API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a new forecast client.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:  cfg.OpenWeatherAPIKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		now: time.Now,
	}
}

// forecastResponse is the subset of the OpenWeatherMap payload we consume.
type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	} `json:"list"`
}

// WeekendForecast fetches the forecast for a city and extracts the first
// upcoming Saturday and Sunday entries. The result has at most two days and
// may be shorter near the end of the forecast horizon.
func (c *Client) WeekendForecast(ctx context.Context, city string) ([]engine.WeatherDay, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("no OpenWeatherMap API key configured")
	}

	endpoint := fmt.Sprintf("%s?q=%s&appid=%s&units=metric", c.baseURL, url.QueryEscape(city), c.apiKey)
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openweathermap error: status=%d body=%s", resp.StatusCode, string(bodyBytes))
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode forecast: %w", err)
	}

	return c.extractWeekend(payload), nil
}

// extractWeekend picks the first forecast entry for each of the next
// Saturday and Sunday, in the order they occur.
func (c *Client) extractWeekend(payload forecastResponse) []engine.WeatherDay {
	now := c.now()
	var weekend []engine.WeatherDay
	seen := map[string]bool{}

	for _, entry := range payload.List {
		ts := time.Unix(entry.Dt, 0)
		weekday := ts.Weekday()
		if (weekday != time.Saturday && weekday != time.Sunday) || !ts.After(now) {
			continue
		}

		dayName := "Saturday"
		if weekday == time.Sunday {
			dayName = "Sunday"
		}
		if seen[dayName] {
			continue
		}
		seen[dayName] = true

		day := engine.WeatherDay{
			Day:         dayName,
			Date:        ts.Format("2006-01-02"),
			TempCelsius: entry.Main.Temp,
			Humidity:    entry.Main.Humidity,
			WindSpeed:   entry.Wind.Speed,
		}
		if len(entry.Weather) > 0 {
			day.Condition = entry.Weather[0].Main
			day.Description = entry.Weather[0].Description
		}
		weekend = append(weekend, day)

		if len(weekend) == 2 {
			break
		}
	}

	return weekend
}
