package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weekend-planner/internal/config"
)

// nextWeekday returns the first occurrence of weekday strictly after from.
func nextWeekday(from time.Time, weekday time.Weekday) time.Time {
	t := from.AddDate(0, 0, 1)
	for t.Weekday() != weekday {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

func TestWeekendForecast(t *testing.T) {
	base := time.Date(2024, 6, 5, 12, 0, 0, 0, time.Local) // a Wednesday
	saturday := nextWeekday(base, time.Saturday)
	sunday := nextWeekday(base, time.Sunday)

	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("appid") != "test_key" {
				t.Errorf("Expected appid 'test_key', got '%s'", r.URL.Query().Get("appid"))
			}
			if r.URL.Query().Get("q") != "Lisbon" {
				t.Errorf("Expected city 'Lisbon', got '%s'", r.URL.Query().Get("q"))
			}
			if r.URL.Query().Get("units") != "metric" {
				t.Errorf("Expected metric units, got '%s'", r.URL.Query().Get("units"))
			}

			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{
				"list": [
					{"dt": %d, "main": {"temp": 21.5, "humidity": 40}, "weather": [{"main": "Clear", "description": "clear sky"}], "wind": {"speed": 3.1}},
					{"dt": %d, "main": {"temp": 22.0, "humidity": 45}, "weather": [{"main": "Clouds", "description": "few clouds"}], "wind": {"speed": 2.0}},
					{"dt": %d, "main": {"temp": 18.0, "humidity": 80}, "weather": [{"main": "Rain", "description": "light rain"}], "wind": {"speed": 5.4}}
				]
			}`, saturday.Unix(), saturday.Add(3*time.Hour).Unix(), sunday.Unix())
		}))
		defer server.Close()

		client := NewClient(&config.Config{OpenWeatherAPIKey: "test_key"})
		client.baseURL = server.URL
		client.now = func() time.Time { return base }

		forecast, err := client.WeekendForecast(context.Background(), "Lisbon")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if len(forecast) != 2 {
			t.Fatalf("Expected 2 weekend days, got %d", len(forecast))
		}
		if forecast[0].Day != "Saturday" || forecast[1].Day != "Sunday" {
			t.Errorf("Expected Saturday then Sunday, got %s then %s", forecast[0].Day, forecast[1].Day)
		}
		if forecast[0].TempCelsius != 21.5 {
			t.Errorf("Expected first Saturday entry (21.5°C), got %v", forecast[0].TempCelsius)
		}
		if forecast[1].Condition != "Rain" {
			t.Errorf("Expected Sunday condition 'Rain', got %q", forecast[1].Condition)
		}
	})

	t.Run("SkipsPastEntries", func(t *testing.T) {
		past := base.AddDate(0, 0, -3) // previous Sunday
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{"list": [
				{"dt": %d, "main": {"temp": 10, "humidity": 50}, "weather": [{"main": "Clear", "description": ""}], "wind": {"speed": 1}},
				{"dt": %d, "main": {"temp": 20, "humidity": 50}, "weather": [{"main": "Clear", "description": ""}], "wind": {"speed": 1}}
			]}`, past.Unix(), saturday.Unix())
		}))
		defer server.Close()

		client := NewClient(&config.Config{OpenWeatherAPIKey: "test_key"})
		client.baseURL = server.URL
		client.now = func() time.Time { return base }

		forecast, err := client.WeekendForecast(context.Background(), "Lisbon")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(forecast) != 1 || forecast[0].TempCelsius != 20 {
			t.Errorf("Expected only the upcoming Saturday, got %+v", forecast)
		}
	})

	t.Run("ServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(&config.Config{OpenWeatherAPIKey: "test_key"})
		client.baseURL = server.URL

		if _, err := client.WeekendForecast(context.Background(), "Lisbon"); err == nil {
			t.Fatal("Expected an error for a 500 response, got nil")
		}
	})

	t.Run("MissingAPIKey", func(t *testing.T) {
		client := NewClient(&config.Config{})
		if _, err := client.WeekendForecast(context.Background(), "Lisbon"); err == nil {
			t.Fatal("Expected an error when no API key is configured, got nil")
		}
	})
}
