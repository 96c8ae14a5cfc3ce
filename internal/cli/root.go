// Package cli implements the weekend-planner CLI commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weekend-planner/internal/assistant"
	"weekend-planner/internal/config"
	"weekend-planner/internal/database"
	"weekend-planner/internal/llm"
	"weekend-planner/internal/weather"
)

var dbPath string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "weekend-planner",
	Short: "Plan your perfect weekend",
	Long:  "Weekend activity planner: conflict-checked schedules, weather-aware suggestions and LLM-assisted planning. SQLite-backed, single binary.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $DB_PATH or data/weekend-planner.db)")
}

func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("DB_PATH"); env != "" {
		return env
	}
	return "data/weekend-planner.db"
}

func openDB() (*database.DB, error) {
	return database.NewDB(getDBPath())
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}

// newForecastProvider returns a weather client, or nil when no API key is
// configured.
func newForecastProvider(cfg *config.Config) *weather.Client {
	if cfg.OpenWeatherAPIKey == "" {
		return nil
	}
	return weather.NewClient(cfg)
}

// newAssistant builds the configured text generator and wraps it in an
// Assistant. The returned closer is nil for providers without resources to
// release.
func newAssistant(ctx context.Context, cfg *config.Config) (*assistant.Assistant, llm.Closer, error) {
	var textGen llm.TextGenerator
	switch cfg.LLMProvider {
	case "groq":
		textGen = llm.NewGroqClient(cfg)
	default:
		var err error
		textGen, err = llm.NewGeminiClient(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to init gemini: %w", err)
		}
	}

	closer, _ := textGen.(llm.Closer)
	return assistant.New(textGen), closer, nil
}
