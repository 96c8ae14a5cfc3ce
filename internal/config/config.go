package config

import (
	"fmt"
	"os"
)

// Config holds the configuration for the application.
type Config struct {
	LLMProvider  string // "gemini" or "groq"
	GeminiAPIKey string
	GroqAPIKey   string

	// Weather (optional; planning degrades gracefully without a forecast)
	OpenWeatherAPIKey string
	DefaultCity       string

	DBPath string
	Port   string

	// Telegram Config (required only for the bot binary)
	TelegramBotToken string
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}
	if provider != "gemini" && provider != "groq" {
		return nil, fmt.Errorf("LLM_PROVIDER must be \"gemini\" or \"groq\", got %q", provider)
	}

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	groqAPIKey := os.Getenv("GROQ_API_KEY")
	if provider == "gemini" && geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if provider == "groq" && groqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable not set")
	}

	city := os.Getenv("DEFAULT_CITY")
	if city == "" {
		city = "Mumbai"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data/weekend-planner.db"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		LLMProvider:       provider,
		GeminiAPIKey:      geminiAPIKey,
		GroqAPIKey:        groqAPIKey,
		OpenWeatherAPIKey: os.Getenv("OPENWEATHER_API_KEY"),
		DefaultCity:       city,
		DBPath:            dbPath,
		Port:              port,
		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
	}, nil
}
