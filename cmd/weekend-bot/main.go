package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"weekend-planner/internal/assistant"
	"weekend-planner/internal/catalog"
	"weekend-planner/internal/config"
	"weekend-planner/internal/database"
	"weekend-planner/internal/llm"
	"weekend-planner/internal/metrics"
	"weekend-planner/internal/plans"
	"weekend-planner/internal/telegram"
	"weekend-planner/internal/weather"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}

	ctx := context.Background()

	var textGen llm.TextGenerator
	switch cfg.LLMProvider {
	case "groq":
		textGen = llm.NewGroqClient(cfg)
	default:
		geminiClient, err := llm.NewGeminiClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		defer geminiClient.(llm.Closer).Close()
		textGen = geminiClient
	}

	db, err := database.NewDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	catalogRepo := catalog.NewRepository(db.SQL)
	if _, err := catalogRepo.SeedDefaults(ctx); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	var forecasts telegram.ForecastProvider
	if cfg.OpenWeatherAPIKey != "" {
		forecasts = weather.NewClient(cfg)
	}

	bot, err := telegram.NewBot(cfg, catalogRepo, plans.NewRepository(db.SQL), forecasts, assistant.New(textGen), metrics.NewStore(db.SQL))
	if err != nil {
		log.Fatalf("Failed to initialize Telegram Bot: %v", err)
	}

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("Bot polling for updates")
	if err := bot.Run(runCtx); err != nil && runCtx.Err() == nil {
		log.Fatalf("Bot stopped: %v", err)
	}
	log.Println("Bot exiting")
}
