package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"weekend-planner/internal/catalog"
	"weekend-planner/internal/config"
	"weekend-planner/internal/database"
	"weekend-planner/internal/metrics"
	"weekend-planner/internal/plans"
	"weekend-planner/internal/telegram"
)

var errMissingBotToken = errors.New("TELEGRAM_BOT_TOKEN is required")

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		Run:   runBot,
	})
}

func runBot(cmd *cobra.Command, args []string) {
	cfg, err := config.NewFromEnv()
	if err != nil {
		exitErr("load config", err)
	}
	if cfg.TelegramBotToken == "" {
		exitErr("load config", errMissingBotToken)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	db, err := database.NewDB(cfg.DBPath)
	if err != nil {
		exitErr("open database", err)
	}
	defer db.Close()

	catalogRepo := catalog.NewRepository(db.SQL)
	if _, err := catalogRepo.SeedDefaults(cmd.Context()); err != nil {
		exitErr("seed catalog", err)
	}

	asst, closer, err := newAssistant(context.Background(), cfg)
	if err != nil {
		exitErr("init language model", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	var forecasts telegram.ForecastProvider
	if w := newForecastProvider(cfg); w != nil {
		forecasts = w
	}

	bot, err := telegram.NewBot(cfg, catalogRepo, plans.NewRepository(db.SQL), forecasts, asst, metrics.NewStore(db.SQL))
	if err != nil {
		exitErr("init bot", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil && ctx.Err() == nil {
		exitErr("bot stopped", err)
	}
}
