// Package telegram runs the planner as a long-polling Telegram bot.
package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"weekend-planner/internal/assistant"
	"weekend-planner/internal/catalog"
	"weekend-planner/internal/config"
	"weekend-planner/internal/engine"
	"weekend-planner/internal/metrics"
	"weekend-planner/internal/plans"
)

// ForecastProvider fetches the weekend forecast for a city.
type ForecastProvider interface {
	WeekendForecast(ctx context.Context, city string) ([]engine.WeatherDay, error)
}

// WeekendAssistant generates a weekend from a natural-language request.
type WeekendAssistant interface {
	Plan(ctx context.Context, req assistant.Request) (assistant.Result, error)
}

// Bot wraps the Telegram API and the planning components.
type Bot struct {
	api          *tgbotapi.BotAPI
	catalog      *catalog.Repository
	plans        *plans.Repository
	forecasts    ForecastProvider
	assistant    WeekendAssistant
	metricsStore *metrics.Store
	cfg          *config.Config
}

// NewBot initializes the Telegram bot.
func NewBot(cfg *config.Config, catalogRepo *catalog.Repository, planRepo *plans.Repository,
	forecasts ForecastProvider, asst WeekendAssistant, store *metrics.Store) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:          api,
		catalog:      catalogRepo,
		plans:        planRepo,
		forecasts:    forecasts,
		assistant:    asst,
		metricsStore: store,
		cfg:          cfg,
	}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			go b.processMessage(update.Message)
		}
	}
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start", "help":
		b.reply(msg.Chat.ID, helpText)
	case "suggest":
		b.handleSuggest(msg)
	case "autocomplete":
		b.handleAutoComplete(msg)
	case "plan":
		b.handlePlan(msg)
	case "weather":
		b.handleWeather(msg)
	default:
		// Bare text counts as a planning request.
		if strings.TrimSpace(msg.Text) != "" && b.assistant != nil {
			b.handlePlan(msg)
			return
		}
		b.reply(msg.Chat.ID, helpText)
	}
}

const helpText = `👋 *Weekend Planner*

/suggest [plan-id] - activity ideas for a stored plan, or an empty weekend
/autocomplete <lazy|adventurous|family> - generate a themed weekend
/plan <request> - describe your ideal weekend in plain words
/weather [city] - weekend forecast`

func (b *Bot) handleSuggest(msg *tgbotapi.Message) {
	ctx := context.Background()
	activities, err := b.catalog.List(ctx, catalog.Filter{})
	if err != nil {
		b.replyError(msg.Chat.ID, err)
		return
	}

	var plan engine.WeekendPlan
	if planID := strings.TrimSpace(msg.CommandArguments()); planID != "" {
		rec, err := b.plans.Get(ctx, planID)
		if err != nil {
			b.reply(msg.Chat.ID, fmt.Sprintf("No stored plan with id `%s`.", planID))
			return
		}
		plan = rec.Plan
	}

	suggestions := engine.Suggest(plan, activities)
	if len(suggestions) == 0 {
		b.reply(msg.Chat.ID, "The plan already covers everything in the catalog.")
		return
	}

	var sb strings.Builder
	sb.WriteString("💡 *Suggestions*\n\n")
	for _, s := range suggestions {
		sb.WriteString(fmt.Sprintf("• *%s* (%s, %s)\n_%s_\n\n", s.Activity.Name, s.Activity.Category, s.Activity.Mood, s.Activity.Description))
	}
	b.reply(msg.Chat.ID, sb.String())
}

func (b *Bot) handleAutoComplete(msg *tgbotapi.Message) {
	theme := engine.Theme(strings.TrimSpace(msg.CommandArguments()))
	if theme == "" {
		b.reply(msg.Chat.ID, "Usage: /autocomplete <lazy|adventurous|family>")
		return
	}

	ctx := context.Background()
	activities, err := b.catalog.List(ctx, catalog.Filter{})
	if err != nil {
		b.replyError(msg.Chat.ID, err)
		return
	}

	weekend := engine.AutoComplete(theme, activities, b.weekendForecast(ctx), nil)
	if len(weekend.Saturday)+len(weekend.Sunday) == 0 {
		b.reply(msg.Chat.ID, fmt.Sprintf("No activities matched the *%s* theme. Try lazy, adventurous or family.", theme))
		return
	}

	b.reply(msg.Chat.ID, formatWeekendMarkdown(weekend.Saturday, weekend.Sunday))
}

func (b *Bot) handlePlan(msg *tgbotapi.Message) {
	if b.assistant == nil {
		b.reply(msg.Chat.ID, "No language model is configured.")
		return
	}

	request := strings.TrimSpace(msg.CommandArguments())
	if request == "" {
		request = strings.TrimSpace(msg.Text)
	}
	if request == "" {
		b.reply(msg.Chat.ID, "Usage: /plan <describe your ideal weekend>")
		return
	}

	statusMsg := tgbotapi.NewMessage(msg.Chat.ID, "🗓 *Thinking...*\n(Matching your request against the catalog)")
	statusMsg.ParseMode = "Markdown"
	sent, err := b.api.Send(statusMsg)
	if err != nil {
		log.Printf("Failed to send initial reply: %v", err)
		return
	}

	ctx := context.Background()
	activities, err := b.catalog.List(ctx, catalog.Filter{})
	if err != nil {
		b.editWithError(msg.Chat.ID, sent.MessageID, err)
		return
	}

	result, err := b.assistant.Plan(ctx, assistant.Request{
		Prompt:     request,
		Activities: activities,
		Forecast:   b.weekendForecast(ctx),
	})
	if b.metricsStore != nil {
		if mErr := b.metricsStore.RecordMeta(result.Meta); mErr != nil {
			log.Printf("failed to record assistant metrics: %v", mErr)
		}
	}
	if err != nil {
		log.Printf("Error generating weekend: %v", err)
		b.editWithError(msg.Chat.ID, sent.MessageID, err)
		return
	}

	text := formatWeekendMarkdown(result.Weekend.Saturday, result.Weekend.Sunday)
	if result.Weekend.Insights.Reasoning != "" {
		text += fmt.Sprintf("\n🧠 _%s_", result.Weekend.Insights.Reasoning)
	}
	if result.Weekend.Insights.WeatherConsiderations != "" {
		text += fmt.Sprintf("\n🌦 _%s_", result.Weekend.Insights.WeatherConsiderations)
	}

	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sent.MessageID, text)
	edit.ParseMode = "Markdown"
	b.api.Send(edit)
}

func (b *Bot) handleWeather(msg *tgbotapi.Message) {
	if b.forecasts == nil {
		b.reply(msg.Chat.ID, "No weather provider is configured.")
		return
	}

	city := strings.TrimSpace(msg.CommandArguments())
	if city == "" {
		city = b.cfg.DefaultCity
	}

	forecast, err := b.forecasts.WeekendForecast(context.Background(), city)
	if err != nil {
		b.replyError(msg.Chat.ID, err)
		return
	}
	if len(forecast) == 0 {
		b.reply(msg.Chat.ID, fmt.Sprintf("No weekend forecast available for *%s* yet.", city))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🌦 *Weekend in %s*\n\n", city))
	for _, day := range forecast {
		sb.WriteString(fmt.Sprintf("*%s*: %.0f°C, %s\n", day.Day, day.TempCelsius, day.Description))
	}
	b.reply(msg.Chat.ID, sb.String())
}

// weekendForecast fetches the forecast for the default city, degrading to nil
// on any failure.
func (b *Bot) weekendForecast(ctx context.Context) []engine.WeatherDay {
	if b.forecasts == nil {
		return nil
	}
	forecast, err := b.forecasts.WeekendForecast(ctx, b.cfg.DefaultCity)
	if err != nil {
		log.Printf("forecast unavailable: %v", err)
		return nil
	}
	return forecast
}

func formatWeekendMarkdown(saturday, sunday engine.DayPlan) string {
	var sb strings.Builder
	sb.WriteString("📅 *Your Weekend*\n\n")

	formatDay := func(name string, day engine.DayPlan) {
		sb.WriteString(fmt.Sprintf("*%s*\n", name))
		if len(day) == 0 {
			sb.WriteString("_free day_\n")
		}
		for _, item := range day {
			sb.WriteString(fmt.Sprintf("• %s — %s (%gh)\n", item.StartTime, item.Activity.Name, item.Activity.DurationHours))
			if item.Notes != "" {
				sb.WriteString(fmt.Sprintf("_%s_\n", item.Notes))
			}
		}
		sb.WriteString("\n")
	}

	formatDay("Saturday", saturday)
	formatDay("Sunday", sunday)
	return sb.String()
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	b.api.Send(msg)
}

func (b *Bot) replyError(chatID int64, err error) {
	safeErr := strings.ReplaceAll(err.Error(), "`", "'")
	b.reply(chatID, fmt.Sprintf("❌ *Error:*\n```\n%v\n```", safeErr))
}

func (b *Bot) editWithError(chatID int64, messageID int, err error) {
	safeErr := strings.ReplaceAll(err.Error(), "`", "'")
	edit := tgbotapi.NewEditMessageText(chatID, messageID, fmt.Sprintf("❌ *Error:*\n```\n%v\n```", safeErr))
	edit.ParseMode = "Markdown"
	b.api.Send(edit)
}
