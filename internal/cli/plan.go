package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"weekend-planner/internal/assistant"
	"weekend-planner/internal/catalog"
	"weekend-planner/internal/config"
	"weekend-planner/internal/engine"
	"weekend-planner/internal/metrics"
)

func init() {
	cmd := &cobra.Command{
		Use:   "plan <request>",
		Short: "Generate a weekend from a natural-language request",
		Args:  cobra.MinimumNArgs(1),
		Run:   runPlan,
	}

	cmd.Flags().String("theme", "", "Planning theme hint (lazy, adventurous, family)")
	cmd.Flags().String("city", "", "City for the weekend forecast (default: $DEFAULT_CITY)")

	RootCmd.AddCommand(cmd)
}

func runPlan(cmd *cobra.Command, args []string) {
	request := strings.Join(args, " ")
	theme, _ := cmd.Flags().GetString("theme")
	city, _ := cmd.Flags().GetString("city")

	cfg, err := config.NewFromEnv()
	if err != nil {
		exitErr("load config", err)
	}

	db, err := openDB()
	if err != nil {
		exitErr("open database", err)
	}
	defer db.Close()

	repo := catalog.NewRepository(db.SQL)
	if _, err := repo.SeedDefaults(cmd.Context()); err != nil {
		exitErr("seed", err)
	}
	activities, err := repo.List(cmd.Context(), catalog.Filter{})
	if err != nil {
		exitErr("list activities", err)
	}

	var forecast []engine.WeatherDay
	if w := newForecastProvider(cfg); w != nil {
		if city == "" {
			city = cfg.DefaultCity
		}
		forecast, _ = w.WeekendForecast(cmd.Context(), city)
	}

	asst, closer, err := newAssistant(cmd.Context(), cfg)
	if err != nil {
		exitErr("init language model", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	result, err := asst.Plan(cmd.Context(), assistant.Request{
		Prompt:     request,
		Theme:      engine.Theme(theme),
		Activities: activities,
		Forecast:   forecast,
	})
	_ = metrics.NewStore(db.SQL).RecordMeta(result.Meta)
	if err != nil {
		exitErr("generate weekend", err)
	}

	if result.Weekend.Dropped > 0 {
		fmt.Printf("note: %d suggestion(s) matched no catalog activity\n", result.Weekend.Dropped)
	}

	b, _ := json.MarshalIndent(result.Weekend, "", "  ")
	fmt.Println(string(b))
}
