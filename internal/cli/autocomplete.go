package cli

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"weekend-planner/internal/catalog"
	"weekend-planner/internal/config"
	"weekend-planner/internal/engine"
	"weekend-planner/internal/plans"
)

func init() {
	cmd := &cobra.Command{
		Use:   "autocomplete <lazy|adventurous|family>",
		Short: "Generate a themed weekend",
		Args:  cobra.ExactArgs(1),
		Run:   runAutoComplete,
	}

	cmd.Flags().String("city", "", "City for the weekend forecast (default: $DEFAULT_CITY)")
	cmd.Flags().Bool("weather", false, "Rank activities by the weekend forecast")
	cmd.Flags().Int64("seed", 0, "Random seed for reproducible output")
	cmd.Flags().Bool("save", false, "Save the generated weekend as a plan")

	RootCmd.AddCommand(cmd)
}

func runAutoComplete(cmd *cobra.Command, args []string) {
	theme := engine.Theme(args[0])
	city, _ := cmd.Flags().GetString("city")
	useWeather, _ := cmd.Flags().GetBool("weather")
	seed, _ := cmd.Flags().GetInt64("seed")
	save, _ := cmd.Flags().GetBool("save")

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
	if useWeather {
		cfg, err := config.NewFromEnv()
		if err == nil {
			if w := newForecastProvider(cfg); w != nil {
				if city == "" {
					city = cfg.DefaultCity
				}
				forecast, _ = w.WeekendForecast(cmd.Context(), city)
			}
		}
	}

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	weekend := engine.AutoComplete(theme, activities, forecast, rng)

	if save {
		plan := engine.WeekendPlan{
			Title:    fmt.Sprintf("%s weekend", theme),
			Theme:    theme,
			Saturday: weekend.Saturday,
			Sunday:   weekend.Sunday,
		}
		saved, err := plans.NewRepository(db.SQL).Save(cmd.Context(), plan)
		if err != nil {
			exitErr("save plan", err)
		}
		fmt.Printf("saved plan %s\n", saved.ID)
	}

	b, _ := json.MarshalIndent(weekend, "", "  ")
	fmt.Println(string(b))
}
