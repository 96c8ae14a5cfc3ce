package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"weekend-planner/internal/catalog"
	"weekend-planner/internal/engine"
	"weekend-planner/internal/plans"
)

func init() {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest activities for a plan",
		Run:   runSuggest,
	}

	cmd.Flags().StringP("plan", "p", "", "Plan ID to suggest against (default: empty plan)")
	RootCmd.AddCommand(cmd)
}

func runSuggest(cmd *cobra.Command, args []string) {
	planID, _ := cmd.Flags().GetString("plan")

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

	var plan engine.WeekendPlan
	if planID != "" {
		rec, err := plans.NewRepository(db.SQL).Get(cmd.Context(), planID)
		if err != nil {
			exitErr(fmt.Sprintf("load plan %s", planID), err)
		}
		plan = rec.Plan
	}

	suggestions := engine.Suggest(plan, activities)
	b, _ := json.MarshalIndent(suggestions, "", "  ")
	fmt.Println(string(b))
}
