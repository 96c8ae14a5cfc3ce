package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"weekend-planner/internal/catalog"
)

func init() {
	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List catalog activities",
		Run:   runActivities,
	}

	cmd.Flags().StringP("category", "c", "", "Filter by category (food, outdoor, entertainment, wellness, social, creative)")
	cmd.Flags().StringP("mood", "m", "", "Filter by mood (happy, relaxed, energetic)")
	cmd.Flags().Bool("names-only", false, "Only output activity names")

	RootCmd.AddCommand(cmd)
}

func runActivities(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")
	mood, _ := cmd.Flags().GetString("mood")
	namesOnly, _ := cmd.Flags().GetBool("names-only")

	db, err := openDB()
	if err != nil {
		exitErr("open database", err)
	}
	defer db.Close()

	repo := catalog.NewRepository(db.SQL)
	if _, err := repo.SeedDefaults(cmd.Context()); err != nil {
		exitErr("seed", err)
	}

	activities, err := repo.List(cmd.Context(), catalog.Filter{
		Category: catalog.Category(category),
		Mood:     catalog.Mood(mood),
	})
	if err != nil {
		exitErr("list activities", err)
	}

	if namesOnly {
		for _, a := range activities {
			fmt.Println(a.Name)
		}
		return
	}

	b, _ := json.MarshalIndent(activities, "", "  ")
	fmt.Println(string(b))
}
