package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"weekend-planner/internal/metrics"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show language model usage",
		Run:   runStats,
	}

	cmd.Flags().Int("days", 7, "Number of days to report")
	cmd.Flags().Int("cleanup", 0, "Delete metrics older than N days before reporting")

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	days, _ := cmd.Flags().GetInt("days")
	cleanup, _ := cmd.Flags().GetInt("cleanup")

	db, err := openDB()
	if err != nil {
		exitErr("open database", err)
	}
	defer db.Close()

	store := metrics.NewStore(db.SQL)

	if cleanup > 0 {
		removed, err := store.Cleanup(cleanup)
		if err != nil {
			exitErr("cleanup", err)
		}
		fmt.Printf("removed %d old metric rows\n", removed)
	}

	usage, err := store.GetDailyUsage(days)
	if err != nil {
		exitErr("load usage", err)
	}

	if len(usage) == 0 {
		fmt.Println("no usage recorded")
		return
	}
	for _, d := range usage {
		fmt.Printf("%s  prompt=%d completion=%d executions=%d\n", d.Date, d.TotalPrompt, d.TotalCompletion, d.TotalExecution)
	}
}
