package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"weekend-planner/internal/plans"
)

func init() {
	plansCmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage stored weekend plans",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored plans",
		Run:   runPlansList,
	}
	listCmd.Flags().Bool("ids-only", false, "Only output plan IDs")

	plansCmd.AddCommand(listCmd)
	plansCmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a stored plan",
		Args:  cobra.ExactArgs(1),
		Run:   runPlansShow,
	})
	plansCmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a stored plan",
		Args:  cobra.ExactArgs(1),
		Run:   runPlansRm,
	})

	RootCmd.AddCommand(plansCmd)
}

func runPlansList(cmd *cobra.Command, args []string) {
	idsOnly, _ := cmd.Flags().GetBool("ids-only")

	db, err := openDB()
	if err != nil {
		exitErr("open database", err)
	}
	defer db.Close()

	records, err := plans.NewRepository(db.SQL).List(cmd.Context())
	if err != nil {
		exitErr("list plans", err)
	}

	if idsOnly {
		for _, rec := range records {
			fmt.Println(rec.Plan.ID)
		}
		return
	}

	b, _ := json.MarshalIndent(records, "", "  ")
	fmt.Println(string(b))
}

func runPlansShow(cmd *cobra.Command, args []string) {
	db, err := openDB()
	if err != nil {
		exitErr("open database", err)
	}
	defer db.Close()

	rec, err := plans.NewRepository(db.SQL).Get(cmd.Context(), args[0])
	if err != nil {
		exitErr(fmt.Sprintf("load plan %s", args[0]), err)
	}

	b, _ := json.MarshalIndent(rec, "", "  ")
	fmt.Println(string(b))
}

func runPlansRm(cmd *cobra.Command, args []string) {
	db, err := openDB()
	if err != nil {
		exitErr("open database", err)
	}
	defer db.Close()

	if err := plans.NewRepository(db.SQL).Delete(cmd.Context(), args[0]); err != nil {
		exitErr(fmt.Sprintf("delete plan %s", args[0]), err)
	}
	fmt.Printf("deleted %s\n", args[0])
}
