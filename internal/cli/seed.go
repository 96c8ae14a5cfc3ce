package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"weekend-planner/internal/catalog"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Seed the activity catalog with the default activities",
		Run:   runSeed,
	})
}

func runSeed(cmd *cobra.Command, args []string) {
	db, err := openDB()
	if err != nil {
		exitErr("open database", err)
	}
	defer db.Close()

	inserted, err := catalog.NewRepository(db.SQL).SeedDefaults(cmd.Context())
	if err != nil {
		exitErr("seed", err)
	}

	if inserted == 0 {
		fmt.Println("catalog already seeded")
		return
	}
	fmt.Printf("seeded %d activities\n", inserted)
}
