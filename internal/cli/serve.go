package cli

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"weekend-planner/internal/catalog"
	"weekend-planner/internal/config"
	"weekend-planner/internal/database"
	"weekend-planner/internal/metrics"
	"weekend-planner/internal/plans"
	"weekend-planner/internal/server"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Run:   runServe,
	}

	cmd.Flags().StringP("port", "p", "", "Port to listen on (default: $PORT or 8080)")
	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := config.NewFromEnv()
	if err != nil {
		exitErr("load config", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Port = port
	}

	db, err := database.NewDB(cfg.DBPath)
	if err != nil {
		exitErr("open database", err)
	}
	defer db.Close()

	catalogRepo := catalog.NewRepository(db.SQL)
	if inserted, err := catalogRepo.SeedDefaults(cmd.Context()); err != nil {
		exitErr("seed catalog", err)
	} else if inserted > 0 {
		log.Printf("Seeded %d default activities", inserted)
	}

	asst, closer, err := newAssistant(context.Background(), cfg)
	if err != nil {
		exitErr("init language model", err)
	}
	if closer != nil {
		defer closer.Close()
	}

	// Assign through a nil check so a missing weather key yields a nil
	// interface, not a typed nil.
	var forecasts server.ForecastProvider
	if w := newForecastProvider(cfg); w != nil {
		forecasts = w
	}

	srv := server.NewServer(cfg, catalogRepo, plans.NewRepository(db.SQL),
		forecasts, asst, metrics.NewStore(db.SQL))
	if err := srv.Run(cfg.Port); err != nil {
		exitErr("serve", err)
	}
}
