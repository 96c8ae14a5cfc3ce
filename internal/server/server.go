// Package server exposes the planner over an HTTP JSON API using gin.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"weekend-planner/internal/assistant"
	"weekend-planner/internal/catalog"
	"weekend-planner/internal/config"
	"weekend-planner/internal/engine"
	"weekend-planner/internal/metrics"
	"weekend-planner/internal/plans"
)

// ForecastProvider fetches the weekend forecast for a city. Implemented by
// the OpenWeatherMap client; failures are treated as "no forecast".
type ForecastProvider interface {
	WeekendForecast(ctx context.Context, city string) ([]engine.WeatherDay, error)
}

// WeekendAssistant generates a weekend from a natural-language request.
type WeekendAssistant interface {
	Plan(ctx context.Context, req assistant.Request) (assistant.Result, error)
}

// Server wires the planner's components behind HTTP handlers.
type Server struct {
	catalog     *catalog.Repository
	plans       *plans.Repository
	forecasts   ForecastProvider
	assistant   WeekendAssistant
	metrics     *metrics.Store
	defaultCity string
}

// NewServer creates a Server. forecasts, asst and store may be nil; the
// matching endpoints then degrade or report 503.
func NewServer(cfg *config.Config, catalogRepo *catalog.Repository, planRepo *plans.Repository,
	forecasts ForecastProvider, asst WeekendAssistant, store *metrics.Store) *Server {
	return &Server{
		catalog:     catalogRepo,
		plans:       planRepo,
		forecasts:   forecasts,
		assistant:   asst,
		metrics:     store,
		defaultCity: cfg.DefaultCity,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok", "time": time.Now()})
		})

		api.GET("/activities", s.listActivities)
		api.GET("/activities/:id", s.getActivity)

		api.GET("/plans", s.listPlans)
		api.POST("/plans", s.createPlan)
		api.GET("/plans/:id", s.getPlan)
		api.PUT("/plans/:id", s.updatePlan)
		api.DELETE("/plans/:id", s.deletePlan)

		api.POST("/conflicts", s.checkConflict)
		api.POST("/suggestions", s.suggest)
		api.POST("/autocomplete", s.autoComplete)
		api.POST("/assistant", s.assistantPlan)

		api.GET("/weather", s.weekendWeather)
	}

	return r
}

// Run starts the HTTP server on the given port.
func (s *Server) Run(port string) error {
	addr := ":" + port
	log.Printf("API listening on http://localhost%s/api", addr)
	if err := s.Router().Run(addr); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
