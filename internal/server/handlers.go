package server

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"weekend-planner/internal/assistant"
	"weekend-planner/internal/catalog"
	"weekend-planner/internal/engine"
)

func (s *Server) listActivities(c *gin.Context) {
	filter := catalog.Filter{
		Category: catalog.Category(c.Query("category")),
		Mood:     catalog.Mood(c.Query("mood")),
	}

	activities, err := s.catalog.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activities)
}

func (s *Server) getActivity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity id"})
		return
	}

	activity, err := s.catalog.GetByID(c.Request.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "activity not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, activity)
}

func (s *Server) listPlans(c *gin.Context) {
	records, err := s.plans.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (s *Server) createPlan(c *gin.Context) {
	var plan engine.WeekendPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := s.plans.Save(c.Request.Context(), plan)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (s *Server) getPlan(c *gin.Context) {
	record, err := s.plans.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

func (s *Server) updatePlan(c *gin.Context) {
	var plan engine.WeekendPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan.ID = c.Param("id")

	err := s.plans.Update(c.Request.Context(), plan)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (s *Server) deletePlan(c *gin.Context) {
	err := s.plans.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plan deleted"})
}

type conflictRequest struct {
	Day       engine.DayPlan `json:"day"`
	StartTime string         `json:"startTime"`
	Duration  float64        `json:"duration"`
}

func (s *Server) checkConflict(c *gin.Context) {
	var req conflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be positive"})
		return
	}

	c.JSON(http.StatusOK, engine.CheckConflict(req.Day, req.StartTime, req.Duration))
}

func (s *Server) suggest(c *gin.Context) {
	var plan engine.WeekendPlan
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activities, err := s.catalog.List(c.Request.Context(), catalog.Filter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": engine.Suggest(plan, activities)})
}

type autoCompleteRequest struct {
	Theme      engine.Theme `json:"theme"`
	City       string       `json:"city"`
	UseWeather bool         `json:"useWeather"`
}

func (s *Server) autoComplete(c *gin.Context) {
	var req autoCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Theme == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "theme is required"})
		return
	}

	activities, err := s.catalog.List(c.Request.Context(), catalog.Filter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	forecast := s.fetchForecast(c, req.UseWeather, req.City)
	c.JSON(http.StatusOK, engine.AutoComplete(req.Theme, activities, forecast, nil))
}

type assistantRequest struct {
	Prompt string       `json:"prompt"`
	Theme  engine.Theme `json:"theme"`
	City   string       `json:"city"`
}

func (s *Server) assistantPlan(c *gin.Context) {
	if s.assistant == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no language model configured"})
		return
	}

	var req assistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	activities, err := s.catalog.List(c.Request.Context(), catalog.Filter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := s.assistant.Plan(c.Request.Context(), assistant.Request{
		Prompt:     req.Prompt,
		Theme:      req.Theme,
		Activities: activities,
		Forecast:   s.fetchForecast(c, true, req.City),
	})
	if s.metrics != nil {
		if mErr := s.metrics.RecordMeta(result.Meta); mErr != nil {
			log.Printf("failed to record assistant metrics: %v", mErr)
		}
	}
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"saturday":           result.Weekend.Saturday,
		"sunday":             result.Weekend.Sunday,
		"insights":           result.Weekend.Insights,
		"droppedSuggestions": result.Weekend.Dropped,
	})
}

func (s *Server) weekendWeather(c *gin.Context) {
	if s.forecasts == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no weather provider configured"})
		return
	}

	city := c.Query("city")
	if city == "" {
		city = s.defaultCity
	}

	forecast, err := s.forecasts.WeekendForecast(c.Request.Context(), city)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"city": city, "forecast": forecast})
}

// fetchForecast returns the weekend forecast when a provider is configured,
// nil otherwise. Forecast failures degrade to nil rather than failing the
// request.
func (s *Server) fetchForecast(c *gin.Context, enabled bool, city string) []engine.WeatherDay {
	if !enabled || s.forecasts == nil {
		return nil
	}
	if city == "" {
		city = s.defaultCity
	}

	forecast, err := s.forecasts.WeekendForecast(c.Request.Context(), city)
	if err != nil {
		log.Printf("forecast unavailable for %q: %v", city, err)
		return nil
	}
	return forecast
}
