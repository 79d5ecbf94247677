package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"solarwatch/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"

	defaultRangeDays = 7
)

// @Summary      List plants
// @Tags         plants
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, plants"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/plants [get]
// @Security     BearerAuth
func (h *Handler) listPlants(c *gin.Context) {
	plants, err := h.services.Plants.List(c.Request.Context())
	if err != nil {
		h.serviceError(c, err, "plants_list_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(plants),
		"plants": plants,
	})
}

// @Summary      Get plant details
// @Description  Plant record with its maintenance schedule.
// @Tags         plants
// @Produce      json
// @Param        id  path  string  true  "Plant ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/plants/{id} [get]
// @Security     BearerAuth
func (h *Handler) getPlant(c *gin.Context) {
	details, err := h.services.Plants.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err, "plant_details_failed", "plant_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, details)
}

// @Summary      Live plant snapshot
// @Description  Current production, targets, inverter and component statuses, hourly series, weather.
// @Tags         plants
// @Produce      json
// @Param        id  path  string  true  "Plant ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/plants/{id}/snapshot [get]
// @Security     BearerAuth
func (h *Handler) getSnapshot(c *gin.Context) {
	snap, err := h.services.Monitoring.Snapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err, "plant_snapshot_failed", "plant_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, snap)
}

// @Summary      Daily history
// @Description  Per-day production, target and efficiency over [from,to]. Date-only 'to' is treated as end-of-day inclusive.
// @Tags         plants
// @Produce      json
// @Param        id    path   string  true   "Plant ID"
// @Param        from  query  string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2026-08-01)
// @Param        to    query  string  false  "End of range. Date-only treated as end of day."  example(2026-08-31)
// @Success      200  {object}  map[string]interface{}  "count, days"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/plants/{id}/history [get]
// @Security     BearerAuth
func (h *Handler) getHistory(c *gin.Context) {
	from, to, ok := h.parseRange(c)
	if !ok {
		return
	}
	days, err := h.services.History.Range(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		h.rangeError(c, err, "history_range_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(days),
		"days":  days,
	})
}

// @Summary      Current weather at the plant
// @Tags         plants
// @Produce      json
// @Param        id  path  string  true  "Plant ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/plants/{id}/weather [get]
// @Security     BearerAuth
func (h *Handler) getWeather(c *gin.Context) {
	details, err := h.services.Plants.Details(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err, "plant_weather_failed", "plant_id", c.Param("id"))
		return
	}
	w := h.services.Weather.Current(details.Location, time.Now().UTC())
	c.JSON(http.StatusOK, w)
}

// @Summary      Hourly production chart
// @Description  Render-ready bar chart of today's energy, actual vs projected.
// @Tags         charts
// @Produce      json
// @Param        id  path  string  true  "Plant ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/plants/{id}/charts/production [get]
// @Security     BearerAuth
func (h *Handler) chartProduction(c *gin.Context) {
	cfg, err := h.services.Charts.HourlyProduction(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err, "chart_production_failed", "plant_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// @Summary      Daily comparison chart
// @Description  Production vs target bars over [from,to]; defaults to the last 7 days.
// @Tags         charts
// @Produce      json
// @Param        id    path   string  true   "Plant ID"
// @Param        from  query  string  false  "Start of range"
// @Param        to    query  string  false  "End of range"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/plants/{id}/charts/history [get]
// @Security     BearerAuth
func (h *Handler) chartHistory(c *gin.Context) {
	from, to, ok := h.parseRange(c)
	if !ok {
		return
	}
	cfg, err := h.services.Charts.DailyComparison(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		h.rangeError(c, err, "chart_history_failed")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// @Summary      Efficiency trend chart
// @Tags         charts
// @Produce      json
// @Param        id    path   string  true   "Plant ID"
// @Param        from  query  string  false  "Start of range"
// @Param        to    query  string  false  "End of range"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/plants/{id}/charts/efficiency [get]
// @Security     BearerAuth
func (h *Handler) chartEfficiency(c *gin.Context) {
	from, to, ok := h.parseRange(c)
	if !ok {
		return
	}
	cfg, err := h.services.Charts.EfficiencyTrend(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		h.rangeError(c, err, "chart_efficiency_failed")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// rangeError treats service-side range validation as a bad request.
func (h *Handler) rangeError(c *gin.Context, err error, logKey string) {
	if errors.Is(err, service.ErrInvalidRange) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.serviceError(c, err, logKey)
}

// parseRange reads optional from/to query params, defaulting to the last
// defaultRangeDays days. A date-only 'to' becomes end-of-day inclusive.
// Writes a 400 and returns ok=false on malformed input.
func (h *Handler) parseRange(c *gin.Context) (from, to time.Time, ok bool) {
	now := time.Now().UTC()
	from = now.AddDate(0, 0, -defaultRangeDays)
	to = now

	var err error
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return from, to, false
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return from, to, false
		}
		// If the user didn't include a time component, treat "to" as the end of that day.
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	if from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'from' must be <= 'to'"})
		return from, to, false
	}
	return from, to, true
}

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

func parseQueryTime(s string) (time.Time, error) {
	// Try multiple accepted formats, normalizing to UTC.
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2026-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
