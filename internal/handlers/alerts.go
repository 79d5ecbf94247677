package handlers

import (
	"net/http"
	"strconv"

	"solarwatch/internal/service"

	"github.com/gin-gonic/gin"
)

// Request DTO for raising an alert by hand.
type createAlertRequest struct {
	PlantID string `json:"plant_id" binding:"required"`
	Level   string `json:"level" binding:"required"` // Critical | Warning | Information
	Title   string `json:"title" binding:"required"`
	Message string `json:"message"`
}

// CreateAlertRequest is an exported model for Swagger docs of the create payload.
type CreateAlertRequest struct {
	PlantID string `json:"plant_id" example:"plant-001"`
	// Allowed: Critical, Warning, Information
	Level   string `json:"level" example:"Warning"`
	Title   string `json:"title" example:"Inverter temperature high"`
	Message string `json:"message" example:"Inverter 2 reports 78C"`
}

// @Summary      List active alerts
// @Tags         alerts
// @Produce      json
// @Param        plant_id  query  string  false  "Filter by plant"
// @Param        level     query  string  false  "Filter by level"  Enums(Critical,Warning,Information)
// @Success      200  {object}  map[string]interface{}  "count, alerts"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/alerts [get]
// @Security     BearerAuth
func (h *Handler) listActiveAlerts(c *gin.Context) {
	alerts, err := h.services.Alerts.Active(c.Request.Context(), service.AlertFilter{
		PlantID: c.Query("plant_id"),
		Level:   c.Query("level"),
	})
	if err != nil {
		h.serviceError(c, err, "alerts_active_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(alerts),
		"alerts": alerts,
	})
}

// @Summary      List alert history
// @Description  Acknowledged alerts from the last N days (default 30).
// @Tags         alerts
// @Produce      json
// @Param        plant_id  query  string  false  "Filter by plant"
// @Param        level     query  string  false  "Filter by level"  Enums(Critical,Warning,Information)
// @Param        days      query  int     false  "Window in days"
// @Success      200  {object}  map[string]interface{}  "count, alerts"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/alerts/history [get]
// @Security     BearerAuth
func (h *Handler) listAlertHistory(c *gin.Context) {
	days := 0
	if qs := c.Query("days"); qs != "" {
		v, err := strconv.Atoi(qs)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'days': must be a non-negative integer"})
			return
		}
		days = v
	}

	alerts, err := h.services.Alerts.History(c.Request.Context(), service.AlertFilter{
		PlantID: c.Query("plant_id"),
		Level:   c.Query("level"),
	}, days)
	if err != nil {
		h.serviceError(c, err, "alerts_history_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(alerts),
		"alerts": alerts,
	})
}

// @Summary      Create alert
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        body  body  CreateAlertRequest  true  "Alert payload"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/alerts [post]
// @Security     BearerAuth
func (h *Handler) createAlert(c *gin.Context) {
	var req createAlertRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	alert, err := h.services.Alerts.Create(c.Request.Context(), req.PlantID, req.Level, req.Title, req.Message)
	if err != nil {
		h.serviceError(c, err, "alert_create_failed", "plant_id", req.PlantID)
		return
	}
	c.JSON(http.StatusCreated, alert)
}

// @Summary      Acknowledge alert
// @Description  Moves an active alert to history. Unknown or already acknowledged ids return 404.
// @Tags         alerts
// @Produce      json
// @Param        id  path  string  true  "Alert ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/alerts/{id}/ack [post]
// @Security     BearerAuth
func (h *Handler) ackAlert(c *gin.Context) {
	if err := h.services.Alerts.Acknowledge(c.Request.Context(), c.Param("id")); err != nil {
		h.serviceError(c, err, "alert_ack_failed", "alert_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "acknowledged"})
}
