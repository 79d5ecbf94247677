package handlers

import (
	"net/http"

	"solarwatch/internal/models"

	"github.com/gin-gonic/gin"
)

// Request DTOs for panel record updates.
type maintenanceRequest struct {
	Kind        string  `json:"kind" binding:"required"` // Cleaning | Inspection | Repair | Replacement
	PerformedOn string  `json:"performed_on,omitempty"`  // YYYY-MM-DD, defaults to today
	Note        string  `json:"note,omitempty"`
	Technician  string  `json:"technician,omitempty"`
	Cost        float64 `json:"cost,omitempty"`
}

type problemRequest struct {
	Kind        string `json:"kind" binding:"required"`
	Severity    string `json:"severity" binding:"required"` // Low | Medium | High
	Description string `json:"description" binding:"required"`
	DetectedOn  string `json:"detected_on,omitempty"` // YYYY-MM-DD, defaults to today
}

// @Summary      List panels
// @Tags         panels
// @Produce      json
// @Param        plant_id  query  string  false  "Filter by plant"
// @Success      200  {object}  map[string]interface{}  "count, panels"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/panels [get]
// @Security     BearerAuth
func (h *Handler) listPanels(c *gin.Context) {
	panels, err := h.services.Panels.List(c.Request.Context(), c.Query("plant_id"))
	if err != nil {
		h.serviceError(c, err, "panels_list_failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(panels),
		"panels": panels,
	})
}

// @Summary      Get panel detail
// @Description  Panel record with maintenance and problem history.
// @Tags         panels
// @Produce      json
// @Param        id  path  string  true  "Panel ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/panels/{id} [get]
// @Security     BearerAuth
func (h *Handler) getPanel(c *gin.Context) {
	detail, err := h.services.Panels.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err, "panel_detail_failed", "panel_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary      Add maintenance record
// @Tags         panels
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "Panel ID"
// @Param        body  body  maintenanceRequest  true  "Maintenance payload"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/panels/{id}/maintenance [post]
// @Security     BearerAuth
func (h *Handler) addPanelMaintenance(c *gin.Context) {
	var req maintenanceRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	err := h.services.Panels.AddMaintenance(c.Request.Context(), models.PanelMaintenance{
		PanelID:     c.Param("id"),
		Kind:        req.Kind,
		PerformedOn: req.PerformedOn,
		Note:        req.Note,
		Technician:  req.Technician,
		Cost:        req.Cost,
	})
	if err != nil {
		h.serviceError(c, err, "panel_maintenance_failed", "panel_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "recorded"})
}

// @Summary      Report panel problem
// @Tags         panels
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "Panel ID"
// @Param        body  body  problemRequest  true  "Problem payload"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/panels/{id}/problems [post]
// @Security     BearerAuth
func (h *Handler) addPanelProblem(c *gin.Context) {
	var req problemRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	err := h.services.Panels.AddProblem(c.Request.Context(), models.PanelProblem{
		PanelID:     c.Param("id"),
		Kind:        req.Kind,
		Severity:    req.Severity,
		Description: req.Description,
		DetectedOn:  req.DetectedOn,
	})
	if err != nil {
		h.serviceError(c, err, "panel_problem_failed", "panel_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "recorded"})
}

// @Summary      Panel health analysis
// @Description  Asks the assistant for a diagnosis and maintenance forecast from the panel's full record.
// @Tags         panels
// @Produce      json
// @Param        id  path  string  true  "Panel ID"
// @Success      200  {object}  map[string]string  "analysis"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/panels/{id}/analysis [post]
// @Security     BearerAuth
func (h *Handler) analyzePanel(c *gin.Context) {
	analysis, err := h.services.Assistant.AnalyzePanel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.serviceError(c, err, "panel_analysis_failed", "panel_id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}
