package handlers

import (
	"errors"
	"net/http"

	"solarwatch/internal/logger"
	"solarwatch/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live snapshot stream (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerPlantRoutes(api)
		h.registerAlertRoutes(api)
		h.registerPanelRoutes(api)
		h.registerChatRoutes(api)
	}
}

func (h *Handler) registerPlantRoutes(api *gin.RouterGroup) {
	plants := api.Group("/plants")
	{
		plants.GET("", h.listPlants)
		plants.GET("/:id", h.getPlant)
		plants.GET("/:id/snapshot", h.getSnapshot)
		plants.GET("/:id/history", h.getHistory)
		plants.GET("/:id/weather", h.getWeather)
		plants.GET("/:id/charts/production", h.chartProduction)
		plants.GET("/:id/charts/history", h.chartHistory)
		plants.GET("/:id/charts/efficiency", h.chartEfficiency)
	}
}

func (h *Handler) registerAlertRoutes(api *gin.RouterGroup) {
	alerts := api.Group("/alerts")
	{
		alerts.GET("", h.listActiveAlerts)
		alerts.GET("/history", h.listAlertHistory)
		alerts.POST("", h.createAlert)
		alerts.POST("/:id/ack", h.ackAlert)
	}
}

func (h *Handler) registerPanelRoutes(api *gin.RouterGroup) {
	panels := api.Group("/panels")
	{
		panels.GET("", h.listPanels)
		panels.GET("/:id", h.getPanel)
		panels.POST("/:id/maintenance", h.addPanelMaintenance)
		panels.POST("/:id/problems", h.addPanelProblem)
		panels.POST("/:id/analysis", h.analyzePanel)
	}
}

func (h *Handler) registerChatRoutes(api *gin.RouterGroup) {
	chat := api.Group("/chat")
	{
		chat.POST("", h.postChat)
		chat.POST("/:session/reset", h.resetChat)
	}
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// serviceError maps domain errors onto HTTP responses. Not-found sentinels
// become 404, assistant misconfiguration becomes 503, anything unrecognized
// becomes a logged 500 with a generic message.
func (h *Handler) serviceError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrPlantNotFound),
		errors.Is(err, service.ErrPanelNotFound),
		errors.Is(err, service.ErrAlertNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAssistantUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, "internal error", logKey, err, kv...)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
