package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Request DTO for the assistant chat.
type chatRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
	PanelID   string `json:"panel_id,omitempty"` // grounds the answer in one panel's data
}

// ChatRequest is an exported model for Swagger docs of the chat payload.
type ChatRequest struct {
	SessionID string `json:"session_id" example:"ops-console"`
	Message   string `json:"message" example:"Why is panel P003 underperforming?"`
	// Optional panel whose data is included in the prompt
	PanelID string `json:"panel_id,omitempty" example:"P003"`
}

// @Summary      Ask the assistant
// @Description  Sends a message in a session; prior session messages are replayed as context. Returns the assistant's reply.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body  ChatRequest  true  "Chat payload"
// @Success      200  {object}  map[string]interface{}  "reply"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/chat [post]
// @Security     BearerAuth
func (h *Handler) postChat(c *gin.Context) {
	var req chatRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	reply, err := h.services.Assistant.Chat(c.Request.Context(), req.SessionID, req.Message, req.PanelID)
	if err != nil {
		h.serviceError(c, err, "chat_failed", "session_id", req.SessionID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// @Summary      Reset chat session
// @Tags         chat
// @Produce      json
// @Param        session  path  string  true  "Session ID"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/chat/{session}/reset [post]
// @Security     BearerAuth
func (h *Handler) resetChat(c *gin.Context) {
	if err := h.services.Assistant.Reset(c.Request.Context(), c.Param("session")); err != nil {
		h.serviceError(c, err, "chat_reset_failed", "session_id", c.Param("session"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
