package models

import "time"

// Chat message roles. Matches the roles the Gemini API expects.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"` // user | model
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
