package repository

import (
	"context"
	"database/sql"
	"time"

	"solarwatch/internal/models"

	"github.com/google/uuid"
)

type ChatSQLite struct {
	db *sql.DB
}

func NewChatSQLite(db *sql.DB) *ChatSQLite { return &ChatSQLite{db: db} }

var _ ChatRepo = (*ChatSQLite)(nil)

const (
	insertChatSQL = `
		INSERT INTO chat_messages (id, session_id, role, content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	// Newest N rows, re-ordered ascending so history replays oldest first.
	selectChatHistorySQL = `
		SELECT id, session_id, role, content, created_at FROM (
			SELECT id, session_id, role, content, created_at
			FROM chat_messages WHERE session_id = ?
			ORDER BY created_at DESC LIMIT ?
		) ORDER BY created_at ASC
	`

	deleteChatSessionSQL = `DELETE FROM chat_messages WHERE session_id = ?`
)

// Append stores one conversation turn. Generates ID/CreatedAt when empty.
func (r *ChatSQLite) Append(ctx context.Context, m models.ChatMessage) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	} else {
		m.CreatedAt = m.CreatedAt.UTC()
	}
	_, err := r.db.ExecContext(ctx, insertChatSQL,
		m.ID,
		m.SessionID,
		m.Role,
		m.Content,
		m.CreatedAt.Format("2006-01-02 15:04:05"),
	)
	return err
}

// History returns up to limit most recent messages for a session,
// ordered oldest first.
func (r *ChatSQLite) History(ctx context.Context, sessionID string, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, selectChatHistorySQL, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.ChatMessage, 0, limit)
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.CreatedAt = m.CreatedAt.UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}

// Clear removes all stored messages of a session.
func (r *ChatSQLite) Clear(ctx context.Context, sessionID string) error {
	_, err := r.db.ExecContext(ctx, deleteChatSessionSQL, sessionID)
	return err
}
