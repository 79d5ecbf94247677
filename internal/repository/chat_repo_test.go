package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"solarwatch/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newChatMock(t *testing.T) (*ChatSQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewChatSQLite(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestChatSQLite_Append(t *testing.T) {
	createdAt := time.Date(2026, 8, 20, 11, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := newChatMock(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(insertChatSQL)).
			WithArgs("m-1", "ops-console", models.RoleUser, "why is P003 down?", "2026-08-20 11:00:00").
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Append(context.Background(), models.ChatMessage{
			ID:        "m-1",
			SessionID: "ops-console",
			Role:      models.RoleUser,
			Content:   "why is P003 down?",
			CreatedAt: createdAt,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("generates id and created_at when empty", func(t *testing.T) {
		repo, mock, cleanup := newChatMock(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(insertChatSQL)).
			WithArgs(sqlmock.AnyArg(), "ops-console", models.RoleModel, "checking", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Append(context.Background(), models.ChatMessage{
			SessionID: "ops-console",
			Role:      models.RoleModel,
			Content:   "checking",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock, cleanup := newChatMock(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(insertChatSQL)).
			WillReturnError(errors.New("db down"))

		err := repo.Append(context.Background(), models.ChatMessage{SessionID: "s", Role: models.RoleUser, Content: "x"})
		if err == nil {
			t.Fatalf("expected error, got nil")
		}
	})
}

func TestChatSQLite_History(t *testing.T) {
	t0 := time.Date(2026, 8, 20, 11, 0, 0, 0, time.UTC)

	t.Run("returns rows oldest first with explicit limit", func(t *testing.T) {
		repo, mock, cleanup := newChatMock(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "session_id", "role", "content", "created_at"}).
			AddRow("m-1", "ops-console", models.RoleUser, "hello", t0).
			AddRow("m-2", "ops-console", models.RoleModel, "hi there", t0.Add(time.Minute))
		mock.ExpectQuery(regexp.QuoteMeta(selectChatHistorySQL)).
			WithArgs("ops-console", 10).
			WillReturnRows(rows)

		msgs, err := repo.History(context.Background(), "ops-console", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(msgs) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(msgs))
		}
		if msgs[0].Role != models.RoleUser || msgs[1].Role != models.RoleModel {
			t.Fatalf("unexpected roles: %+v", msgs)
		}
	})

	t.Run("defaults limit when non-positive", func(t *testing.T) {
		repo, mock, cleanup := newChatMock(t)
		defer cleanup()

		mock.ExpectQuery(regexp.QuoteMeta(selectChatHistorySQL)).
			WithArgs("ops-console", 50).
			WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "role", "content", "created_at"}))

		msgs, err := repo.History(context.Background(), "ops-console", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(msgs) != 0 {
			t.Fatalf("expected no messages, got %d", len(msgs))
		}
	})
}

func TestChatSQLite_Clear(t *testing.T) {
	repo, mock, cleanup := newChatMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(deleteChatSessionSQL)).
		WithArgs("ops-console").
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.Clear(context.Background(), "ops-console"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
