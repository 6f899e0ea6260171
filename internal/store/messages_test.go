package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/devfrx/fluxa/internal/logger"
	"github.com/devfrx/fluxa/models"
)

func newTestMessageRepo(t *testing.T) (MessageRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewMessageRepository(db, logger.Nop()), mock
}

func TestMessageAdd_Success(t *testing.T) {
	repo, mock := newTestMessageRepo(t)

	mock.ExpectExec("INSERT INTO messages").
		WithArgs(int64(1), models.RoleUser, "hello", 0, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(12, 1))

	msg, err := repo.Add(context.Background(), models.Message{
		ConversationID: 1,
		Role:           models.RoleUser,
		Content:        "hello",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.ID != 12 {
		t.Errorf("expected ID=12, got %d", msg.ID)
	}
	if msg.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be stamped")
	}
}

func TestMessageAdd_InvalidRole(t *testing.T) {
	repo, _ := newTestMessageRepo(t)

	_, err := repo.Add(context.Background(), models.Message{
		ConversationID: 1,
		Role:           "bot",
		Content:        "hi",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestMessageAdd_DBError(t *testing.T) {
	repo, mock := newTestMessageRepo(t)

	mock.ExpectExec("INSERT INTO messages").
		WillReturnError(errors.New("database is locked"))

	_, err := repo.Add(context.Background(), models.Message{
		ConversationID: 1,
		Role:           models.RoleAssistant,
		Content:        "reply",
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestMessageListByConversation(t *testing.T) {
	repo, mock := newTestMessageRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "conversation_id", "role", "content", "tokens", "model", "created_at", "metadata"}).
		AddRow(1, 1, models.RoleUser, "hi", 2, nil, now.Add(-time.Minute), `{}`).
		AddRow(2, 1, models.RoleAssistant, "hello!", 3, "qwen2.5-7b-instruct", now, `{}`)
	mock.ExpectQuery("SELECT id, conversation_id, role, content, tokens, model, created_at, metadata FROM messages").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	msgs, err := repo.ListByConversation(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != models.RoleUser || msgs[1].Role != models.RoleAssistant {
		t.Errorf("unexpected roles: %q, %q", msgs[0].Role, msgs[1].Role)
	}
	if msgs[0].Model != "" {
		t.Errorf("expected empty model for user message, got %q", msgs[0].Model)
	}
	if msgs[1].Model != "qwen2.5-7b-instruct" {
		t.Errorf("unexpected model: %q", msgs[1].Model)
	}
}

func TestMessageListByConversation_Empty(t *testing.T) {
	repo, mock := newTestMessageRepo(t)

	rows := sqlmock.NewRows([]string{"id", "conversation_id", "role", "content", "tokens", "model", "created_at", "metadata"})
	mock.ExpectQuery("SELECT id, conversation_id, role, content, tokens, model, created_at, metadata FROM messages").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	msgs, err := repo.ListByConversation(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("expected no messages, got %d", len(msgs))
	}
}
