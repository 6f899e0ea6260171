package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/devfrx/fluxa/internal/logger"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &DB{DB: db, logger: logger.Nop()}, mock
}

func newTestConversationRepo(t *testing.T) (ConversationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewConversationRepository(db, logger.Nop()), mock
}

func TestConversationCreate_Success(t *testing.T) {
	repo, mock := newTestConversationRepo(t)
	ctx := context.Background()

	mock.ExpectExec("INSERT INTO conversations").
		WithArgs("first chat", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	conv, err := repo.Create(ctx, "first chat", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.ID != 7 {
		t.Errorf("expected ID=7, got %d", conv.ID)
	}
	if conv.Title != "first chat" {
		t.Errorf("expected title %q, got %q", "first chat", conv.Title)
	}
	if conv.Metadata == nil {
		t.Error("expected non-nil metadata on created conversation")
	}
}

func TestConversationCreate_DBError(t *testing.T) {
	repo, mock := newTestConversationRepo(t)

	mock.ExpectExec("INSERT INTO conversations").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Create(context.Background(), "boom", nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestConversationGet_Success(t *testing.T) {
	repo, mock := newTestConversationRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "title", "created_at", "updated_at", "metadata"}).
		AddRow(3, "notes", now, now, `{"pinned":true}`)
	mock.ExpectQuery("SELECT id, title, created_at, updated_at, metadata FROM conversations").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	conv, err := repo.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.ID != 3 || conv.Title != "notes" {
		t.Errorf("unexpected conversation: %+v", conv)
	}
	if pinned, ok := conv.Metadata["pinned"].(bool); !ok || !pinned {
		t.Errorf("expected metadata pinned=true, got %v", conv.Metadata)
	}
}

func TestConversationGet_NotFound(t *testing.T) {
	repo, mock := newTestConversationRepo(t)

	mock.ExpectQuery("SELECT id, title, created_at, updated_at, metadata FROM conversations").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestConversationList_OrderedByActivity(t *testing.T) {
	repo, mock := newTestConversationRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "title", "created_at", "updated_at", "metadata"}).
		AddRow(2, "newer", now, now, `{}`).
		AddRow(1, "older", now.Add(-time.Hour), now.Add(-time.Hour), `{}`)
	mock.ExpectQuery("SELECT id, title, created_at, updated_at, metadata FROM conversations ORDER BY updated_at DESC").
		WillReturnRows(rows)

	list, err := repo.List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 conversations, got %d", len(list))
	}
	if list[0].Title != "newer" {
		t.Errorf("expected most recent first, got %q", list[0].Title)
	}
}

func TestConversationDelete(t *testing.T) {
	repo, mock := newTestConversationRepo(t)

	mock.ExpectExec("DELETE FROM conversations").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected deleted=true")
	}

	mock.ExpectExec("DELETE FROM conversations").
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err = repo.Delete(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("expected deleted=false for missing row")
	}
}

func TestConversationTouch(t *testing.T) {
	repo, mock := newTestConversationRepo(t)

	mock.ExpectExec("UPDATE conversations SET updated_at").
		WithArgs(sqlmock.AnyArg(), int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Touch(context.Background(), 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
