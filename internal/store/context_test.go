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

func newTestContextRepo(t *testing.T) (ContextRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewContextRepository(db, logger.Nop()), mock
}

func TestContextSet_UpsertsJSON(t *testing.T) {
	repo, mock := newTestContextRepo(t)

	mock.ExpectExec("INSERT INTO context .+ ON CONFLICT\\(key\\) DO UPDATE").
		WithArgs("user.name", `"Marco"`, "profile", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Set(context.Background(), "user.name", "Marco", "profile"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestContextSet_StructuredValue(t *testing.T) {
	repo, mock := newTestContextRepo(t)

	mock.ExpectExec("INSERT INTO context").
		WithArgs("prefs", `{"theme":"dark"}`, "", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Set(context.Background(), "prefs", map[string]string{"theme": "dark"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestContextGet_Success(t *testing.T) {
	repo, mock := newTestContextRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"key", "value", "category", "updated_at"}).
		AddRow("user.name", `"Marco"`, "profile", now)
	mock.ExpectQuery("SELECT key, value, category, updated_at FROM context").
		WithArgs("user.name").
		WillReturnRows(rows)

	item, err := repo.Get(context.Background(), "user.name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Value != "Marco" {
		t.Errorf("expected decoded value %q, got %v", "Marco", item.Value)
	}
	if item.Category != "profile" {
		t.Errorf("unexpected category: %q", item.Category)
	}
}

func TestContextGet_NotFound(t *testing.T) {
	repo, mock := newTestContextRepo(t)

	mock.ExpectQuery("SELECT key, value, category, updated_at FROM context").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContextList_FilteredByCategory(t *testing.T) {
	repo, mock := newTestContextRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"key", "value", "category", "updated_at"}).
		AddRow("user.lang", `"it"`, "profile", now).
		AddRow("user.name", `"Marco"`, "profile", now)
	mock.ExpectQuery("SELECT key, value, category, updated_at FROM context").
		WithArgs("profile").
		WillReturnRows(rows)

	items, err := repo.List(context.Background(), "profile")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Key != "user.lang" {
		t.Errorf("expected key-ordered result, got %q first", items[0].Key)
	}
}

func TestContextDelete(t *testing.T) {
	repo, mock := newTestContextRepo(t)

	mock.ExpectExec("DELETE FROM context").
		WithArgs("stale").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), "stale")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("expected deleted=false for missing key")
	}
}
