// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/devfrx/fluxa/internal/logger"
	"github.com/devfrx/fluxa/models"
)

// contextRepository persists the long-term key-value memory.
type contextRepository struct {
	*DB
	logger *logger.Logger
}

func NewContextRepository(db *DB, log *logger.Logger) ContextRepository {
	return &contextRepository{DB: db, logger: log}
}

// Set stores or replaces a context entry. Values are kept as JSON so callers
// can store structured data, not only strings.
func (r *contextRepository) Set(ctx context.Context, key string, value any, category string) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode context value for %q: %w", key, err)
	}

	query, args, err := qb.Insert("context").
		Columns("key", "value", "category", "updated_at").
		Values(key, string(encoded), category, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, category = excluded.category, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build context upsert: %w", err)
	}

	_, err = r.ExecContext(ctx, query, args...)
	r.logger.DatabaseOperation("UPSERT", "context", err)
	if err != nil {
		return fmt.Errorf("failed to set context %q: %w", key, err)
	}
	return nil
}

// Get returns one context entry by key, or ErrNotFound.
func (r *contextRepository) Get(ctx context.Context, key string) (models.ContextItem, error) {
	query, args, err := qb.Select("key", "value", "category", "updated_at").
		From("context").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return models.ContextItem{}, fmt.Errorf("failed to build context select: %w", err)
	}

	var item models.ContextItem
	var raw string
	var category sql.NullString
	err = r.QueryRowContext(ctx, query, args...).Scan(&item.Key, &raw, &category, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ContextItem{}, ErrNotFound
	}
	if err != nil {
		r.logger.DatabaseOperation("SELECT", "context", err)
		return models.ContextItem{}, fmt.Errorf("failed to get context %q: %w", key, err)
	}

	item.Category = category.String
	if err := json.Unmarshal([]byte(raw), &item.Value); err != nil {
		return models.ContextItem{}, fmt.Errorf("failed to decode context value for %q: %w", key, err)
	}
	return item, nil
}

// List returns every context entry, optionally filtered by category.
func (r *contextRepository) List(ctx context.Context, category string) ([]models.ContextItem, error) {
	builder := qb.Select("key", "value", "category", "updated_at").
		From("context").
		OrderBy("key ASC")
	if category != "" {
		builder = builder.Where(sq.Eq{"category": category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build context list: %w", err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.DatabaseOperation("SELECT", "context", err)
		return nil, fmt.Errorf("failed to list context: %w", err)
	}
	defer rows.Close()

	var out []models.ContextItem
	for rows.Next() {
		var item models.ContextItem
		var raw string
		var cat sql.NullString
		if err := rows.Scan(&item.Key, &raw, &cat, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan context entry: %w", err)
		}
		item.Category = cat.String
		if err := json.Unmarshal([]byte(raw), &item.Value); err != nil {
			return nil, fmt.Errorf("failed to decode context value for %q: %w", item.Key, err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Delete removes one context entry, reporting whether it existed.
func (r *contextRepository) Delete(ctx context.Context, key string) (bool, error) {
	query, args, err := qb.Delete("context").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build context delete: %w", err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	r.logger.DatabaseOperation("DELETE", "context", err)
	if err != nil {
		return false, fmt.Errorf("failed to delete context %q: %w", key, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}
