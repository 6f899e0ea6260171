// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/devfrx/fluxa/internal/logger"
	"github.com/devfrx/fluxa/models"
)

// conversationRepository persists chat threads.
type conversationRepository struct {
	*DB
	logger *logger.Logger
}

func NewConversationRepository(db *DB, log *logger.Logger) ConversationRepository {
	return &conversationRepository{DB: db, logger: log}
}

// Create inserts a new conversation and returns it with its assigned ID.
func (r *conversationRepository) Create(ctx context.Context, title string, meta models.Metadata) (models.Conversation, error) {
	now := time.Now().UTC()
	if meta == nil {
		meta = models.Metadata{}
	}

	query, args, err := qb.Insert("conversations").
		Columns("title", "created_at", "updated_at", "metadata").
		Values(title, now, now, meta).
		ToSql()
	if err != nil {
		return models.Conversation{}, fmt.Errorf("failed to build conversation insert: %w", err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	r.logger.DatabaseOperation("INSERT", "conversations", err)
	if err != nil {
		return models.Conversation{}, fmt.Errorf("failed to create conversation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Conversation{}, fmt.Errorf("failed to read conversation id: %w", err)
	}

	return models.Conversation{
		ID:        id,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
		Metadata:  meta,
	}, nil
}

// Get returns one conversation by ID, or ErrNotFound.
func (r *conversationRepository) Get(ctx context.Context, id int64) (models.Conversation, error) {
	query, args, err := qb.Select("id", "title", "created_at", "updated_at", "metadata").
		From("conversations").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Conversation{}, fmt.Errorf("failed to build conversation select: %w", err)
	}

	var conv models.Conversation
	err = r.QueryRowContext(ctx, query, args...).Scan(
		&conv.ID, &conv.Title, &conv.CreatedAt, &conv.UpdatedAt, &conv.Metadata,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Conversation{}, ErrNotFound
	}
	if err != nil {
		r.logger.DatabaseOperation("SELECT", "conversations", err)
		return models.Conversation{}, fmt.Errorf("failed to get conversation %d: %w", id, err)
	}

	return conv, nil
}

// List returns recent conversations ordered by last activity.
func (r *conversationRepository) List(ctx context.Context, limit, offset uint64) ([]models.Conversation, error) {
	query, args, err := qb.Select("id", "title", "created_at", "updated_at", "metadata").
		From("conversations").
		OrderBy("updated_at DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build conversation list: %w", err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.DatabaseOperation("SELECT", "conversations", err)
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	defer rows.Close()

	var out []models.Conversation
	for rows.Next() {
		var conv models.Conversation
		if err := rows.Scan(&conv.ID, &conv.Title, &conv.CreatedAt, &conv.UpdatedAt, &conv.Metadata); err != nil {
			return nil, fmt.Errorf("failed to scan conversation: %w", err)
		}
		out = append(out, conv)
	}
	return out, rows.Err()
}

// Delete removes a conversation and, via cascade, its messages. It reports
// whether a row was actually deleted.
func (r *conversationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query, args, err := qb.Delete("conversations").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build conversation delete: %w", err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	r.logger.DatabaseOperation("DELETE", "conversations", err)
	if err != nil {
		return false, fmt.Errorf("failed to delete conversation %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// Touch bumps the conversation's updated_at, keeping the list ordering in
// sync with message activity.
func (r *conversationRepository) Touch(ctx context.Context, id int64) error {
	query, args, err := qb.Update("conversations").
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build conversation touch: %w", err)
	}

	_, err = r.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.DatabaseOperation("UPDATE", "conversations", err)
		return fmt.Errorf("failed to touch conversation %d: %w", id, err)
	}
	return nil
}
