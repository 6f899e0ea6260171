// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/devfrx/fluxa/internal/logger"
	"github.com/devfrx/fluxa/models"
)

// messageRepository persists individual chat messages.
type messageRepository struct {
	*DB
	logger *logger.Logger
}

func NewMessageRepository(db *DB, log *logger.Logger) MessageRepository {
	return &messageRepository{DB: db, logger: log}
}

// Add inserts a message into its conversation and returns it with the
// assigned ID.
func (r *messageRepository) Add(ctx context.Context, msg models.Message) (models.Message, error) {
	if !msg.Role.Valid() {
		return models.Message{}, fmt.Errorf("%w: %q", ErrInvalidRole, msg.Role)
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	if msg.Metadata == nil {
		msg.Metadata = models.Metadata{}
	}

	query, args, err := qb.Insert("messages").
		Columns("conversation_id", "role", "content", "tokens", "model", "created_at", "metadata").
		Values(msg.ConversationID, msg.Role, msg.Content, msg.Tokens, nullString(msg.Model), msg.CreatedAt, msg.Metadata).
		ToSql()
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to build message insert: %w", err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	r.logger.DatabaseOperation("INSERT", "messages", err)
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to add message to conversation %d: %w", msg.ConversationID, err)
	}

	msg.ID, err = res.LastInsertId()
	if err != nil {
		return models.Message{}, fmt.Errorf("failed to read message id: %w", err)
	}
	return msg, nil
}

// ListByConversation returns every message of a conversation in
// chronological order.
func (r *messageRepository) ListByConversation(ctx context.Context, conversationID int64) ([]models.Message, error) {
	query, args, err := qb.Select("id", "conversation_id", "role", "content", "tokens", "model", "created_at", "metadata").
		From("messages").
		Where(sq.Eq{"conversation_id": conversationID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build message list: %w", err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.DatabaseOperation("SELECT", "messages", err)
		return nil, fmt.Errorf("failed to list messages of conversation %d: %w", conversationID, err)
	}
	defer rows.Close()

	var out []models.Message
	for rows.Next() {
		var msg models.Message
		var model sql.NullString
		if err := rows.Scan(&msg.ID, &msg.ConversationID, &msg.Role, &msg.Content, &msg.Tokens, &model, &msg.CreatedAt, &msg.Metadata); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		msg.Model = model.String
		out = append(out, msg)
	}
	return out, rows.Err()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
