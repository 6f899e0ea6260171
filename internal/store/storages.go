// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/devfrx/fluxa/internal/logger"
)

// qb is the shared statement builder. SQLite uses question placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// Storages aggregates every repository over one database connection.
type Storages struct {
	Conversations ConversationRepository
	Messages      MessageRepository
	Tasks         TaskRepository
	Context       ContextRepository
}

// NewStorages builds the repository set over db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Conversations: NewConversationRepository(db, log),
		Messages:      NewMessageRepository(db, log),
		Tasks:         NewTaskRepository(db, log),
		Context:       NewContextRepository(db, log),
	}
}
