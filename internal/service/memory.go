// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 devfrx

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/devfrx/fluxa/internal/logger"
	"github.com/devfrx/fluxa/internal/store"
	"github.com/devfrx/fluxa/models"
)

// defaultConversationTitle is used when a conversation is started without one.
const defaultConversationTitle = "New conversation"

type memoryService struct {
	conversations store.ConversationRepository
	messages      store.MessageRepository
	tasks         store.TaskRepository
	facts         store.ContextRepository

	logger *logger.Logger
}

func NewMemoryService(storages *store.Storages, logger *logger.Logger) MemoryService {
	return &memoryService{
		conversations: storages.Conversations,
		messages:      storages.Messages,
		tasks:         storages.Tasks,
		facts:         storages.Context,
		logger:        logger,
	}
}

func (m *memoryService) StartConversation(ctx context.Context, title string) (models.Conversation, error) {
	if title == "" {
		title = fmt.Sprintf("%s (%s)", defaultConversationTitle, time.Now().Format("2006-01-02 15:04"))
	}

	conv, err := m.conversations.Create(ctx, title, nil)
	if err != nil {
		return models.Conversation{}, err
	}
	m.logger.Debug().Int64("conversation_id", conv.ID).Str("title", conv.Title).Msg("conversation started")
	return conv, nil
}

func (m *memoryService) Conversations(ctx context.Context, limit, offset uint64) ([]models.Conversation, error) {
	return m.conversations.List(ctx, limit, offset)
}

func (m *memoryService) DeleteConversation(ctx context.Context, id int64) (bool, error) {
	return m.conversations.Delete(ctx, id)
}

// AddMessage stores a message and bumps its conversation's activity, so
// conversation listings stay ordered by last use.
func (m *memoryService) AddMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	saved, err := m.messages.Add(ctx, msg)
	if err != nil {
		return models.Message{}, err
	}
	if err := m.conversations.Touch(ctx, saved.ConversationID); err != nil {
		return models.Message{}, err
	}
	return saved, nil
}

// History returns the most recent messages of a conversation, oldest first.
// A limit <= 0 returns everything.
func (m *memoryService) History(ctx context.Context, conversationID int64, limit int) ([]models.Message, error) {
	msgs, err := m.messages.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

func (m *memoryService) CreateTask(ctx context.Context, title, description string, priority int) (models.Task, error) {
	return m.tasks.Create(ctx, title, description, priority)
}

func (m *memoryService) Tasks(ctx context.Context, status models.TaskStatus) ([]models.Task, error) {
	return m.tasks.List(ctx, status)
}

func (m *memoryService) UpdateTaskStatus(ctx context.Context, id int64, status models.TaskStatus) error {
	return m.tasks.UpdateStatus(ctx, id, status)
}

func (m *memoryService) Remember(ctx context.Context, key string, value any, category string) error {
	return m.facts.Set(ctx, key, value, category)
}

func (m *memoryService) Recall(ctx context.Context, key string) (models.ContextItem, error) {
	return m.facts.Get(ctx, key)
}

func (m *memoryService) Facts(ctx context.Context, category string) ([]models.ContextItem, error) {
	return m.facts.List(ctx, category)
}

func (m *memoryService) Forget(ctx context.Context, key string) (bool, error) {
	return m.facts.Delete(ctx, key)
}
