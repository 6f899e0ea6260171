package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/devfrx/fluxa/models"
)

type ConversationRepository interface {
	Create(ctx context.Context, title string, meta models.Metadata) (models.Conversation, error)
	Get(ctx context.Context, id int64) (models.Conversation, error)
	List(ctx context.Context, limit, offset uint64) ([]models.Conversation, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Touch(ctx context.Context, id int64) error
}

type MessageRepository interface {
	Add(ctx context.Context, msg models.Message) (models.Message, error)
	ListByConversation(ctx context.Context, conversationID int64) ([]models.Message, error)
}

type TaskRepository interface {
	Create(ctx context.Context, title, description string, priority int) (models.Task, error)
	List(ctx context.Context, status models.TaskStatus) ([]models.Task, error)
	UpdateStatus(ctx context.Context, id int64, status models.TaskStatus) error
}

type ContextRepository interface {
	Set(ctx context.Context, key string, value any, category string) error
	Get(ctx context.Context, key string) (models.ContextItem, error)
	List(ctx context.Context, category string) ([]models.ContextItem, error)
	Delete(ctx context.Context, key string) (bool, error)
}
