package service

//go:generate mockgen -source=interfaces.go -destination=../mock/memory_service_mock.go -package=mock

import (
	"context"

	"github.com/devfrx/fluxa/models"
)

// MemoryService is the assistant's persistent memory: conversations with
// their messages, tracked tasks and long-term key-value facts.
type MemoryService interface {
	StartConversation(ctx context.Context, title string) (models.Conversation, error)
	Conversations(ctx context.Context, limit, offset uint64) ([]models.Conversation, error)
	DeleteConversation(ctx context.Context, id int64) (bool, error)

	AddMessage(ctx context.Context, msg models.Message) (models.Message, error)
	History(ctx context.Context, conversationID int64, limit int) ([]models.Message, error)

	CreateTask(ctx context.Context, title, description string, priority int) (models.Task, error)
	Tasks(ctx context.Context, status models.TaskStatus) ([]models.Task, error)
	UpdateTaskStatus(ctx context.Context, id int64, status models.TaskStatus) error

	Remember(ctx context.Context, key string, value any, category string) error
	Recall(ctx context.Context, key string) (models.ContextItem, error)
	Facts(ctx context.Context, category string) ([]models.ContextItem, error)
	Forget(ctx context.Context, key string) (bool, error)
}
