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

// taskRepository persists assistant to-do items.
type taskRepository struct {
	*DB
	logger *logger.Logger
}

func NewTaskRepository(db *DB, log *logger.Logger) TaskRepository {
	return &taskRepository{DB: db, logger: log}
}

// Create inserts a pending task.
func (r *taskRepository) Create(ctx context.Context, title, description string, priority int) (models.Task, error) {
	now := time.Now().UTC()

	query, args, err := qb.Insert("tasks").
		Columns("title", "description", "status", "priority", "created_at", "updated_at").
		Values(title, description, models.TaskPending, priority, now, now).
		ToSql()
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to build task insert: %w", err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	r.logger.DatabaseOperation("INSERT", "tasks", err)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to read task id: %w", err)
	}

	return models.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      models.TaskPending,
		Priority:    priority,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// List returns tasks ordered by priority then recency. A non-empty status
// filters the result.
func (r *taskRepository) List(ctx context.Context, status models.TaskStatus) ([]models.Task, error) {
	builder := qb.Select("id", "title", "description", "status", "priority", "created_at", "updated_at", "completed_at", "metadata").
		From("tasks").
		OrderBy("priority DESC", "created_at DESC")
	if status != "" {
		builder = builder.Where(sq.Eq{"status": status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build task list: %w", err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.DatabaseOperation("SELECT", "tasks", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var out []models.Task
	for rows.Next() {
		var task models.Task
		var description sql.NullString
		if err := rows.Scan(&task.ID, &task.Title, &description, &task.Status, &task.Priority,
			&task.CreatedAt, &task.UpdatedAt, &task.CompletedAt, &task.Metadata); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		task.Description = description.String
		out = append(out, task)
	}
	return out, rows.Err()
}

// UpdateStatus moves a task to a new status, stamping completed_at when it
// reaches the completed state.
func (r *taskRepository) UpdateStatus(ctx context.Context, id int64, status models.TaskStatus) error {
	now := time.Now().UTC()

	builder := qb.Update("tasks").
		Set("status", status).
		Set("updated_at", now).
		Where(sq.Eq{"id": id})
	if status == models.TaskCompleted {
		builder = builder.Set("completed_at", now)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build task update: %w", err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	r.logger.DatabaseOperation("UPDATE", "tasks", err)
	if err != nil {
		return fmt.Errorf("failed to update task %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
