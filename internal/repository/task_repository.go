package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"task-logger/internal/model"
)

// TaskRepository stores and reads logged tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts the task inside a transaction. ID is filled in on success.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(task).Error
	})
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// ListLatest returns up to n tasks, newest first. Tasks sharing a timestamp
// come back in reverse insertion order.
func (r *TaskRepository) ListLatest(ctx context.Context, n int) ([]model.Task, error) {
	if n <= 0 {
		return nil, nil
	}
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Limit(n).
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list latest tasks: %w", err)
	}
	return tasks, nil
}
