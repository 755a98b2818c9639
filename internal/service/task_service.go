package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"task-logger/internal/model"
	"task-logger/internal/repository"
)

// TaskInput holds the raw answers collected by the add-task prompts.
type TaskInput struct {
	Username  string
	Title     string
	TotalTime string
	Notes     string
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo *repository.TaskRepository
	now      func() time.Time
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, now: time.Now}
}

// CreateTask normalizes the input and stores it as a new task.
// Username and title are trimmed and lower-cased; notes are kept verbatim.
// Durations are not range checked, so zero and negative minutes are accepted.
// Timestamps are stored in UTC so the text column sorts chronologically.
func (s *TaskService) CreateTask(ctx context.Context, input TaskInput) (*model.Task, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(input.TotalTime))
	if err != nil {
		return nil, fmt.Errorf("%w: total time %q is not a whole number of minutes", ErrValidation, input.TotalTime)
	}

	task := model.Task{
		Username:  strings.ToLower(strings.TrimSpace(input.Username)),
		Title:     strings.ToLower(strings.TrimSpace(input.Title)),
		TotalTime: minutes,
		Notes:     input.Notes,
		Timestamp: s.now().UTC(),
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		if isConstraintViolation(err) {
			return nil, fmt.Errorf("%w: %v", ErrIntegrity, err)
		}
		return nil, err
	}

	return &task, nil
}

// Latest returns the n most recently logged tasks, newest first.
func (s *TaskService) Latest(ctx context.Context, n int) ([]model.Task, error) {
	return s.taskRepo.ListLatest(ctx, n)
}
