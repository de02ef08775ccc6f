package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/google/uuid"
)

// TaskService implements ownership-scoped task operations. The userID always
// comes from the verified request identity, never from client input.
type TaskService struct {
	tasks tasks.Repository
}

func NewTaskService(repo tasks.Repository) *TaskService {
	return &TaskService{tasks: repo}
}

// List returns the caller's tasks in insertion order.
func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {
	return s.tasks.ListByOwner(ctx, userID)
}

// Create persists a new task owned by userID. An empty status defaults to
// pending.
func (s *TaskService) Create(ctx context.Context, userID, title, description string, status models.Status) (*models.Task, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", common.ErrValidation)
	}
	if status == "" {
		status = models.StatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrValidation, status)
	}

	task := &models.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
	}
	return s.tasks.Create(ctx, task)
}

// Update applies a partial update to the caller's task. A task owned by
// somebody else is reported as common.ErrNotFound.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, patch models.TaskPatch) (*models.Task, error) {
	if patch.Title != nil && *patch.Title == "" {
		return nil, fmt.Errorf("%w: title must not be empty", common.ErrValidation)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrValidation, *patch.Status)
	}
	if patch.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", common.ErrValidation)
	}
	return s.tasks.Update(ctx, userID, taskID, patch)
}

// Delete removes the caller's task and returns the deleted record.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) (*models.Task, error) {
	return s.tasks.Delete(ctx, userID, taskID)
}
