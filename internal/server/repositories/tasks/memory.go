package tasks

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// MemoryRepository keeps tasks in an insertion-ordered slice. It backs the
// memory:// DSN and is the store the handler and service tests run against.
type MemoryRepository struct {
	mu    sync.Mutex
	tasks []*models.Task
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) ListByOwner(ctx context.Context, userID string) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*models.Task{}
	for _, t := range r.tasks {
		if t.UserID == userID {
			out := *t
			result = append(result, &out)
		}
	}
	return result, nil
}

func (r *MemoryRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	stored := *task
	r.tasks = append(r.tasks, &stored)
	return task, nil
}

func (r *MemoryRepository) Update(ctx context.Context, userID, taskID string, patch models.TaskPatch) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := r.find(userID, taskID)
	if t == nil {
		return nil, common.ErrNotFound
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	t.UpdatedAt = time.Now().UTC()

	out := *t
	return &out, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, userID, taskID string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == taskID && t.UserID == userID {
			out := *t
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return &out, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *MemoryRepository) find(userID, taskID string) *models.Task {
	for _, t := range r.tasks {
		if t.ID == taskID && t.UserID == userID {
			return t
		}
	}
	return nil
}
