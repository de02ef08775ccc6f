// Package tasks provides ownership-scoped storage for task records.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Repository stores tasks. Every operation is scoped by the owning user:
// Update and Delete match id AND owner in a single atomic statement, so a
// task owned by another user yields common.ErrNotFound exactly like a
// nonexistent one.
type Repository interface {
	ListByOwner(ctx context.Context, userID string) ([]*models.Task, error)
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	Update(ctx context.Context, userID, taskID string, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) (*models.Task, error)
}
