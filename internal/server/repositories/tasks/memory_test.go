package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_OwnershipScoping(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.Task{ID: "t-1", UserID: "alice", Title: "Buy milk", Status: models.StatusPending})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Task{ID: "t-2", UserID: "bob", Title: "Pay rent", Status: models.StatusPending})
	require.NoError(t, err)

	aliceTasks, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceTasks, 1)
	assert.Equal(t, "Buy milk", aliceTasks[0].Title)

	// Bob must not see, edit or delete Alice's task.
	bobTasks, err := repo.ListByOwner(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobTasks, 1)
	assert.Equal(t, "t-2", bobTasks[0].ID)

	status := models.StatusCompleted
	_, err = repo.Update(ctx, "bob", "t-1", models.TaskPatch{Status: &status})
	assert.True(t, errors.Is(err, common.ErrNotFound))

	_, err = repo.Delete(ctx, "bob", "t-1")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestMemoryRepository_PartialUpdate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.Task{ID: "t-1", UserID: "alice", Title: "Buy milk", Description: "2l", Status: models.StatusPending})
	require.NoError(t, err)

	status := models.StatusCompleted
	got, err := repo.Update(ctx, "alice", "t-1", models.TaskPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.StatusCompleted, got.Status)
	assert.Equal(t, "Buy milk", got.Title)
	assert.Equal(t, "2l", got.Description)
}

func TestMemoryRepository_DeleteReturnsRecord(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.Task{ID: "t-1", UserID: "alice", Title: "Buy milk", Status: models.StatusPending})
	require.NoError(t, err)

	got, err := repo.Delete(ctx, "alice", "t-1")
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", got.Title)

	left, err := repo.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, left)
}
