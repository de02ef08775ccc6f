package users

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{ID: "u-1", Name: "Alice", Email: "alice@x.com", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{ID: "u-2", Name: "Impostor", Email: "alice@x.com", PasswordHash: "h2"})
	assert.True(t, errors.Is(err, common.ErrAlreadyExists))
}

func TestMemoryRepository_Lookups(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{ID: "u-1", Name: "Alice", Email: "alice@x.com", PasswordHash: "h1"})
	require.NoError(t, err)

	byEmail, err := repo.GetByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", byEmail.ID)

	byID, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.Name)

	_, err = repo.GetByEmail(ctx, "ghost@x.com")
	assert.True(t, errors.Is(err, common.ErrNotFound))

	_, err = repo.GetByID(ctx, "ghost")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestMemoryRepository_UpdateName(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{ID: "u-1", Name: "Alice", Email: "alice@x.com", PasswordHash: "h1"})
	require.NoError(t, err)

	got, err := repo.UpdateName(ctx, "u-1", "Alicia")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.Name)
	assert.Equal(t, "alice@x.com", got.Email)

	_, err = repo.UpdateName(ctx, "ghost", "X")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
