package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"recycle-bot/internal/domain/entity"
)

func TestMemoryUserRepository_GetCreatesUser(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
	require.Equal(t, int64(10), user.ChatID)
}

func TestMemoryUserRepository_SaveIsolatesCopies(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)

	// Без Save изменения не видны.
	user.SetState(entity.StateProcessing)
	stored, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, stored.State)

	user.SetResult(entity.ClassificationResult{Category: entity.Recyclable, Confidence: 0.8, DetectedLabel: "can"})
	require.NoError(t, repo.Save(ctx, user))

	stored, err = repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, stored.State)
	require.NotNil(t, stored.LastResult)

	stored.LastResult.DetectedLabel = "mutated"
	again, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, "can", again.LastResult.DetectedLabel)
}

func TestMemoryUserRepository_UpdateState(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx, 5, 50)
	require.NoError(t, err)
	require.NoError(t, repo.UpdateState(ctx, 5, entity.StateAwaitingPhoto))

	user, err := repo.Get(ctx, 5, 50)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingPhoto, user.State)

	// Неизвестный пользователь молча пропускается.
	require.NoError(t, repo.UpdateState(ctx, 99, entity.StateProcessing))
}

func TestMemoryUserRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Get(ctx, 1, 10)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, repo.Save(ctx, entity.NewUser(1, 10)), context.Canceled)
}
