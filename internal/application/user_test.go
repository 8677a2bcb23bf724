package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"recycle-bot/internal/domain/entity"
	"recycle-bot/internal/infrastructure/storage"
)

func TestUserService_BeginCheckAndCancel(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.BeginCheck(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingPhoto, user.State)

	user, err = svc.Cancel(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
}

func TestUserService_SetState(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.SetState(ctx, 2, 20, entity.StateProcessing)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, user.State)

	stored, err := svc.Get(ctx, 2, 20)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, stored.State)
}

func TestUserService_Update(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.Update(ctx, 3, 30, func(u *entity.User) {
		u.SetResult(entity.ClassificationResult{Category: entity.Landfill, Confidence: 0.5, DetectedLabel: "diaper"})
	})
	require.NoError(t, err)

	stored, err := svc.Get(ctx, 3, 30)
	require.NoError(t, err)
	require.NotNil(t, stored.LastResult)
	require.Equal(t, entity.Landfill, stored.LastResult.Category)
}

func TestUserService_MarkProcessing(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	// Пользователь создаётся, если его ещё нет.
	require.NoError(t, svc.MarkProcessing(ctx, 4, 40))

	user, err := svc.Get(ctx, 4, 40)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, user.State)
	require.Equal(t, int64(40), user.ChatID)
}
