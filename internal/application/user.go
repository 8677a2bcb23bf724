package app

import (
	"context"
	"fmt"

	"recycle-bot/internal/domain/entity"
	"recycle-bot/internal/domain/port"
)

// UserService управляет состоянием диалога с пользователем
type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	user.SetState(state)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	return user, nil
}

// MarkProcessing переводит пользователя в состояние обработки без полной перезаписи
func (s *UserService) MarkProcessing(ctx context.Context, userID, chatID int64) error {
	// Get создаёт пользователя, если его ещё нет.
	if _, err := s.repo.Get(ctx, userID, chatID); err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if err := s.repo.UpdateState(ctx, userID, entity.StateProcessing); err != nil {
		return fmt.Errorf("update state: %w", err)
	}
	return nil
}

// Update загружает пользователя, применяет изменение и сохраняет
func (s *UserService) Update(ctx context.Context, userID, chatID int64, apply func(*entity.User)) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	apply(user)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	return user, nil
}

func (s *UserService) BeginCheck(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}
