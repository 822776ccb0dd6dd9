package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"usersadmin/internal/cache"
	apperrors "usersadmin/internal/errors"
	"usersadmin/internal/model"
	"usersadmin/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes the user operations of the backend.
type UserService interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUser(ctx context.Context, id int) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id int) error
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func cacheKey(id int) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	status, err := model.ParseStatus(string(user.UserStatus))
	if err != nil {
		return nil, apperrors.ErrUserStatusIncorrect
	}
	user.UserStatus = status
	user.UserID = 0

	if _, err := s.repo.FindByUserName(ctx, user.UserName); err == nil {
		return nil, apperrors.ErrUserAlreadyExists
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id int) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, cacheKey(id), user, userCacheTTL)
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	status, err := model.ParseStatus(string(user.UserStatus))
	if err != nil {
		return nil, apperrors.ErrUserStatusIncorrect
	}
	user.UserStatus = status

	owner, err := s.repo.FindByUserName(ctx, user.UserName)
	switch {
	case err == nil && owner.UserID != user.UserID:
		return nil, apperrors.ErrUsernameCollision
	case err != nil && !errors.Is(err, apperrors.ErrUserNotFound):
		return nil, err
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	s.cache.Delete(ctx, cacheKey(user.UserID))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(ctx, cacheKey(id))
	return nil
}
