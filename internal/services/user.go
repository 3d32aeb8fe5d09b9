package services

import (
	"context"
	"time"

	"github.com/leettrack/leettrack/types"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	Update(ctx context.Context, user types.User) (types.User, error)
	Delete(ctx context.Context, id string) error
	SetResetToken(ctx context.Context, userID, token string, expires time.Time) error
	GetByResetToken(ctx context.Context, token string) (types.User, error)
	ClearResetToken(ctx context.Context, userID string) error
}

// UserService encapsulates user use-cases.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetByID(ctx context.Context, id string) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (types.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *UserService) Create(ctx context.Context, user types.User) (types.User, error) {
	return s.repo.Create(ctx, user)
}

func (s *UserService) Update(ctx context.Context, user types.User) (types.User, error) {
	return s.repo.Update(ctx, user)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *UserService) SetResetToken(ctx context.Context, userID, token string, expires time.Time) error {
	return s.repo.SetResetToken(ctx, userID, token, expires)
}

func (s *UserService) GetByResetToken(ctx context.Context, token string) (types.User, error) {
	return s.repo.GetByResetToken(ctx, token)
}

func (s *UserService) ClearResetToken(ctx context.Context, userID string) error {
	return s.repo.ClearResetToken(ctx, userID)
}
