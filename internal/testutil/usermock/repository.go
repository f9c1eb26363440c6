package usermock

import (
	"context"
	"errors"

	domain "pawhome-backend/internal/domain/user"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("usermock: method not implemented")

// Repo is a function-backed mock that satisfies user.Repository.
type Repo struct {
	CreateFn      func(ctx context.Context, u *domain.User) error
	GetByEmailFn  func(ctx context.Context, email string) (*domain.User, error)
	GetByUserIDFn func(ctx context.Context, userID string) (*domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, errUnimplemented
}
