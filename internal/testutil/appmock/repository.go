package appmock

import (
	"context"
	"errors"

	domain "pawhome-backend/internal/domain/application"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("appmock: method not implemented")

// Repo is a function-backed mock that satisfies application.Repository.
type Repo struct {
	CreateFn                 func(ctx context.Context, a *domain.Application) error
	GetByApplicationIDFn     func(ctx context.Context, applicationID string) (*domain.Application, error)
	GetByApplicationIDAnyFn  func(ctx context.Context, applicationID string) (*domain.Application, error)
	FindActiveByPetAndUserFn func(ctx context.Context, petID, userID string) (*domain.Application, error)
	SaveFn                   func(ctx context.Context, a *domain.Application) error
	ListFn                   func(ctx context.Context, f domain.ListFilter, page, limit int) ([]domain.Application, int64, error)
	RejectOtherPendingFn     func(ctx context.Context, petID, keepApplicationID string) (int64, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByApplicationIDAny(ctx context.Context, applicationID string) (*domain.Application, error) {
	if m.GetByApplicationIDAnyFn != nil {
		return m.GetByApplicationIDAnyFn(ctx, applicationID)
	}
	return nil, errUnimplemented
}

func (m *Repo) FindActiveByPetAndUser(ctx context.Context, petID, userID string) (*domain.Application, error) {
	if m.FindActiveByPetAndUserFn != nil {
		return m.FindActiveByPetAndUserFn(ctx, petID, userID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter, page, limit int) ([]domain.Application, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f, page, limit)
	}
	return nil, 0, errUnimplemented
}

func (m *Repo) RejectOtherPending(ctx context.Context, petID, keepApplicationID string) (int64, error) {
	if m.RejectOtherPendingFn != nil {
		return m.RejectOtherPendingFn(ctx, petID, keepApplicationID)
	}
	return 0, nil
}
