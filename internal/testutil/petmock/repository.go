package petmock

import (
	"context"
	"errors"

	domain "pawhome-backend/internal/domain/pet"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("petmock: method not implemented")

// Repo is a function-backed mock that satisfies pet.Repository. Fill in the
// function fields a test needs; unfilled ones fail loudly.
type Repo struct {
	CreateFn        func(ctx context.Context, p *domain.Pet) error
	GetByPetIDFn    func(ctx context.Context, petID string) (*domain.Pet, error)
	GetByPetIDAnyFn func(ctx context.Context, petID string) (*domain.Pet, error)
	FindByPetIDsFn  func(ctx context.Context, petIDs []string) ([]domain.Pet, error)
	SaveFn          func(ctx context.Context, p *domain.Pet) error
	ListFn          func(ctx context.Context, f domain.ListFilter, page, limit int) ([]domain.Pet, int64, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Pet) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByPetID(ctx context.Context, petID string) (*domain.Pet, error) {
	if m.GetByPetIDFn != nil {
		return m.GetByPetIDFn(ctx, petID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByPetIDAny(ctx context.Context, petID string) (*domain.Pet, error) {
	if m.GetByPetIDAnyFn != nil {
		return m.GetByPetIDAnyFn(ctx, petID)
	}
	return nil, errUnimplemented
}

func (m *Repo) FindByPetIDs(ctx context.Context, petIDs []string) ([]domain.Pet, error) {
	if m.FindByPetIDsFn != nil {
		return m.FindByPetIDsFn(ctx, petIDs)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, p *domain.Pet) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter, page, limit int) ([]domain.Pet, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f, page, limit)
	}
	return nil, 0, errUnimplemented
}
