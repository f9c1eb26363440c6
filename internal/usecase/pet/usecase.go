package pet

import (
	"context"
	"errors"

	"pawhome-backend/internal/domain/apperr"
	domain "pawhome-backend/internal/domain/pet"
	"pawhome-backend/pkg/id"
	"pawhome-backend/pkg/paging"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Create(ctx context.Context, in CreatePetInput) (*domain.Pet, error) {
	status := in.Status
	if status == "" {
		status = domain.StatusAvailable
	}
	if !domain.ValidStatus(status) {
		return nil, apperr.NewWithMessage(apperr.ValidationError, "invalid pet status")
	}

	p := &domain.Pet{
		PetID:       id.NewID32(),
		Name:        in.Name,
		Species:     in.Species,
		Breed:       in.Breed,
		Age:         in.Age,
		Gender:      in.Gender,
		Size:        in.Size,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Location:    in.Location,
		Status:      status,
		Archived:    false,
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) Get(ctx context.Context, petID string) (*domain.Pet, error) {
	p, err := u.repo.GetByPetID(ctx, petID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.PetNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (u *Usecase) Update(ctx context.Context, petID string, in UpdatePetInput) (*domain.Pet, error) {
	p, err := u.repo.GetByPetID(ctx, petID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.PetNotFound)
		}
		return nil, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Species != nil {
		p.Species = *in.Species
	}
	if in.Breed != nil {
		p.Breed = *in.Breed
	}
	if in.Age != nil {
		p.Age = *in.Age
	}
	if in.Gender != nil {
		p.Gender = *in.Gender
	}
	if in.Size != nil {
		p.Size = *in.Size
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Location != nil {
		p.Location = *in.Location
	}
	if in.Status != nil {
		if !domain.ValidStatus(*in.Status) {
			return nil, apperr.NewWithMessage(apperr.ValidationError, "invalid pet status")
		}
		p.Status = *in.Status
	}

	if err := u.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Archive soft-deletes. Archiving an already-archived pet is a no-op
// success; only a pet that never existed is a not-found.
func (u *Usecase) Archive(ctx context.Context, petID string) (*domain.Pet, error) {
	p, err := u.repo.GetByPetIDAny(ctx, petID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.PetNotFound)
		}
		return nil, err
	}
	if p.Archived {
		return p, nil
	}
	p.Archived = true
	if err := u.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) List(ctx context.Context, in ListInput) (*ListResult, error) {
	page, limit := paging.Normalize(in.Page, in.Limit)
	pets, total, err := u.repo.List(ctx, in.Filter, page, limit)
	if err != nil {
		return nil, err
	}
	if pets == nil {
		pets = []domain.Pet{}
	}
	return &ListResult{
		Pets:       pets,
		Pagination: paging.New(page, limit, total),
	}, nil
}
