package application

import (
	"context"
	"errors"

	domain "pawhome-backend/internal/domain/application"
	"pawhome-backend/internal/domain/apperr"
	petDomain "pawhome-backend/internal/domain/pet"
	"pawhome-backend/internal/domain/uow"
	"pawhome-backend/pkg/id"
	"pawhome-backend/pkg/paging"

	"gorm.io/gorm"
)

type Usecase struct {
	petRepo petDomain.Repository
	appRepo domain.Repository
	uow     uow.UnitOfWork
}

func NewUsecase(pets petDomain.Repository, apps domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{petRepo: pets, appRepo: apps, uow: tx}
}

// Submit runs the eligibility checks in a fixed order so error precedence is
// deterministic: pet existence, then pet availability, then the duplicate
// guard for the (pet, applicant) pair.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*domain.Application, error) {
	p, err := u.petRepo.GetByPetID(ctx, in.PetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.PetNotFound)
		}
		return nil, err
	}

	if p.Status != petDomain.StatusAvailable {
		return nil, apperr.New(apperr.PetNotAvailable)
	}

	_, err = u.appRepo.FindActiveByPetAndUser(ctx, in.PetID, in.UserID)
	switch {
	case err == nil:
		return nil, apperr.New(apperr.DuplicateApplication)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	a := &domain.Application{
		ApplicationID: id.NewID32(),
		PetID:         in.PetID,
		UserID:        in.UserID,
		UserName:      in.UserName,
		Message:       in.Message,
		Status:        domain.StatusPending,
		Archived:      false,
	}
	if err := u.appRepo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*domain.Application, error) {
	a, err := u.appRepo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.ApplicationNotFound)
		}
		return nil, err
	}
	return a, nil
}

// List pages non-archived applications and joins each row's pet at read
// time. Archived or missing pets surface as a null pet, not an error.
func (u *Usecase) List(ctx context.Context, in ListInput) (*ListResult, error) {
	page, limit := paging.Normalize(in.Page, in.Limit)
	apps, total, err := u.appRepo.List(ctx, in.Filter, page, limit)
	if err != nil {
		return nil, err
	}

	petIDs := make([]string, 0, len(apps))
	seen := make(map[string]bool, len(apps))
	for _, a := range apps {
		if !seen[a.PetID] {
			seen[a.PetID] = true
			petIDs = append(petIDs, a.PetID)
		}
	}
	pets, err := u.petRepo.FindByPetIDs(ctx, petIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*petDomain.Pet, len(pets))
	for i := range pets {
		byID[pets[i].PetID] = &pets[i]
	}

	out := make([]domain.WithPet, 0, len(apps))
	for _, a := range apps {
		out = append(out, domain.WithPet{Application: a, Pet: byID[a.PetID]})
	}

	return &ListResult{
		Applications: out,
		Pagination:   paging.New(page, limit, total),
	}, nil
}

// SetStatus moves an application to newStatus; any status may move to any
// other. An approval additionally marks the pet Adopted and bulk-rejects
// every competing Pending application for that pet, all inside one
// transaction, so the first approval wins and a failed cascade leaves no
// half-updated ledger behind.
//
// The pet write is unconditional: availability is not re-validated at
// approval time, so an admin can approve into an already-adopted pet. The
// cascade then finds no Pending siblings and changes nothing else.
func (u *Usecase) SetStatus(ctx context.Context, applicationID string, newStatus domain.Status) (*domain.Application, error) {
	if !domain.ValidStatus(newStatus) {
		return nil, apperr.NewWithMessage(apperr.ValidationError, "invalid application status")
	}

	if newStatus != domain.StatusApproved {
		a, err := u.appRepo.GetByApplicationID(ctx, applicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.New(apperr.ApplicationNotFound)
			}
			return nil, err
		}
		a.Status = newStatus
		if err := u.appRepo.Save(ctx, a); err != nil {
			return nil, err
		}
		return a, nil
	}

	var approved *domain.Application
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByApplicationID(ctx, applicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.New(apperr.ApplicationNotFound)
			}
			return err
		}

		a.Status = domain.StatusApproved
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		// Direct write, archived flag included. A dangling pet reference is
		// tolerated the way the original store's fire-and-forget update was.
		p, err := r.Pets.GetByPetIDAny(ctx, a.PetID)
		switch {
		case err == nil:
			p.Status = petDomain.StatusAdopted
			if err := r.Pets.Save(ctx, p); err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		if _, err := r.Applications.RejectOtherPending(ctx, a.PetID, a.ApplicationID); err != nil {
			return err
		}

		approved = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}

// Archive soft-deletes. Unlike pet archival there is no existence shortcut:
// re-archiving just returns the row with the flag still set.
func (u *Usecase) Archive(ctx context.Context, applicationID string) (*domain.Application, error) {
	a, err := u.appRepo.GetByApplicationIDAny(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.ApplicationNotFound)
		}
		return nil, err
	}
	if a.Archived {
		return a, nil
	}
	a.Archived = true
	if err := u.appRepo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}
