package application

import "context"

// ListFilter narrows List results; zero values mean "no filter".
type ListFilter struct {
	UserID string
	PetID  string
	Status Status
}

type Repository interface {
	Create(ctx context.Context, a *Application) error
	// GetByApplicationID returns the non-archived application with that public id.
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// GetByApplicationIDAny ignores the archived flag (archival semantics).
	GetByApplicationIDAny(ctx context.Context, applicationID string) (*Application, error)
	// FindActiveByPetAndUser returns a non-archived Pending or Approved
	// application for the (pet, user) pair, the duplicate-submission guard.
	FindActiveByPetAndUser(ctx context.Context, petID, userID string) (*Application, error)
	Save(ctx context.Context, a *Application) error
	// List returns one page of non-archived applications matching f, newest
	// first, plus the total match count. Pet enrichment is the usecase's job.
	List(ctx context.Context, f ListFilter, page, limit int) ([]Application, int64, error)
	// RejectOtherPending flips every other non-archived Pending application
	// for petID to Rejected. Returns the number of rows changed.
	RejectOtherPending(ctx context.Context, petID, keepApplicationID string) (int64, error)
}
