package uow

import (
	"context"

	"pawhome-backend/internal/domain/application"
	"pawhome-backend/internal/domain/pet"
)

type Repos struct {
	Pets         pet.Repository
	Applications application.Repository
}

// UnitOfWork runs fn against repos bound to one database transaction. The
// approval cascade (pet → Adopted plus bulk-reject of competing Pending
// applications) goes through here so it commits or rolls back as a whole.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
