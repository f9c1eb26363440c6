package pet

import "context"

// ListFilter narrows List results. Zero values mean "no filter";
// Species "All" is treated the same as empty.
type ListFilter struct {
	Search  string
	Species Species
	Breed   string
	MinAge  *int
	MaxAge  *int
	Status  Status
}

type Repository interface {
	Create(ctx context.Context, p *Pet) error
	// GetByPetID returns the non-archived pet with that public id.
	GetByPetID(ctx context.Context, petID string) (*Pet, error)
	// GetByPetIDAny ignores the archived flag. Archival needs it: archiving
	// an already-archived pet is a no-op success, not a not-found.
	GetByPetIDAny(ctx context.Context, petID string) (*Pet, error)
	// FindByPetIDs returns the non-archived pets among petIDs, for the
	// application-listing join. Missing or archived ids are simply absent.
	FindByPetIDs(ctx context.Context, petIDs []string) ([]Pet, error)
	Save(ctx context.Context, p *Pet) error
	// List returns one page of non-archived pets matching f, newest first,
	// plus the total match count.
	List(ctx context.Context, f ListFilter, page, limit int) ([]Pet, int64, error)
}
