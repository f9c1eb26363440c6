package pet

import (
	domain "pawhome-backend/internal/domain/pet"
	"pawhome-backend/pkg/paging"
)

type CreatePetInput struct {
	Name        string
	Species     domain.Species
	Breed       string
	Age         int
	Gender      domain.Gender
	Size        domain.Size
	Description string
	ImageURL    string
	Location    string
	// Optional; empty means Available.
	Status domain.Status
}

// UpdatePetInput is a partial merge: nil fields are left untouched.
type UpdatePetInput struct {
	Name        *string
	Species     *domain.Species
	Breed       *string
	Age         *int
	Gender      *domain.Gender
	Size        *domain.Size
	Description *string
	ImageURL    *string
	Location    *string
	Status      *domain.Status
}

type ListInput struct {
	Filter domain.ListFilter
	Page   int
	Limit  int
}

type ListResult struct {
	Pets       []domain.Pet      `json:"pets"`
	Pagination paging.Pagination `json:"pagination"`
}
