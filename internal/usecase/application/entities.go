package application

import (
	domain "pawhome-backend/internal/domain/application"
	"pawhome-backend/pkg/paging"
)

type SubmitInput struct {
	PetID string
	// Applicant identity from the access layer; UserName is denormalized
	// onto the application at submission time.
	UserID   string
	UserName string
	Message  string
}

type ListInput struct {
	Filter domain.ListFilter
	Page   int
	Limit  int
}

type ListResult struct {
	Applications []domain.WithPet  `json:"applications"`
	Pagination   paging.Pagination `json:"pagination"`
}
