package http

import (
	"strconv"

	"github.com/labstack/echo/v4"

	domain "pawhome-backend/internal/domain/pet"
	petuc "pawhome-backend/internal/usecase/pet"
)

type PetHandler struct{ uc *petuc.Usecase }

func NewPetHandler(uc *petuc.Usecase) *PetHandler { return &PetHandler{uc: uc} }

type createPetReq struct {
	Name        string `json:"pet_name"        validate:"required"`
	Species     string `json:"pet_species"     validate:"required,oneof=Dog Cat Other"`
	Breed       string `json:"pet_breed"       validate:"required"`
	Age         *int   `json:"pet_age"         validate:"required,gte=0,lte=30"`
	Gender      string `json:"pet_gender"      validate:"required,oneof=Male Female"`
	Size        string `json:"pet_size"        validate:"required,oneof=Small Medium Large"`
	Description string `json:"pet_description" validate:"required"`
	ImageURL    string `json:"pet_image_url"   validate:"required,url"`
	Location    string `json:"pet_location"    validate:"required"`
	Status      string `json:"pet_status"      validate:"omitempty,oneof=Available Pending Adopted"`
}

type updatePetReq struct {
	Name        *string `json:"pet_name"        validate:"omitempty,min=1"`
	Species     *string `json:"pet_species"     validate:"omitempty,oneof=Dog Cat Other"`
	Breed       *string `json:"pet_breed"       validate:"omitempty,min=1"`
	Age         *int    `json:"pet_age"         validate:"omitempty,gte=0,lte=30"`
	Gender      *string `json:"pet_gender"      validate:"omitempty,oneof=Male Female"`
	Size        *string `json:"pet_size"        validate:"omitempty,oneof=Small Medium Large"`
	Description *string `json:"pet_description" validate:"omitempty"`
	ImageURL    *string `json:"pet_image_url"   validate:"omitempty,url"`
	Location    *string `json:"pet_location"    validate:"omitempty"`
	Status      *string `json:"pet_status"      validate:"omitempty,oneof=Available Pending Adopted"`
}

type listPetsQuery struct {
	Search  string `query:"search"`
	Species string `query:"species" validate:"omitempty,oneof=Dog Cat Other All"`
	Breed   string `query:"breed"`
	MinAge  string `query:"minAge"`
	MaxAge  string `query:"maxAge"`
	Status  string `query:"status"  validate:"omitempty,oneof=Available Pending Adopted"`
	Page    string `query:"page"`
	Limit   string `query:"limit"`
}

func (h *PetHandler) CreatePet(c echo.Context) error {
	var req createPetReq
	if err := c.Bind(&req); err != nil {
		return SendValidation(c, []FieldError{{Field: "_", Message: "invalid body"}})
	}
	if err := c.Validate(&req); err != nil {
		return SendValidation(c, ToFieldErrors(err))
	}

	p, err := h.uc.Create(c.Request().Context(), petuc.CreatePetInput{
		Name:        req.Name,
		Species:     domain.Species(req.Species),
		Breed:       req.Breed,
		Age:         *req.Age,
		Gender:      domain.Gender(req.Gender),
		Size:        domain.Size(req.Size),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
		Status:      domain.Status(req.Status),
	})
	if err != nil {
		return SendError(c, err)
	}
	return SendSuccess(c, p)
}

func (h *PetHandler) GetPet(c echo.Context) error {
	p, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return SendError(c, err)
	}
	return SendSuccess(c, p)
}

func (h *PetHandler) UpdatePet(c echo.Context) error {
	var req updatePetReq
	if err := c.Bind(&req); err != nil {
		return SendValidation(c, []FieldError{{Field: "_", Message: "invalid body"}})
	}
	if err := c.Validate(&req); err != nil {
		return SendValidation(c, ToFieldErrors(err))
	}

	in := petuc.UpdatePetInput{
		Name:        req.Name,
		Breed:       req.Breed,
		Age:         req.Age,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Location:    req.Location,
	}
	if req.Species != nil {
		s := domain.Species(*req.Species)
		in.Species = &s
	}
	if req.Gender != nil {
		g := domain.Gender(*req.Gender)
		in.Gender = &g
	}
	if req.Size != nil {
		s := domain.Size(*req.Size)
		in.Size = &s
	}
	if req.Status != nil {
		s := domain.Status(*req.Status)
		in.Status = &s
	}

	p, err := h.uc.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return SendError(c, err)
	}
	return SendSuccess(c, p)
}

func (h *PetHandler) ArchivePet(c echo.Context) error {
	if _, err := h.uc.Archive(c.Request().Context(), c.Param("id")); err != nil {
		return SendError(c, err)
	}
	return SendSuccess(c, map[string]string{"message": "Pet deleted successfully"})
}

func (h *PetHandler) ListPets(c echo.Context) error {
	var q listPetsQuery
	if err := c.Bind(&q); err != nil {
		return SendValidation(c, []FieldError{{Field: "_", Message: "invalid query"}})
	}
	if err := c.Validate(&q); err != nil {
		return SendValidation(c, ToFieldErrors(err))
	}

	in := petuc.ListInput{
		Filter: domain.ListFilter{
			Search:  q.Search,
			Species: domain.Species(q.Species),
			Breed:   q.Breed,
			Status:  domain.Status(q.Status),
		},
	}

	var fieldErrs []FieldError
	if q.MinAge != "" {
		n, err := strconv.Atoi(q.MinAge)
		if err != nil || n < 0 {
			fieldErrs = append(fieldErrs, FieldError{Field: "minAge", Message: "must be a non-negative integer"})
		} else {
			in.Filter.MinAge = &n
		}
	}
	if q.MaxAge != "" {
		n, err := strconv.Atoi(q.MaxAge)
		if err != nil || n < 0 {
			fieldErrs = append(fieldErrs, FieldError{Field: "maxAge", Message: "must be a non-negative integer"})
		} else {
			in.Filter.MaxAge = &n
		}
	}
	in.Page, in.Limit, fieldErrs = parsePaging(q.Page, q.Limit, fieldErrs)
	if len(fieldErrs) > 0 {
		return SendValidation(c, fieldErrs)
	}

	res, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return SendError(c, err)
	}
	return SendSuccess(c, res)
}

// parsePaging parses optional page/limit query values, collecting field
// errors instead of failing on the first one.
func parsePaging(page, limit string, errs []FieldError) (int, int, []FieldError) {
	var p, l int
	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			errs = append(errs, FieldError{Field: "page", Message: "must be a positive integer"})
		} else {
			p = n
		}
	}
	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 || n > 100 {
			errs = append(errs, FieldError{Field: "limit", Message: "must be between 1 and 100"})
		} else {
			l = n
		}
	}
	return p, l, errs
}
