package http

import (
	"github.com/labstack/echo/v4"

	"pawhome-backend/internal/adapter/middleware"
	domain "pawhome-backend/internal/domain/application"
	"pawhome-backend/internal/domain/apperr"
	appuc "pawhome-backend/internal/usecase/application"
)

type ApplicationHandler struct{ uc *appuc.Usecase }

func NewApplicationHandler(uc *appuc.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

// The applicant's identity comes from the verified token, never the body;
// only the denormalized display name and the message are client-supplied.
type submitApplicationReq struct {
	PetID    string `json:"pet_id"              validate:"required,hex32"`
	UserName string `json:"user_name"           validate:"required,min=2,max=100"`
	Message  string `json:"application_message" validate:"required"`
}

type updateApplicationReq struct {
	Status string `json:"application_status" validate:"required,oneof=Pending Approved Rejected"`
}

type listApplicationsQuery struct {
	UserID string `query:"user_id"            validate:"omitempty,hex32"`
	PetID  string `query:"pet_id"             validate:"omitempty,hex32"`
	Status string `query:"application_status" validate:"omitempty,oneof=Pending Approved Rejected"`
	Page   string `query:"page"`
	Limit  string `query:"limit"`
}

func (h *ApplicationHandler) SubmitApplication(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return SendError(c, apperr.New(apperr.Unauthorized))
	}

	var req submitApplicationReq
	if err := c.Bind(&req); err != nil {
		return SendValidation(c, []FieldError{{Field: "_", Message: "invalid body"}})
	}
	if err := c.Validate(&req); err != nil {
		return SendValidation(c, ToFieldErrors(err))
	}

	a, err := h.uc.Submit(c.Request().Context(), appuc.SubmitInput{
		PetID:    req.PetID,
		UserID:   claims.UserID,
		UserName: req.UserName,
		Message:  req.Message,
	})
	if err != nil {
		return SendError(c, err)
	}
	return SendSuccess(c, a)
}

func (h *ApplicationHandler) GetApplication(c echo.Context) error {
	a, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return SendError(c, err)
	}
	return SendSuccess(c, a)
}

func (h *ApplicationHandler) ListApplications(c echo.Context) error {
	var q listApplicationsQuery
	if err := c.Bind(&q); err != nil {
		return SendValidation(c, []FieldError{{Field: "_", Message: "invalid query"}})
	}
	if err := c.Validate(&q); err != nil {
		return SendValidation(c, ToFieldErrors(err))
	}

	in := appuc.ListInput{
		Filter: domain.ListFilter{
			UserID: q.UserID,
			PetID:  q.PetID,
			Status: domain.Status(q.Status),
		},
	}
	var fieldErrs []FieldError
	in.Page, in.Limit, fieldErrs = parsePaging(q.Page, q.Limit, nil)
	if len(fieldErrs) > 0 {
		return SendValidation(c, fieldErrs)
	}

	res, err := h.uc.List(c.Request().Context(), in)
	if err != nil {
		return SendError(c, err)
	}
	return SendSuccess(c, res)
}

func (h *ApplicationHandler) SetApplicationStatus(c echo.Context) error {
	var req updateApplicationReq
	if err := c.Bind(&req); err != nil {
		return SendValidation(c, []FieldError{{Field: "_", Message: "invalid body"}})
	}
	if err := c.Validate(&req); err != nil {
		return SendValidation(c, ToFieldErrors(err))
	}

	a, err := h.uc.SetStatus(c.Request().Context(), c.Param("id"), domain.Status(req.Status))
	if err != nil {
		return SendError(c, err)
	}
	return SendSuccess(c, a)
}

func (h *ApplicationHandler) ArchiveApplication(c echo.Context) error {
	if _, err := h.uc.Archive(c.Request().Context(), c.Param("id")); err != nil {
		return SendError(c, err)
	}
	return SendSuccess(c, map[string]string{"message": "Application deleted successfully"})
}
