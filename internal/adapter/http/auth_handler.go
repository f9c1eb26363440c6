package http

import (
	"github.com/labstack/echo/v4"

	"pawhome-backend/internal/adapter/middleware"
	"pawhome-backend/internal/domain/apperr"
	authuc "pawhome-backend/internal/usecase/auth"
)

type AuthHandler struct{ uc *authuc.Usecase }

func NewAuthHandler(uc *authuc.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type registerReq struct {
	UserName     string `json:"user_name"     validate:"required,min=2,max=100"`
	UserEmail    string `json:"user_email"    validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=6,max=100"`
}

type loginReq struct {
	UserEmail    string `json:"user_email"    validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return SendValidation(c, []FieldError{{Field: "_", Message: "invalid body"}})
	}
	if err := c.Validate(&req); err != nil {
		return SendValidation(c, ToFieldErrors(err))
	}

	session, err := h.uc.Register(c.Request().Context(), authuc.RegisterInput{
		Name:     req.UserName,
		Email:    req.UserEmail,
		Password: req.UserPassword,
	})
	if err != nil {
		return SendError(c, err)
	}
	return SendSuccess(c, session)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return SendValidation(c, []FieldError{{Field: "_", Message: "invalid body"}})
	}
	if err := c.Validate(&req); err != nil {
		return SendValidation(c, ToFieldErrors(err))
	}

	session, err := h.uc.Login(c.Request().Context(), authuc.LoginInput{
		Email:    req.UserEmail,
		Password: req.UserPassword,
	})
	if err != nil {
		return SendError(c, err)
	}
	return SendSuccess(c, session)
}

func (h *AuthHandler) Me(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return SendError(c, apperr.New(apperr.Unauthorized))
	}
	usr, err := h.uc.Me(c.Request().Context(), claims.UserID)
	if err != nil {
		return SendError(c, err)
	}
	return SendSuccess(c, usr)
}
