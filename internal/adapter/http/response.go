package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"pawhome-backend/internal/domain/apperr"
)

// Envelope is the wire shape of every response. Errors carry a stable
// machine-readable key; clients must not parse messages.
type Envelope struct {
	Success bool         `json:"success"`
	Status  int          `json:"status"`
	Message string       `json:"message,omitempty"`
	Key     string       `json:"key,omitempty"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func SendSuccess(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Status:  http.StatusOK,
		Message: "Success",
		Data:    data,
	})
}

// SendError maps an *apperr.Error to its status and key. Anything else is an
// unanticipated failure: logged server-side, surfaced as INTERNAL_ERROR with
// no detail leaked.
func SendError(c echo.Context, err error) error {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		log.Printf("internal error: %s %s: %v", c.Request().Method, c.Path(), err)
		ae = apperr.New(apperr.InternalError)
	}
	status := apperr.HTTPStatus(ae.Key)
	return c.JSON(status, Envelope{
		Success: false,
		Status:  status,
		Message: ae.Message,
		Key:     string(ae.Key),
	})
}

// SendValidation reports schema failures before any business logic runs.
func SendValidation(c echo.Context, details []FieldError) error {
	ae := apperr.New(apperr.ValidationError)
	status := apperr.HTTPStatus(ae.Key)
	return c.JSON(status, Envelope{
		Success: false,
		Status:  status,
		Message: ae.Message,
		Key:     string(ae.Key),
		Errors:  details,
	})
}
