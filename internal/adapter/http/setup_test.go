package http

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// perform runs a handler directly against a synthetic request. pathParam, if
// set, becomes the :id route parameter.
func perform(t *testing.T, e *echo.Echo, h echo.HandlerFunc, method, target, body, pathParam string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if pathParam != "" {
		c.SetParamNames("id")
		c.SetParamValues(pathParam)
	}
	if err := h(c); err != nil {
		t.Fatalf("handler returned an error instead of writing a response: %v", err)
	}
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %q)", err, rec.Body.String())
	}
	return env
}

func wantEnvelopeError(t *testing.T, rec *httptest.ResponseRecorder, status int, key string) Envelope {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Success {
		t.Fatal("error envelope claims success")
	}
	if env.Key != key {
		t.Fatalf("key = %q, want %q", env.Key, key)
	}
	if env.Status != status {
		t.Fatalf("envelope status = %d, want %d", env.Status, status)
	}
	return env
}

func hasFieldError(env Envelope, field string) bool {
	for _, fe := range env.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}
