// Package apperr is the service-wide error taxonomy. Every business failure
// is an *Error carrying a symbolic key; the HTTP layer maps keys to status
// codes and anything that is not an *Error collapses to InternalError.
package apperr

import "net/http"

type Key string

const (
	EmailAlreadyExist    Key = "EMAIL_ALREADY_EXIST"
	InvalidCredentials   Key = "INVALID_CREDENTIALS"
	Unauthorized         Key = "UNAUTHORIZED"
	Forbidden            Key = "FORBIDDEN"
	TokenExpired         Key = "TOKEN_EXPIRED"
	InvalidToken         Key = "INVALID_TOKEN"
	PetNotFound          Key = "PET_NOT_FOUND"
	PetNotAvailable      Key = "PET_NOT_AVAILABLE"
	DuplicateApplication Key = "DUPLICATE_APPLICATION"
	ApplicationNotFound  Key = "APPLICATION_NOT_FOUND"
	UserNotFound         Key = "USER_NOT_FOUND"
	ValidationError      Key = "VALIDATION_ERROR"
	InternalError        Key = "INTERNAL_ERROR"
)

var defaults = map[Key]struct {
	message string
	status  int
}{
	EmailAlreadyExist:    {"Email already exists.", http.StatusBadRequest},
	InvalidCredentials:   {"Invalid email or password", http.StatusUnauthorized},
	Unauthorized:         {"Unauthorized access", http.StatusUnauthorized},
	Forbidden:            {"Access forbidden", http.StatusForbidden},
	TokenExpired:         {"Token has expired", http.StatusUnauthorized},
	InvalidToken:         {"Invalid token", http.StatusUnauthorized},
	PetNotFound:          {"Pet not found", http.StatusNotFound},
	PetNotAvailable:      {"Pet is not available for adoption", http.StatusBadRequest},
	DuplicateApplication: {"You already have an active application for this pet", http.StatusBadRequest},
	ApplicationNotFound:  {"Application not found", http.StatusNotFound},
	UserNotFound:         {"User not found", http.StatusNotFound},
	ValidationError:      {"Validation error", http.StatusBadRequest},
	InternalError:        {"Internal server error", http.StatusInternalServerError},
}

type Error struct {
	Key     Key
	Message string
}

func (e *Error) Error() string { return string(e.Key) + ": " + e.Message }

// New returns the error for key with its default message.
func New(key Key) *Error {
	return &Error{Key: key, Message: defaults[key].message}
}

// NewWithMessage overrides the default human-readable message; the key stays
// the stable machine-readable part of the contract.
func NewWithMessage(key Key, message string) *Error {
	if message == "" {
		return New(key)
	}
	return &Error{Key: key, Message: message}
}

// HTTPStatus maps a key to its transport status code. Unknown keys are
// treated as internal failures.
func HTTPStatus(key Key) int {
	if d, ok := defaults[key]; ok {
		return d.status
	}
	return http.StatusInternalServerError
}
