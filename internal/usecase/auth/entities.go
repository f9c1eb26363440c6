package auth

import (
	"pawhome-backend/internal/domain/user"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// Session is the register/login payload: the sanitized user plus a signed
// bearer token.
type Session struct {
	User  *user.User `json:"user"`
	Token string     `json:"token"`
}
