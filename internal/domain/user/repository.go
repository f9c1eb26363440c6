package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	// GetByEmail returns the non-archived user with that email.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByUserID returns the non-archived user with that public id.
	GetByUserID(ctx context.Context, userID string) (*User, error)
}
