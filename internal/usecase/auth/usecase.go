package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pawhome-backend/internal/auth"
	"pawhome-backend/internal/domain/apperr"
	"pawhome-backend/internal/domain/user"
	"pawhome-backend/pkg/id"
)

type Usecase struct {
	repo   user.Repository
	tokens *auth.Manager
}

func NewUsecase(r user.Repository, tokens *auth.Manager) *Usecase {
	return &Usecase{repo: r, tokens: tokens}
}

// Register creates an account with role "user". Hashing is an explicit step
// here, before persistence, never a storage-model hook.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	_, err := u.repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, apperr.New(apperr.EmailAlreadyExist)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usr := &user.User{
		UserID:   id.NewID32(),
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hash),
		Role:     user.RoleUser,
		Status:   "active",
	}
	if err := u.repo.Create(ctx, usr); err != nil {
		return nil, err
	}

	token, err := u.tokens.Generate(usr.UserID, usr.Email, usr.Role)
	if err != nil {
		return nil, err
	}
	return &Session{User: usr, Token: token}, nil
}

// Login answers INVALID_CREDENTIALS for unknown email and bad password
// alike; it never reveals which one was wrong.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*Session, error) {
	usr, err := u.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.InvalidCredentials)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(in.Password)) != nil {
		return nil, apperr.New(apperr.InvalidCredentials)
	}

	token, err := u.tokens.Generate(usr.UserID, usr.Email, usr.Role)
	if err != nil {
		return nil, err
	}
	return &Session{User: usr, Token: token}, nil
}

func (u *Usecase) Me(ctx context.Context, userID string) (*user.User, error) {
	usr, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.UserNotFound)
		}
		return nil, err
	}
	return usr, nil
}
