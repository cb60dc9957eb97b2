package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/models"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/repo"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/utils"
)

// UserStore is the slice of the user repo the auth service needs.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
}

type AuthService struct {
	users    UserStore
	sessions *SessionManager
	passcode string
}

func NewAuthService(users UserStore, sessions *SessionManager, passcode string) *AuthService {
	return &AuthService{users: users, sessions: sessions, passcode: passcode}
}

// Login checks the master passcode before touching the credential store, then
// the username/password pair. Every failure produces the same message so the
// response does not reveal which check failed.
func (s *AuthService) Login(ctx context.Context, username, password, passcode string) (*models.User, string, error) {
	if subtle.ConstantTimeCompare([]byte(passcode), []byte(s.passcode)) != 1 {
		return nil, "", utils.ErrUnauthorized("Invalid credentials")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", utils.ErrUnauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", utils.ErrUnauthorized("Invalid credentials")
	}

	token, err := s.sessions.Issue(user.ID)
	if err != nil {
		return nil, "", utils.WrapAppError(http.StatusInternalServerError, "could not create session", err)
	}

	return user, token, nil
}

// UpdateProfile changes the username and/or password of the admin identity.
// The password is re-hashed only when a new one is supplied.
func (s *AuthService) UpdateProfile(ctx context.Context, userID, username, password string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.ErrNotFound("User not found")
		}
		return nil, utils.WrapAppError(http.StatusInternalServerError, "could not load user", err)
	}

	if username != "" {
		user.Username = username
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, utils.WrapAppError(http.StatusInternalServerError, "could not update password", err)
		}
		user.PasswordHash = string(hash)
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.ErrNotFound("User not found")
		}
		return nil, utils.WrapAppError(http.StatusInternalServerError, "could not update user", err)
	}

	return updated, nil
}
