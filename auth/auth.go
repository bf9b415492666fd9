// Package auth is the mock authentication store: a hard-coded
// credential table compared in plain text. It is a functional mock for
// the storefront, not a security boundary; sessions still ride on
// signed tokens so the middleware has something to validate.
package auth

import (
	"errors"
	"time"

	"github.com/AleSenlle/el-brote-verde/models"
	"github.com/AleSenlle/el-brote-verde/storage"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

const tokenTTL = 24 * time.Hour

type credential struct {
	user     models.User
	password string
}

// The demo credential table.
var mockUsers = []credential{
	{user: models.User{ID: "1", Email: "admin@test.com", Name: "Administrator", Role: models.RoleAdmin}, password: "admin123"},
	{user: models.User{ID: "2", Email: "user@test.com", Name: "Demo User", Role: models.RoleUser}, password: "user123"},
}

// Service performs login/register/logout against the persisted session.
type Service struct {
	store  *storage.Store
	secret []byte
}

// New builds a service signing tokens with secret.
func New(store *storage.Store, secret string) *Service {
	return &Service{store: store, secret: []byte(secret)}
}

// Login checks the credential table and, on a match, persists the
// session and returns the user plus a signed token.
func (s *Service) Login(email, password string) (models.User, string, error) {
	if email == "" || password == "" {
		return models.User{}, "", ErrMissingCredentials
	}

	for _, c := range mockUsers {
		if c.user.Email == email && c.password == password {
			if err := storage.SaveSession(s.store, c.user); err != nil {
				return models.User{}, "", err
			}
			token, err := s.issueToken(c.user)
			if err != nil {
				return models.User{}, "", err
			}
			return c.user, token, nil
		}
	}
	return models.User{}, "", ErrInvalidCredentials
}

// Register creates a user-role account. There is no real user database;
// the new identity only lives in the session, as the mock always
// worked.
func (s *Service) Register(name, email, password, confirmPassword string) (models.User, string, error) {
	if email == "" || password == "" {
		return models.User{}, "", ErrMissingCredentials
	}
	if password != confirmPassword {
		return models.User{}, "", ErrPasswordMismatch
	}
	if len(password) < 6 {
		return models.User{}, "", ErrPasswordTooShort
	}

	user := models.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		Role:  models.RoleUser,
	}
	if err := storage.SaveSession(s.store, user); err != nil {
		return models.User{}, "", err
	}
	token, err := s.issueToken(user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Logout clears the persisted session.
func (s *Service) Logout() {
	storage.ClearSession(s.store)
}

// CurrentUser returns the persisted session identity, if any.
func (s *Service) CurrentUser() (models.User, bool) {
	return storage.LoadSession(s.store)
}

func (s *Service) issueToken(u models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"role":    u.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
