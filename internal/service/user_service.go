package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/zenithpay/travel-api/internal/auth"
	dom "github.com/zenithpay/travel-api/internal/domain"
	"github.com/zenithpay/travel-api/internal/repo"
	"github.com/zenithpay/travel-api/internal/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingCredentials = errors.New("email and password required")
)

// UserService handles registration, login and account lookups. Only
// Register and Login touch the plaintext password; every other read is
// a plain lookup.
type UserService struct {
	repo   repo.UserRepo
	tokens *auth.Issuer
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo, tokens *auth.Issuer) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

// Register creates a new account with a hashed password and issues a
// token for it. Duplicate emails are caught by the storage-layer unique
// constraint, not a check-then-insert, so concurrent registrations
// with the same email cannot both win.
func (s *UserService) Register(ctx context.Context, email, password string) (dom.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return dom.User{}, "", ErrMissingCredentials
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return dom.User{}, "", err
	}
	u, err := s.repo.Create(ctx, email, hash)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, "", ErrEmailTaken
		}
		return dom.User{}, "", err
	}
	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return dom.User{}, "", err
	}
	return u, token, nil
}

// Login verifies credentials and issues a fresh token. Each login is
// independent; earlier tokens stay valid until they expire.
func (s *UserService) Login(ctx context.Context, email, password string) (dom.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return dom.User{}, "", ErrMissingCredentials
	}
	u, err := s.FindByEmail(ctx, email)
	if err != nil {
		return dom.User{}, "", err
	}
	if !auth.CheckPassword(password, u.PasswordHash) {
		return dom.User{}, "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return dom.User{}, "", err
	}
	return u, token, nil
}

// FindByEmail returns the account with the given email (exact match).
func (s *UserService) FindByEmail(ctx context.Context, email string) (dom.User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}

// FindByID returns the account with the given ID.
func (s *UserService) FindByID(ctx context.Context, id int64) (dom.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, ErrUserNotFound
		}
		return dom.User{}, err
	}
	return u, nil
}
