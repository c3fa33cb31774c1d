package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/okobobank/okobo/internal/bank/domain"
	"github.com/okobobank/okobo/internal/bank/store"
	"github.com/okobobank/okobo/pkg/idx"
	"github.com/okobobank/okobo/pkg/slogx"
)

var (
	ErrMissingFields    = errors.New("missing_fields")
	ErrInvalidEmail     = errors.New("invalid_email")
	ErrPasswordTooShort = errors.New("password_too_short")
	ErrEmailTaken       = errors.New("email_taken")
	ErrNoAccount        = errors.New("no_account")
	ErrWrongPassword    = errors.New("wrong_password")
)

// PasswordMinLength is the minimum accepted password length in bytes.
const PasswordMinLength = 6

// emailPattern accepts anything of the shape local@domain.tld with no
// whitespace. Deliberately loose; the address is never mailed, it only
// identifies the account.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Hasher digests and verifies passwords. Satisfied by cryptox.Argon2.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// TokenIssuer mints bearer tokens and resolves them back to a user id.
// Satisfied by jwtx.AccessIssuer.
type TokenIssuer interface {
	Mint(userID, name, email string) (string, error)
	Verify(token string) (string, error)
}

// AuthService implements the signup and signin flows on top of the store.
type AuthService struct {
	Store  store.Store
	Hasher Hasher
	Tokens TokenIssuer
}

// SignUpRequest carries the raw signup form values.
type SignUpRequest struct {
	Name     string
	Email    string
	Password string
}

// SignUp validates the request, hashes the password, creates the user and
// mints a bearer token so the new account is signed in immediately.
// Validation runs in a fixed order so the caller always sees the first
// failure: presence, password length, email shape, then uniqueness.
func (s *AuthService) SignUp(ctx context.Context, req SignUpRequest) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)

	if name == "" || email == "" || req.Password == "" {
		return domain.User{}, "", ErrMissingFields
	}
	if len(req.Password) < PasswordMinLength {
		return domain.User{}, "", ErrPasswordTooShort
	}
	if !emailPattern.MatchString(email) {
		return domain.User{}, "", ErrInvalidEmail
	}

	// Check first for a friendly error; the unique index still backstops
	// races between the check and the insert.
	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		return domain.User{}, "", ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, "", err
	}

	hash, err := s.Hasher.Hash(req.Password)
	if err != nil {
		return domain.User{}, "", err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, "", ErrEmailTaken
		}
		return domain.User{}, "", err
	}

	token, err := s.Tokens.Mint(user.ID, user.Name, user.Email)
	if err != nil {
		return domain.User{}, "", err
	}

	log.Info("user signed up", "user_id", user.ID)
	return user, token, nil
}

// SignIn authenticates an active user by email and password, records the
// login time and mints a bearer token. A failed attempt mutates nothing.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (domain.User, string, error) {
	log := slogx.FromContext(ctx)

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return domain.User{}, "", ErrMissingFields
	}
	if !emailPattern.MatchString(email) {
		return domain.User{}, "", ErrInvalidEmail
	}

	user, err := s.Store.Users().GetActiveUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, "", ErrNoAccount
		}
		return domain.User{}, "", err
	}

	if !s.Hasher.Verify(password, user.PasswordHash) {
		return domain.User{}, "", ErrWrongPassword
	}

	now := time.Now().UTC()
	if err := s.Store.Users().UpdateLastLogin(ctx, user.ID, now); err != nil {
		return domain.User{}, "", err
	}
	user.LastLogin = &now
	user.UpdatedAt = now

	token, err := s.Tokens.Mint(user.ID, user.Name, user.Email)
	if err != nil {
		return domain.User{}, "", err
	}

	log.Info("user signed in", "user_id", user.ID)
	return user, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
