// Package services contains server-side business logic. AuthService
// orchestrates registration, login, and token verification over the user
// repository, the credential hasher, and the token codec.
package services

import (
	"context"
	"errors"

	"github.com/mkorchagin/authsvc/internal/common"
	"github.com/mkorchagin/authsvc/internal/logging"
	"github.com/mkorchagin/authsvc/internal/server/auth"
	"github.com/mkorchagin/authsvc/internal/server/models"
	"github.com/mkorchagin/authsvc/internal/server/repositories/users"
	"github.com/mkorchagin/authsvc/internal/server/token"
)

// Result is the outcome of a successful auth operation: the user's public
// attributes (password hash stripped) and a freshly signed session token.
type Result struct {
	User  *models.User
	Token string
}

// AuthService provides the three caller-facing operations:
//   - Register: create an account and issue a token
//   - Login: verify credentials and issue a token
//   - VerifyToken: validate a token and re-issue a fresh one
//
// Every operation is stateless per call; tokens carry their own expiry and
// there is no server-side session store.
type AuthService struct {
	repo   users.Repository
	hasher *auth.Hasher
	codec  *token.Codec
	logger logging.Logger
}

func NewAuthService(repo users.Repository, hasher *auth.Hasher, codec *token.Codec, logger logging.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		hasher: hasher,
		codec:  codec,
		logger: logger.With("module", "auth_service"),
	}
}

// Register creates a new account. An email already on file yields
// common.ErrUserExists and leaves the store untouched; the plaintext
// password is hashed before the single durable write. A uniqueness
// violation from a concurrent register of the same email is reported as
// ErrUserExists as well, not as an internal failure.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*Result, error) {

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrUserExists
	}
	if !errors.Is(err, common.ErrNotFound) {
		s.logger.Error(ctx, "user lookup failed", "email", email, "error", err.Error())
		return nil, common.ErrInternal
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err.Error())
		return nil, common.ErrInternal
	}

	user, err := s.repo.Create(ctx, &models.User{Email: email, Name: name, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrEmailTaken) {
			return nil, common.ErrUserExists
		}
		s.logger.Error(ctx, "user creation failed", "email", email, "error", err.Error())
		return nil, common.ErrInternal
	}

	return s.issue(ctx, user)
}

// Login authenticates email/password. An unknown email yields
// common.ErrUserNotFound, a wrong password common.ErrInvalidCredentials.
// The operation is read-only.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Result, error) {

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "email", email, "error", err.Error())
		return nil, common.ErrInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return s.issue(ctx, user)
}

// VerifyToken validates tokenString and, on success, re-issues a fresh token
// over the same user attributes. Every successful verification therefore
// extends the session by a full TTL window (sliding renewal); callers are
// expected to adopt the returned token.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*Result, error) {

	user, err := s.codec.Verify(tokenString)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	fresh, err := s.codec.Sign(user)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "error", err.Error())
		return nil, common.ErrInternal
	}

	return &Result{User: user, Token: fresh}, nil
}

// issue strips the password hash and signs a token over what remains.
func (s *AuthService) issue(ctx context.Context, user *models.User) (*Result, error) {
	pub := user.Public()

	tok, err := s.codec.Sign(pub)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "error", err.Error())
		return nil, common.ErrInternal
	}

	return &Result{User: pub, Token: tok}, nil
}
