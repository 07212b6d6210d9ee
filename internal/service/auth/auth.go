package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nexcraft-service/internal/domain/admin"
	xerrors "nexcraft-service/internal/pkg/errors"
	"nexcraft-service/internal/pkg/password"
	"nexcraft-service/internal/pkg/token"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// AdminStore is the persistence surface the auth service needs.
type AdminStore interface {
	Create(ctx context.Context, a *admin.Admin) error
	FindByEmail(ctx context.Context, email string) (*admin.Admin, error)
}

type Service struct {
	admins AdminStore
	tokens *token.Service
	hasher *password.Hasher
	logger *zap.Logger
}

func NewService(admins AdminStore, tokens *token.Service, hasher *password.Hasher, logger *zap.Logger) *Service {
	return &Service{
		admins: admins,
		tokens: tokens,
		hasher: hasher,
		logger: logger,
	}
}

// Signup creates a new admin account and logs it in. Duplicate emails
// fail with ErrDuplicateEntry; the pre-check keeps the common case to a
// single read and the unique index closes the race behind it.
func (s *Service) Signup(ctx context.Context, req *admin.SignupRequest) (*admin.TokenResponse, error) {
	_, err := s.admins.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, xerrors.ErrDuplicateEntry
	}
	if !errors.Is(err, xerrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	a := &admin.Admin{
		ID:           ulid.Make().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.admins.Create(ctx, a); err != nil {
		if errors.Is(err, xerrors.ErrDuplicateEntry) {
			return nil, xerrors.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	s.logger.Info("admin account created", zap.String("admin_id", a.ID))

	return s.tokenResponse(a)
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req *admin.LoginRequest) (*admin.TokenResponse, error) {
	a, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}

	if !s.hasher.Verify(req.Password, a.PasswordHash) {
		return nil, xerrors.ErrUnauthorized
	}

	return s.tokenResponse(a)
}

// ValidateToken is the auth gate core: it verifies the session token
// and resolves the subject email to a live admin. Every failure mode
// collapses to ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*admin.Admin, error) {
	email, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, xerrors.ErrUnauthorized
	}

	a, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			// Admin removed after the token was issued.
			return nil, xerrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve admin: %w", err)
	}

	return a, nil
}

func (s *Service) tokenResponse(a *admin.Admin) (*admin.TokenResponse, error) {
	accessToken, err := s.tokens.Issue(a.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &admin.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		Admin:       a.Info(),
	}, nil
}
