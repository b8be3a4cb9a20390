package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, email, password string) (Summary, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(ctx context.Context, token string) (int, bool)
}

type Service struct {
	repo   Repository
	hasher Hasher
	issuer Issuer
	log    *slog.Logger
}

func NewService(repo Repository, hasher Hasher, issuer Issuer, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		issuer: issuer,
		log:    log.With("component", "user_service"),
	}
}

func (s *Service) Register(ctx context.Context, email, password string) (Summary, error) {
	if err := validateEmail(email); err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validatePassword(password); err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return Summary{}, fmt.Errorf("hash password: %w", err)
	}

	token, err := s.issuer.Issue()
	if err != nil {
		return Summary{}, fmt.Errorf("issue token: %w", err)
	}

	u, err := s.repo.Create(ctx, email, hash, token)
	if err != nil {
		return Summary{}, err
	}

	s.log.Info("user registered", "id", u.ID, "email", u.Email)
	return Summary{ID: u.ID, Email: u.Email}, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := s.hasher.Verify(password, u.PasswordHash); err != nil {
		s.log.Debug("password mismatch", "email", email)
		return "", ErrInvalidAuth
	}

	return u.Token, nil
}

// ValidateToken reports whether the token belongs to a registered identity
// and returns the owner's id. Only an exact match counts.
func (s *Service) ValidateToken(ctx context.Context, token string) (int, bool) {
	if token == "" {
		return 0, false
	}

	u, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		return 0, false
	}
	return u.ID, true
}
