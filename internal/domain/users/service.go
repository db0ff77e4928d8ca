package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherhub/server/internal/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates an account for a previously unseen email. The stored
// password is a hash; the caller never sees it back in plaintext.
func (s *Service) Register(ctx context.Context, email, password string) (*User, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{Email: email, Password: hash}
	if err := s.repo.Insert(ctx, user); err != nil {
		// The unique email index catches registrations racing past the
		// lookup above.
		if errors.Is(err, ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// Authenticate resolves an email/password pair to the stored account,
// distinguishing an unknown email from a bad password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrWrongPassword
	}
	return user, nil
}
