package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/campus-ballot/internal/domain"
	"github.com/heartmarshall/campus-ballot/pkg/ctxutil"
)

// CurrentPrincipal returns the signed-in principal of the request.
// Returns ErrNotAuthenticated when nobody is signed in.
func (s *Service) CurrentPrincipal(ctx context.Context) (*domain.Principal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	return s.ForceRefreshPrincipal(ctx, userID)
}

// ForceRefreshPrincipal reads the principal from the user store. Email
// verification status always comes from here, never from token claims,
// because verification happens after the token was issued.
func (s *Service) ForceRefreshPrincipal(ctx context.Context, userID uuid.UUID) (*domain.Principal, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("auth.ForceRefreshPrincipal: %w", err)
	}
	if user.Status == domain.AccountStatusSuspended {
		return nil, domain.ErrNotAuthenticated
	}
	return user.Principal(), nil
}

// GetUser returns the full user record, for profile responses.
func (s *Service) GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.GetUser: %w", err)
	}
	return user, nil
}
