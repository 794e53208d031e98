package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/campus-ballot/internal/auth"
	"github.com/heartmarshall/campus-ballot/internal/domain"
)

// SignIn authenticates a user with email + password.
// Returns ErrUnauthorized if the email is unknown or the password is wrong,
// and ErrForbidden for suspended accounts.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if !s.eligibleEmail(input.Email) {
		return nil, domain.ErrIneligibleDomain
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.SignIn get user: %w", err)
	}

	if err := s.passwords.Compare(user.PasswordHash, input.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.SignIn: %w", err)
	}

	if user.Status == domain.AccountStatusSuspended {
		s.log.WarnContext(ctx, "suspended user attempted sign-in", slog.String("user_id", user.ID.String()))
		return nil, domain.ErrForbidden
	}

	// Admin list is configuration; promote accounts that were created before
	// their address was added.
	if !user.IsAdmin() && s.election.IsAdminEmail(user.Email) {
		if err := s.users.UpdateRole(ctx, user.ID, domain.UserRoleAdmin); err != nil {
			return nil, fmt.Errorf("auth.SignIn promote: %w", err)
		}
		user.Role = domain.UserRoleAdmin
		s.log.InfoContext(ctx, "user promoted to admin", slog.String("user_id", user.ID.String()))
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in", slog.String("user_id", user.ID.String()))
	return result, nil
}
