package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/campus-ballot/internal/auth"
	"github.com/heartmarshall/campus-ballot/internal/domain"
)

// SignOut revokes all refresh tokens of the user.
func (s *Service) SignOut(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.SignOut: %w", err)
	}

	s.log.InfoContext(ctx, "user signed out", slog.String("user_id", userID.String()))
	return nil
}

// Refresh performs token rotation and returns new access/refresh tokens.
// If the refresh token is not found (revoked or reused), logs a warning and returns ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsRevoked() || token.IsExpired(s.now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}
	if user.Status == domain.AccountStatusSuspended {
		return nil, domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}

// ValidateToken validates an access token and returns the user ID and role.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return claims.UserID, claims.Role, nil
}

// CleanupExpiredTokens removes expired or revoked refresh tokens and spent
// verification tokens. Returns the number of rows deleted.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	refresh, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens refresh: %w", err)
	}

	verification, err := s.verifications.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "verification token cleanup failed", slog.String("error", err.Error()))
		return refresh, fmt.Errorf("auth.CleanupExpiredTokens verification: %w", err)
	}

	count := refresh + verification
	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens",
			slog.Int("refresh", refresh),
			slog.Int("verification", verification))
	}
	return count, nil
}
