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

// SendVerificationEmail issues a new verification link for the user.
// It does nothing for an already verified user and returns ErrRateLimited
// when the previous link was sent less than the configured cooldown ago.
func (s *Service) SendVerificationEmail(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotAuthenticated
		}
		return fmt.Errorf("auth.SendVerificationEmail get user: %w", err)
	}
	if user.EmailVerified {
		return nil
	}

	last, ok, err := s.verifications.LatestCreatedAt(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("auth.SendVerificationEmail latest: %w", err)
	}
	if ok && s.now().Sub(last) < s.cfg.VerificationResendCooldown {
		return fmt.Errorf("auth.SendVerificationEmail: %w", domain.ErrRateLimited)
	}

	link, err := s.issueVerification(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("auth.SendVerificationEmail: %w", err)
	}

	s.sendVerification(ctx, user, link)
	s.log.InfoContext(ctx, "verification email re-sent", slog.String("user_id", user.ID.String()))
	return nil
}

// VerifyEmail consumes a verification token and marks the address verified.
func (s *Service) VerifyEmail(ctx context.Context, input VerifyEmailInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	invalid := domain.NewValidationError("token", "invalid or expired")

	token, err := s.verifications.GetByHash(ctx, auth.HashToken(input.Token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, invalid
		}
		return nil, fmt.Errorf("auth.VerifyEmail get token: %w", err)
	}

	now := s.now()
	if !token.IsUsable(now) {
		return nil, invalid
	}

	var user *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		used, err := s.verifications.MarkUsed(txCtx, token.ID, now)
		if err != nil {
			return fmt.Errorf("mark token used: %w", err)
		}
		if !used {
			return invalid
		}

		if err := s.users.MarkEmailVerified(txCtx, token.UserID, now); err != nil {
			return fmt.Errorf("mark verified: %w", err)
		}

		user, err = s.users.GetByID(txCtx, token.UserID)
		return err
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return nil, err
		}
		return nil, fmt.Errorf("auth.VerifyEmail: %w", err)
	}

	s.log.InfoContext(ctx, "email verified", slog.String("user_id", user.ID.String()))
	return user, nil
}
