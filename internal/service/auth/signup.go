package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/campus-ballot/internal/domain"
)

// SignUp registers a student account and mails a verification link.
// The new user is signed in straight away but cannot vote until verified.
// Returns ErrIneligibleDomain for a non-institutional email and
// ErrAlreadyExists if the email or registration number is taken.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*AuthResult, error) {
	input.normalize()

	// Step 1: Validate input
	if err := input.Validate(s.cfg.PasswordMinLength); err != nil {
		return nil, err
	}
	if !s.eligibleEmail(input.Email) {
		return nil, domain.ErrIneligibleDomain
	}

	// Step 2: Hash password
	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp: %w", err)
	}

	role := domain.UserRoleVoter
	if s.election.IsAdminEmail(input.Email) {
		role = domain.UserRoleAdmin
	}

	// Step 3: Create user + verification token in a transaction.
	// Email and registration number uniqueness are enforced by DB constraints.
	var (
		created *domain.User
		link    string
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := s.now()
		user, err := s.users.Create(txCtx, &domain.User{
			ID:                 uuid.New(),
			Email:              input.Email,
			PasswordHash:       hash,
			FullName:           input.FullName,
			Course:             input.Course,
			YearOfStudy:        input.YearOfStudy,
			RegistrationNumber: input.RegistrationNumber,
			Role:               role,
			Status:             domain.AccountStatusActive,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		link, err = s.issueVerification(txCtx, user.ID)
		if err != nil {
			return err
		}

		created = user
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.SignUp: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.SignUp: %w", err)
	}

	// Step 4: Send verification email
	s.sendVerification(ctx, created, link)

	// Step 5: Issue tokens
	result, err := s.issueTokens(ctx, created)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up",
		slog.String("user_id", created.ID.String()),
		slog.String("role", created.Role.String()))

	return result, nil
}
