package ballot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/campus-ballot/internal/domain"
)

// SubmitBallot records one vote per catalog position for the principal.
//
// Checks run in a fixed order and the first failure is returned before
// anything is written: ErrNotAuthenticated, ErrEmailNotVerified,
// ErrIneligibleDomain, ErrAlreadyVoted, ErrIncompleteBallot. Verification
// state is re-read from the user store, never taken from the caller.
//
// The tally increments and the voter record share one transaction. When a
// concurrent submission for the same principal wins the voter record, the
// transaction is rolled back and ErrAlreadyVoted is returned. Any other
// store failure is a *domain.TransportError.
func (s *Service) SubmitBallot(ctx context.Context, principal *domain.Principal, sel domain.Selections) (*domain.SubmitOutcome, error) {
	const op = "ballot.SubmitBallot"

	if principal == nil || principal.ID == uuid.Nil {
		return nil, domain.ErrNotAuthenticated
	}

	fresh, err := s.principals.ForceRefreshPrincipal(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return nil, domain.ErrNotAuthenticated
		}
		return nil, domain.NewTransportError(op, err)
	}
	if !fresh.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}
	if !fresh.HasEmailDomain(s.emailDomain) {
		return nil, domain.ErrIneligibleDomain
	}

	voted, err := s.voters.Exists(ctx, fresh.ID)
	if err != nil {
		return nil, domain.NewTransportError(op, err)
	}
	if voted {
		return nil, domain.ErrAlreadyVoted
	}

	if err := s.catalog.CheckSelections(sel); err != nil {
		return nil, err
	}

	votes, positions := s.ballotVotes(sel)
	rec := domain.VoterRecord{
		PrincipalID:    fresh.ID,
		Email:          fresh.Email,
		VotedAt:        s.now().UTC(),
		PositionsVoted: positions,
		TotalVotes:     len(votes),
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tallies.Increment(txCtx, votes); err != nil {
			return fmt.Errorf("increment tallies: %w", err)
		}

		created, err := s.voters.CreateIfAbsent(txCtx, rec)
		if err != nil {
			return fmt.Errorf("create voter record: %w", err)
		}
		if !created {
			return domain.ErrAlreadyVoted
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyVoted) {
			s.log.WarnContext(ctx, "concurrent ballot rejected",
				slog.String("principal_id", fresh.ID.String()))
			return nil, domain.ErrAlreadyVoted
		}
		s.log.ErrorContext(ctx, "ballot not recorded",
			slog.String("principal_id", fresh.ID.String()),
			slog.String("error", err.Error()))
		return nil, domain.NewTransportError(op, err)
	}

	s.log.InfoContext(ctx, "ballot recorded",
		slog.String("principal_id", fresh.ID.String()),
		slog.Int("votes", rec.TotalVotes))

	return &domain.SubmitOutcome{VoterRecord: rec}, nil
}

// ballotVotes lists the selections in catalog order, which is also the
// order rows are locked in.
func (s *Service) ballotVotes(sel domain.Selections) ([]domain.Vote, []domain.PositionID) {
	ids := s.catalog.PositionIDs()
	votes := make([]domain.Vote, 0, len(ids))
	for _, id := range ids {
		votes = append(votes, domain.Vote{PositionID: id, CandidateID: sel[id]})
	}
	return votes, ids
}

// HasVoted reports whether a voter record exists for the principal.
func (s *Service) HasVoted(ctx context.Context, principalID uuid.UUID) (bool, error) {
	voted, err := s.voters.Exists(ctx, principalID)
	if err != nil {
		return false, domain.NewTransportError("ballot.HasVoted", err)
	}
	return voted, nil
}
