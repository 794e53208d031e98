package ballot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/campus-ballot/internal/domain"
	"github.com/heartmarshall/campus-ballot/internal/results"
)

// Snapshot returns the normalized tally of every position in catalog order.
func (s *Service) Snapshot(ctx context.Context) ([]domain.Tally, error) {
	ids := s.catalog.PositionIDs()

	counts, err := s.tallies.CountsByPositions(ctx, ids)
	if err != nil {
		return nil, domain.NewTransportError("ballot.Snapshot", err)
	}

	tallies := make([]domain.Tally, len(ids))
	for i, id := range ids {
		tallies[i] = s.catalog.Normalize(id, counts[id])
	}
	return tallies, nil
}

// Results summarises the current tallies for the results dashboard.
func (s *Service) Results(ctx context.Context) (results.Summary, error) {
	tallies, err := s.Snapshot(ctx)
	if err != nil {
		return results.Summary{}, err
	}
	return results.Summarize(s.catalog.AllPositions(), tallies), nil
}

// Stats reports turnout and per-position vote totals.
func (s *Service) Stats(ctx context.Context) (*domain.ElectionStats, error) {
	voters, err := s.voters.Count(ctx)
	if err != nil {
		return nil, domain.NewTransportError("ballot.Stats", err)
	}

	tallies, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.ElectionStats{
		Voters:    voters,
		Positions: make([]domain.PositionStat, len(tallies)),
	}
	for i, t := range tallies {
		p, _ := s.catalog.PositionByID(t.PositionID)
		total := results.PositionTotal(t)
		stats.Positions[i] = domain.PositionStat{PositionID: t.PositionID, Title: p.Title, TotalVotes: total}
		stats.TotalVotes += total
	}
	return stats, nil
}

// Reset deletes every voter record and tally row in one transaction.
func (s *Service) Reset(ctx context.Context) (*domain.ResetResult, error) {
	var res domain.ResetResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if res.VotersDeleted, err = s.voters.DeleteAll(txCtx); err != nil {
			return fmt.Errorf("delete voters: %w", err)
		}
		if res.TallyRowsDeleted, err = s.tallies.DeleteAll(txCtx); err != nil {
			return fmt.Errorf("delete tallies: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, domain.NewTransportError("ballot.Reset", err)
	}

	s.log.WarnContext(ctx, "election reset",
		slog.Int64("voters_deleted", res.VotersDeleted),
		slog.Int64("tally_rows_deleted", res.TallyRowsDeleted))
	return &res, nil
}
