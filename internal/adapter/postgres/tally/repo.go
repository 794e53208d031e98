// Package tally implements the per-candidate vote counters using PostgreSQL.
package tally

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campus-ballot/internal/adapter/postgres"
	"github.com/heartmarshall/campus-ballot/internal/domain"
)

const table = "tallies"

// Repo provides tally persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tally repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Increment adds one vote to each (position, candidate) pair, creating rows
// that do not exist yet. All statements go out in one batch and in the
// order given, so concurrent ballots lock rows in the same order.
func (r *Repo) Increment(ctx context.Context, votes []domain.Vote) error {
	if len(votes) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, v := range votes {
		query, args, err := postgres.Builder().
			Insert(table).
			Columns("position_id", "candidate_id", "votes").
			Values(string(v.PositionID), string(v.CandidateID), 1).
			Suffix("ON CONFLICT (position_id, candidate_id) DO UPDATE SET votes = tallies.votes + 1, updated_at = now()").
			ToSql()
		if err != nil {
			return fmt.Errorf("build increment: %w", err)
		}
		batch.Queue(query, args...)
	}

	br := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	for _, v := range votes {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return postgres.MapError(err, "tally", v.PositionID)
		}
	}

	if err := br.Close(); err != nil {
		return postgres.MapError(err, "tally", "batch")
	}
	return nil
}

// CountsByPositions returns the stored counts of the given positions.
// Positions without any rows are absent from the result.
func (r *Repo) CountsByPositions(ctx context.Context, ids []domain.PositionID) (domain.TallyCounts, error) {
	if len(ids) == 0 {
		return domain.TallyCounts{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = string(id)
	}

	return r.selectCounts(ctx, sq.Eq{"position_id": keys})
}

// All returns every stored count.
func (r *Repo) All(ctx context.Context) (domain.TallyCounts, error) {
	return r.selectCounts(ctx, nil)
}

func (r *Repo) selectCounts(ctx context.Context, where sq.Sqlizer) (domain.TallyCounts, error) {
	b := postgres.Builder().
		Select("position_id", "candidate_id", "votes").
		From(table).
		OrderBy("position_id", "candidate_id")
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select tallies: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "tally", "select")
	}
	defer rows.Close()

	out := domain.TallyCounts{}
	for rows.Next() {
		var (
			pid, cid string
			votes    int64
		)
		if err := rows.Scan(&pid, &cid, &votes); err != nil {
			return nil, postgres.MapError(err, "tally", "scan")
		}
		byCandidate, ok := out[domain.PositionID(pid)]
		if !ok {
			byCandidate = map[domain.CandidateID]int64{}
			out[domain.PositionID(pid)] = byCandidate
		}
		byCandidate[domain.CandidateID(cid)] = votes
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "tally", "rows")
	}

	return out, nil
}

// DeleteAll removes every tally row and returns how many were deleted.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := postgres.Builder().Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete tallies: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "tally", "all")
	}
	return tag.RowsAffected(), nil
}
