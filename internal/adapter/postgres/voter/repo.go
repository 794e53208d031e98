// Package voter implements VoterRecord persistence using PostgreSQL.
package voter

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campus-ballot/internal/adapter/postgres"
	"github.com/heartmarshall/campus-ballot/internal/domain"
)

const table = "voters"

// Repo provides voter-record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new voter repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Exists reports whether the principal has a voter record.
func (r *Repo) Exists(ctx context.Context, principalID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder().
		Select("1").
		From(table).
		Where(sq.Eq{"principal_id": principalID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build voter exists: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "voter", principalID)
	}
	return exists, nil
}

// CreateIfAbsent inserts the record unless one already exists for the
// principal. It reports whether a row was written.
func (r *Repo) CreateIfAbsent(ctx context.Context, rec domain.VoterRecord) (bool, error) {
	positions := make([]string, len(rec.PositionsVoted))
	for i, p := range rec.PositionsVoted {
		positions[i] = string(p)
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("principal_id", "email", "voted_at", "positions_voted", "total_votes").
		Values(rec.PrincipalID, rec.Email, rec.VotedAt, positions, rec.TotalVotes).
		Suffix("ON CONFLICT (principal_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build voter insert: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "voter", rec.PrincipalID)
	}
	return tag.RowsAffected() == 1, nil
}

// Get returns the voter record of the principal.
func (r *Repo) Get(ctx context.Context, principalID uuid.UUID) (*domain.VoterRecord, error) {
	query, args, err := postgres.Builder().
		Select("principal_id", "email", "voted_at", "positions_voted", "total_votes").
		From(table).
		Where(sq.Eq{"principal_id": principalID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build voter get: %w", err)
	}

	var (
		rec       domain.VoterRecord
		positions []string
		votedAt   time.Time
	)
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&rec.PrincipalID, &rec.Email, &votedAt, &positions, &rec.TotalVotes)
	if err != nil {
		return nil, postgres.MapError(err, "voter", principalID)
	}

	rec.VotedAt = votedAt.UTC()
	rec.PositionsVoted = make([]domain.PositionID, len(positions))
	for i, p := range positions {
		rec.PositionsVoted[i] = domain.PositionID(p)
	}
	return &rec, nil
}

// Count returns the number of voter records.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	query, args, err := postgres.Builder().Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build voter count: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "voter", "count")
	}
	return n, nil
}

// DeleteAll removes every voter record and returns how many were deleted.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := postgres.Builder().Delete(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build voter delete: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "voter", "all")
	}
	return tag.RowsAffected(), nil
}
