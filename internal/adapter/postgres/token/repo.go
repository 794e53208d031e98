// Package token implements the RefreshToken repository using PostgreSQL.
package token

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

const table = "refresh_tokens"

var columns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "token_hash", "expires_at").
		Values(uuid.New(), userID, tokenHash, expiresAt).
		Suffix("RETURNING id, user_id, token_hash, expires_at, created_at, revoked_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build refresh_token insert: %w", err)
	}

	var t domain.RefreshToken
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", userID)
	}
	return &t, nil
}

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"token_hash": tokenHash, "revoked_at": nil}).
		Where("expires_at > now()").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build refresh_token select: %w", err)
	}

	var t domain.RefreshToken
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", "hash")
	}
	return &t, nil
}

// RevokeByID revokes a specific refresh token by setting revoked_at.
// Idempotent: revoking an already-revoked token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	return r.revoke(ctx, sq.Eq{"id": id}, id)
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	return r.revoke(ctx, sq.Eq{"user_id": userID}, userID)
}

func (r *Repo) revoke(ctx context.Context, where sq.Eq, key uuid.UUID) error {
	where["revoked_at"] = nil
	query, args, err := postgres.Builder().
		Update(table).
		Set("revoked_at", sq.Expr("now()")).
		Where(where).
		ToSql()
	if err != nil {
		return fmt.Errorf("build refresh_token revoke: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "refresh_token", key)
	}
	return nil
}

// DeleteExpired removes all expired or revoked tokens from the database.
// Returns the count of deleted tokens.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Or{sq.Expr("expires_at <= now()"), sq.NotEq{"revoked_at": nil}}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build refresh_token cleanup: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", "expired")
	}
	return int(tag.RowsAffected()), nil
}
