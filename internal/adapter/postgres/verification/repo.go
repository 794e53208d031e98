// Package verification stores single-use email verification tokens.
package verification

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

const table = "verification_tokens"

// Repo provides verification-token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new verification token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a new token hash for the user.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.VerificationToken, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "user_id", "token_hash", "expires_at").
		Values(uuid.New(), userID, tokenHash, expiresAt).
		Suffix("RETURNING id, user_id, token_hash, expires_at, created_at, used_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build verification insert: %w", err)
	}

	var t domain.VerificationToken
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.UsedAt)
	if err != nil {
		return nil, postgres.MapError(err, "verification_token", userID)
	}
	return &t, nil
}

// GetByHash returns the token regardless of state; callers check IsUsable.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.VerificationToken, error) {
	query, args, err := postgres.Builder().
		Select("id", "user_id", "token_hash", "expires_at", "created_at", "used_at").
		From(table).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build verification select: %w", err)
	}

	var t domain.VerificationToken
	err = postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.UsedAt)
	if err != nil {
		return nil, postgres.MapError(err, "verification_token", "hash")
	}
	return &t, nil
}

// MarkUsed consumes the token. It reports false when the token was already
// used, so two concurrent verifications cannot both succeed.
func (r *Repo) MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("used_at", at).
		Where(sq.Eq{"id": id, "used_at": nil}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build verification use: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "verification_token", id)
	}
	return tag.RowsAffected() == 1, nil
}

// LatestCreatedAt returns when the newest token of the user was issued.
// The boolean is false when the user has no tokens.
func (r *Repo) LatestCreatedAt(ctx context.Context, userID uuid.UUID) (time.Time, bool, error) {
	query, args, err := postgres.Builder().
		Select("max(created_at)").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("build verification latest: %w", err)
	}

	var latest *time.Time
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&latest); err != nil {
		return time.Time{}, false, postgres.MapError(err, "verification_token", userID)
	}
	if latest == nil {
		return time.Time{}, false, nil
	}
	return *latest, true, nil
}

// DeleteExpired removes used and expired tokens.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Or{sq.Expr("expires_at <= now()"), sq.NotEq{"used_at": nil}}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build verification cleanup: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "verification_token", "expired")
	}
	return int(tag.RowsAffected()), nil
}
