// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/campus-ballot/internal/adapter/postgres"
	"github.com/heartmarshall/campus-ballot/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "email", "password_hash", "full_name", "course", "year_of_study",
	"registration_number", "role", "status", "email_verified", "verified_at",
	"created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address, ignoring case.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, sq.Expr("lower(email) = lower(?)", email), email)
}

func (r *Repo) getOne(ctx context.Context, where sq.Sqlizer, key any) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user select: %w", err)
	}

	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", key)
	}
	return u, nil
}

// Create inserts a new user and returns the persisted domain.User.
// A duplicate email or registration number yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			u.ID, u.Email, u.PasswordHash, u.FullName, u.Course, u.YearOfStudy,
			u.RegistrationNumber, string(u.Role), string(u.Status), u.EmailVerified, u.VerifiedAt,
			u.CreatedAt, u.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user insert: %w", err)
	}

	created, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return created, nil
}

// MarkEmailVerified flags the address as verified. Verifying an already
// verified user keeps the original timestamp.
func (r *Repo) MarkEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("email_verified", true).
		Set("verified_at", sq.Expr("COALESCE(verified_at, ?)", at)).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build user verify: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

// UpdateRole changes the role of the user.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("role", string(role)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build user role: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "user", id)
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u      domain.User
		role   string
		status string
		year   int16
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Course, &year,
		&u.RegistrationNumber, &role, &status, &u.EmailVerified, &u.VerifiedAt,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.YearOfStudy = int(year)
	u.Role = domain.UserRole(role)
	u.Status = domain.AccountStatus(status)
	return &u, nil
}
