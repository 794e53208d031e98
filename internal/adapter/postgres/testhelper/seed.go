package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/campus-ballot/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a verified voter with an institutional address.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWith(t, pool, func(*domain.User) {})
}

// SeedUserWith inserts a user after letting mutate adjust the defaults.
func SeedUserWith(t *testing.T, pool *pgxpool.Pool, mutate func(*domain.User)) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:                 uuid.New(),
		Email:              "student-" + suffix + "@kab.ac.ug",
		PasswordHash:       "$2a$04$not.a.real.hash.but.long.enough.for.the.column",
		FullName:           "Test Student " + suffix,
		Course:             "BSc Computer Science",
		YearOfStudy:        2,
		RegistrationNumber: "24/U/" + suffix,
		Role:               domain.UserRoleVoter,
		Status:             domain.AccountStatusActive,
		EmailVerified:      true,
		VerifiedAt:         &now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	mutate(&user)

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, full_name, course, year_of_study,
		                    registration_number, role, status, email_verified, verified_at,
		                    created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		user.ID, user.Email, user.PasswordHash, user.FullName, user.Course, user.YearOfStudy,
		user.RegistrationNumber, string(user.Role), string(user.Status), user.EmailVerified, user.VerifiedAt,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// UniquePosition returns a position id no other test uses, so tally tests can
// run in parallel against the shared database.
func UniquePosition(prefix string) domain.PositionID {
	return domain.PositionID(prefix + "-" + uniqueSuffix())
}
