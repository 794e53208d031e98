package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a registered student or election administrator.
type User struct {
	ID                 uuid.UUID
	Email              string
	PasswordHash       string
	FullName           string
	Course             string
	YearOfStudy        int
	RegistrationNumber string
	Role               UserRole
	Status             AccountStatus
	EmailVerified      bool
	VerifiedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsAdmin reports whether the user can open the results dashboard.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// Principal returns the identity the ballot store acts on.
func (u *User) Principal() *Principal {
	return &Principal{
		ID:            u.ID,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		Role:          u.Role,
	}
}

// Principal is the identity of a signed-in voter or administrator.
type Principal struct {
	ID            uuid.UUID
	Email         string
	EmailVerified bool
	Role          UserRole
}

// HasEmailDomain reports whether the principal's email ends with suffix,
// ignoring case. An empty suffix matches nothing.
func (p *Principal) HasEmailDomain(suffix string) bool {
	if suffix == "" {
		return false
	}
	return strings.HasSuffix(strings.ToLower(p.Email), strings.ToLower(suffix))
}

// CanVote reports whether the principal is eligible to cast a ballot.
func (p *Principal) CanVote(suffix string) bool {
	return p.EmailVerified && p.HasEmailDomain(suffix)
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// VerificationToken is a single-use email verification link token.
type VerificationToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	UsedAt    *time.Time
}

// IsUsable reports whether the token can still verify an address.
func (t *VerificationToken) IsUsable(now time.Time) bool {
	return t.UsedAt == nil && !t.ExpiresAt.Before(now)
}
