package auth

import (
	"time"

	"github.com/heartmarshall/campus-ballot/internal/domain"
)

// AuthResult is returned by SignUp, SignIn and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	ExpiresIn    time.Duration
	User         *domain.User
}
