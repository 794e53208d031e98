package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campus-ballot/internal/domain"
	"github.com/heartmarshall/campus-ballot/internal/service/auth"
	"github.com/heartmarshall/campus-ballot/pkg/ctxutil"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	SignUp(ctx context.Context, input auth.SignUpInput) (*auth.AuthResult, error)
	SignIn(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	SignOut(ctx context.Context, userID uuid.UUID) error
	SendVerificationEmail(ctx context.Context, userID uuid.UUID) error
	VerifyEmail(ctx context.Context, input auth.VerifyEmailInput) (*domain.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type voterStatus interface {
	HasVoted(ctx context.Context, principalID uuid.UUID) (bool, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc    authService
	voters voterStatus
	errs   errorMapper
	log    *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, voters voterStatus, emailDomain string, logger *slog.Logger) *AuthHandler {
	log := logger.With("handler", "auth")
	return &AuthHandler{
		svc:    svc,
		voters: voters,
		errs:   errorMapper{log: log, emailDomain: emailDomain},
		log:    log,
	}
}

type signUpRequest struct {
	Email              string `json:"email"`
	Password           string `json:"password"`
	FullName           string `json:"fullName"`
	Course             string `json:"course"`
	YearOfStudy        int    `json:"yearOfStudy"`
	RegistrationNumber string `json:"registrationNumber"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type verifyRequest struct {
	Token string `json:"token"`
}

type authResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int64        `json:"expiresIn"`
	User         userResponse `json:"user"`
}

type userResponse struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	FullName           string     `json:"fullName"`
	Course             string     `json:"course"`
	YearOfStudy        int        `json:"yearOfStudy"`
	RegistrationNumber string     `json:"registrationNumber"`
	Role               string     `json:"role"`
	EmailVerified      bool       `json:"emailVerified"`
	VerifiedAt         *time.Time `json:"verifiedAt,omitempty"`
}

type meResponse struct {
	User     userResponse `json:"user"`
	HasVoted bool         `json:"hasVoted"`
}

// SignUp handles POST /auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	result, err := h.svc.SignUp(r.Context(), auth.SignUpInput{
		Email:              req.Email,
		Password:           req.Password,
		FullName:           req.FullName,
		Course:             req.Course,
		YearOfStudy:        req.YearOfStudy,
		RegistrationNumber: req.RegistrationNumber,
	})
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// SignIn handles POST /auth/login.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	result, err := h.svc.SignIn(r.Context(), auth.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	result, err := h.svc.Refresh(r.Context(), auth.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// SignOut handles POST /auth/logout. Requires authentication.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	if err := h.svc.SignOut(r.Context(), userID); err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ResendVerification handles POST /auth/verification. Requires authentication.
func (h *AuthHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	if err := h.svc.SendVerificationEmail(r.Context(), userID); err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}

// Verify handles POST /auth/verify with a JSON body and GET /auth/verify?token=
// for links opened straight from the mail.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if r.Method == http.MethodGet {
		req.Token = r.URL.Query().Get("token")
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	user, err := h.svc.VerifyEmail(r.Context(), auth.VerifyEmailInput{Token: req.Token})
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "verified",
		"user":   toUserResponse(user),
	})
}

// Me handles GET /auth/me. Requires authentication.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	user, err := h.svc.GetUser(r.Context(), userID)
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	voted, err := h.voters.HasVoted(r.Context(), userID)
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, meResponse{User: toUserResponse(user), HasVoted: voted})
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    int64(result.ExpiresIn.Seconds()),
		User:         toUserResponse(result.User),
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:                 u.ID.String(),
		Email:              u.Email,
		FullName:           u.FullName,
		Course:             u.Course,
		YearOfStudy:        u.YearOfStudy,
		RegistrationNumber: u.RegistrationNumber,
		Role:               u.Role.String(),
		EmailVerified:      u.EmailVerified,
		VerifiedAt:         u.VerifiedAt,
	}
}
