package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/campus-ballot/internal/domain"
)

const transportErrorMessage = "We could not record your vote. Please try again; if this persists, contact an administrator."

type errorResponse struct {
	Error    string       `json:"error"`
	Code     string       `json:"code"`
	Position string       `json:"position,omitempty"`
	Fields   []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: message, Code: code})
}

// errorMapper turns service errors into HTTP responses. Every handler goes
// through it so that one outcome always gets the same status and code.
type errorMapper struct {
	log         *slog.Logger
	emailDomain string
}

func (m errorMapper) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation *domain.ValidationError
		ballot     *domain.BallotError
		transport  *domain.TransportError
	)

	switch {
	case errors.As(err, &validation):
		resp := errorResponse{Error: "invalid input", Code: "VALIDATION"}
		for _, fe := range validation.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)

	case errors.Is(err, domain.ErrNotAuthenticated):
		writeError(w, http.StatusUnauthorized, "NOT_AUTHENTICATED", "Please sign in to vote")
	case errors.Is(err, domain.ErrEmailNotVerified):
		writeError(w, http.StatusForbidden, "EMAIL_NOT_VERIFIED", "Please verify your email before voting")
	case errors.Is(err, domain.ErrIneligibleDomain):
		writeError(w, http.StatusForbidden, "INELIGIBLE_DOMAIN", fmt.Sprintf("Only %s emails are allowed", m.emailDomain))
	case errors.Is(err, domain.ErrAlreadyVoted):
		writeError(w, http.StatusConflict, "ALREADY_VOTED", "You have already cast your vote")

	case errors.Is(err, domain.ErrIncompleteBallot):
		resp := errorResponse{Error: "Please select a candidate for every position", Code: "INCOMPLETE_BALLOT"}
		if errors.As(err, &ballot) {
			resp.Position = string(ballot.PositionID)
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)

	case errors.As(err, &transport):
		m.log.ErrorContext(r.Context(), "store unavailable",
			slog.String("op", transport.Op),
			slog.String("error", transport.Cause.Error()),
		)
		if transport.Retryable() {
			w.Header().Set("Retry-After", "1")
		}
		writeError(w, http.StatusServiceUnavailable, "TRANSPORT_ERROR", transportErrorMessage)

	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please wait and try again.")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "forbidden")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "ALREADY_EXISTS", "an account with these details already exists")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")

	default:
		m.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}
