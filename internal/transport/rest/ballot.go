package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/campus-ballot/internal/domain"
	"github.com/heartmarshall/campus-ballot/pkg/ctxutil"
)

type ballotService interface {
	SubmitBallot(ctx context.Context, principal *domain.Principal, sel domain.Selections) (*domain.SubmitOutcome, error)
	HasVoted(ctx context.Context, principalID uuid.UUID) (bool, error)
}

// BallotHandler serves the voter-facing ballot endpoints.
type BallotHandler struct {
	svc          ballotService
	positions    []domain.Position
	electionName string
	errs         errorMapper
}

// NewBallotHandler creates a BallotHandler. positions is the catalog in
// ballot order.
func NewBallotHandler(svc ballotService, positions []domain.Position, electionName, emailDomain string, logger *slog.Logger) *BallotHandler {
	return &BallotHandler{
		svc:          svc,
		positions:    positions,
		electionName: electionName,
		errs:         errorMapper{log: logger.With("handler", "ballot"), emailDomain: emailDomain},
	}
}

type ballotResponse struct {
	Election  string            `json:"election"`
	Positions []domain.Position `json:"positions"`
	HasVoted  bool              `json:"hasVoted"`
}

type submitRequest struct {
	Selections map[domain.PositionID]domain.CandidateID `json:"selections"`
}

type submitResponse struct {
	Status         string              `json:"status"`
	VotedAt        time.Time           `json:"votedAt"`
	PositionsVoted []domain.PositionID `json:"positionsVoted"`
	TotalVotes     int                 `json:"totalVotes"`
}

// Get handles GET /ballot.
func (h *BallotHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	voted, err := h.svc.HasVoted(r.Context(), userID)
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ballotResponse{
		Election:  h.electionName,
		Positions: h.positions,
		HasVoted:  voted,
	})
}

// Status handles GET /ballot/status.
func (h *BallotHandler) Status(w http.ResponseWriter, r *http.Request) {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())

	voted, err := h.svc.HasVoted(r.Context(), userID)
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"hasVoted": voted})
}

// Submit handles POST /ballot. Only the user id is taken from the token;
// the service re-reads everything else about the voter.
func (h *BallotHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	var principal *domain.Principal
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		principal = &domain.Principal{ID: userID}
	}

	outcome, err := h.svc.SubmitBallot(r.Context(), principal, domain.Selections(req.Selections))
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	rec := outcome.VoterRecord
	writeJSON(w, http.StatusCreated, submitResponse{
		Status:         "recorded",
		VotedAt:        rec.VotedAt,
		PositionsVoted: rec.PositionsVoted,
		TotalVotes:     rec.TotalVotes,
	})
}
