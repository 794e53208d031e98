package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/campus-ballot/internal/domain"
	"github.com/heartmarshall/campus-ballot/internal/results"
	"github.com/heartmarshall/campus-ballot/internal/service/ballot"
)

type adminService interface {
	Results(ctx context.Context) (results.Summary, error)
	Stats(ctx context.Context) (*domain.ElectionStats, error)
	Reset(ctx context.Context) (*domain.ResetResult, error)
	SubscribeTallies(ctx context.Context, onUpdate func(domain.Tally)) (ballot.Unsubscribe, error)
}

// resetConfirmation must be sent verbatim to clear the election.
const resetConfirmation = "DELETE"

// AdminHandler serves the results dashboard endpoints. Every route is
// mounted behind RequireAdmin.
type AdminHandler struct {
	svc          adminService
	electionName string
	errs         errorMapper
	log          *slog.Logger

	writeTimeout   time.Duration
	originPatterns []string
	now            func() time.Time
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, electionName string, writeTimeout time.Duration, originPatterns []string, logger *slog.Logger) *AdminHandler {
	log := logger.With("handler", "admin")
	return &AdminHandler{
		svc:            svc,
		electionName:   electionName,
		errs:           errorMapper{log: log},
		log:            log,
		writeTimeout:   writeTimeout,
		originPatterns: originPatterns,
		now:            time.Now,
	}
}

type candidateResultResponse struct {
	ID         domain.CandidateID `json:"id"`
	Name       string             `json:"name"`
	Votes      int64              `json:"votes"`
	Percentage string             `json:"percentage"`
	Winner     bool               `json:"winner"`
}

type positionResultResponse struct {
	ID         domain.PositionID         `json:"id"`
	Title      string                    `json:"title"`
	Total      int64                     `json:"total"`
	Winner     *domain.TallyEntry        `json:"winner"`
	Candidates []candidateResultResponse `json:"candidates"`
}

type resultsResponse struct {
	Election    string                   `json:"election"`
	TotalVotes  int64                    `json:"totalVotes"`
	Positions   []positionResultResponse `json:"positions"`
	GeneratedAt time.Time                `json:"generatedAt"`
}

type positionStatResponse struct {
	ID         domain.PositionID `json:"id"`
	Title      string            `json:"title"`
	TotalVotes int64             `json:"totalVotes"`
}

type statsResponse struct {
	Voters     int64                  `json:"voters"`
	TotalVotes int64                  `json:"totalVotes"`
	Positions  []positionStatResponse `json:"positions"`
}

type resetRequest struct {
	Confirm string `json:"confirm"`
}

// Results handles GET /admin/results.
func (h *AdminHandler) Results(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Results(r.Context())
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toResultsResponse(summary))
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

// Export handles GET /admin/results/export?format=csv|text|json.
func (h *AdminHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := domain.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = domain.ExportFormatCSV
	}
	if !format.IsValid() {
		h.errs.handleError(w, r, domain.NewValidationError("format", "must be csv, text or json"))
		return
	}

	summary, err := h.svc.Results(r.Context())
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	now := h.now()
	stamp := now.UTC().Format("20060102-150405")

	var (
		buf         bytes.Buffer
		contentType string
		ext         string
	)
	switch format {
	case domain.ExportFormatCSV:
		err = results.WriteCSV(&buf, summary)
		contentType, ext = "text/csv; charset=utf-8", "csv"
	case domain.ExportFormatText:
		var stats *domain.ElectionStats
		stats, err = h.svc.Stats(r.Context())
		if err == nil {
			err = results.WriteText(&buf, summary, stats.Voters, now)
		}
		contentType, ext = "text/plain; charset=utf-8", "txt"
	case domain.ExportFormatJSON:
		err = json.NewEncoder(&buf).Encode(h.toResultsResponse(summary))
		contentType, ext = "application/json", "json"
	}
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="election-results-`+stamp+`.`+ext+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}

// Reset handles POST /admin/reset. The body must be {"confirm":"DELETE"}.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}
	if req.Confirm != resetConfirmation {
		h.errs.handleError(w, r, domain.NewValidationError("confirm", `must be "DELETE"`))
		return
	}

	res, err := h.svc.Reset(r.Context())
	if err != nil {
		h.errs.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{
		"votersDeleted":    res.VotersDeleted,
		"tallyRowsDeleted": res.TallyRowsDeleted,
	})
}

func (h *AdminHandler) toResultsResponse(s results.Summary) resultsResponse {
	resp := resultsResponse{
		Election:    h.electionName,
		TotalVotes:  s.TotalVotes,
		Positions:   make([]positionResultResponse, 0, len(s.Positions)),
		GeneratedAt: h.now(),
	}
	for _, p := range s.Positions {
		pr := positionResultResponse{
			ID:         p.PositionID,
			Title:      p.Title,
			Total:      p.Total,
			Winner:     p.Winner,
			Candidates: make([]candidateResultResponse, 0, len(p.Candidates)),
		}
		for _, c := range p.Candidates {
			pr.Candidates = append(pr.Candidates, candidateResultResponse{
				ID:         c.CandidateID,
				Name:       c.Name,
				Votes:      c.Votes,
				Percentage: c.Percentage.StringFixed(1),
				Winner:     c.Winner,
			})
		}
		resp.Positions = append(resp.Positions, pr)
	}
	return resp
}

func toStatsResponse(s *domain.ElectionStats) statsResponse {
	resp := statsResponse{
		Voters:     s.Voters,
		TotalVotes: s.TotalVotes,
		Positions:  make([]positionStatResponse, 0, len(s.Positions)),
	}
	for _, p := range s.Positions {
		resp.Positions = append(resp.Positions, positionStatResponse{
			ID:         p.PositionID,
			Title:      p.Title,
			TotalVotes: p.TotalVotes,
		})
	}
	return resp
}
