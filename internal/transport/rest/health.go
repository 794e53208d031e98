package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const healthTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// feedStatus reports on the tally change feed: whether the NOTIFY session is
// up and how many result streams are attached to it.
type feedStatus interface {
	Connected() bool
	Subscribers() int
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db      dbPinger
	feed    feedStatus
	version string
}

// NewHealthHandler creates a HealthHandler. feed may be nil, in which case
// /health reports only the database.
func NewHealthHandler(db dbPinger, feed feedStatus, version string) *HealthHandler {
	return &HealthHandler{db: db, feed: feed, version: version}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the state of one dependency.
type CompStatus struct {
	Status      string `json:"status"`
	Latency     string `json:"latency,omitempty"`
	Subscribers *int   `json:"subscribers,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 when the database is unreachable. Ballots cannot be
// recorded without it, so the instance should leave the load balancer.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if _, err := h.pingDB(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports every component. A lost tally feed only degrades the
// instance: voting still works, live result streams stall until it
// reconnects.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: make(map[string]CompStatus, 2),
	}
	code := http.StatusOK

	if latency, err := h.pingDB(r.Context()); err != nil {
		resp.Components["database"] = CompStatus{Status: "down"}
		resp.Status = "down"
		code = http.StatusServiceUnavailable
	} else {
		resp.Components["database"] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	if h.feed != nil {
		subs := h.feed.Subscribers()
		comp := CompStatus{Status: "ok", Subscribers: &subs}
		if !h.feed.Connected() {
			comp.Status = "down"
			if resp.Status == "ok" {
				resp.Status = "degraded"
			}
		}
		resp.Components["tally_feed"] = comp
	}

	resp.Timestamp = time.Now()
	writeJSON(w, code, resp)
}

func (h *HealthHandler) pingDB(ctx context.Context) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	return time.Since(start), err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
