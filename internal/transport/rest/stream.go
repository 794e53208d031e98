package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/heartmarshall/campus-ballot/internal/domain"
	"github.com/heartmarshall/campus-ballot/internal/results"
)

// tallyFrame is one websocket message of the live results stream.
type tallyFrame struct {
	Type       string              `json:"type"`
	PositionID domain.PositionID   `json:"positionId"`
	Entries    []domain.TallyEntry `json:"entries"`
	Total      int64               `json:"total"`
}

// Stream handles GET /admin/results/stream. It upgrades to a websocket and
// sends the current tally of every position, then one frame per change.
// Messages from the client are ignored.
func (h *AdminHandler) Stream(w http.ResponseWriter, r *http.Request) {
	// The server's read and write timeouts are meant for plain requests.
	rc := http.NewResponseController(w)
	_ = rc.SetReadDeadline(time.Time{})
	_ = rc.SetWriteDeadline(time.Time{})

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		// Accept has already written the response.
		h.log.WarnContext(r.Context(), "websocket accept", slog.String("error", err.Error()))
		return
	}
	defer conn.CloseNow() //nolint:errcheck

	ctx, cancel := context.WithCancel(conn.CloseRead(r.Context()))
	defer cancel()

	// Written only by the delivery goroutine; read after unsubscribe waited for it.
	var writeErr error
	unsubscribe, err := h.svc.SubscribeTallies(ctx, func(t domain.Tally) {
		wctx, wcancel := context.WithTimeout(ctx, h.writeTimeout)
		defer wcancel()

		err := wsjson.Write(wctx, conn, tallyFrame{
			Type:       "tally",
			PositionID: t.PositionID,
			Entries:    t.Entries,
			Total:      results.PositionTotal(t),
		})
		if err != nil {
			writeErr = err
			cancel()
		}
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "subscribe tallies", slog.String("error", err.Error()))
		conn.Close(websocket.StatusInternalError, "subscription failed") //nolint:errcheck
		return
	}

	h.log.InfoContext(r.Context(), "results stream opened")
	<-ctx.Done()
	unsubscribe()

	switch {
	case writeErr != nil && !errors.Is(writeErr, context.Canceled):
		h.log.WarnContext(r.Context(), "results stream write", slog.String("error", writeErr.Error()))
		conn.Close(websocket.StatusPolicyViolation, "client too slow") //nolint:errcheck
	case r.Context().Err() != nil:
		conn.Close(websocket.StatusGoingAway, "server shutting down") //nolint:errcheck
	}
	h.log.InfoContext(r.Context(), "results stream closed")
}
