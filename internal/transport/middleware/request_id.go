package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/campus-ballot/pkg/ctxutil"
)

// RequestIDHeader carries the correlation ID in both directions.
const RequestIDHeader = "X-Request-Id"

const maxRequestIDLen = 128

// RequestID propagates the caller's correlation ID, or assigns a UUID when
// the header is missing or unusable, and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}

// validRequestID accepts short printable ASCII, keeping log lines intact.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
