package middleware

import (
	"net/http"

	"github.com/heartmarshall/campus-ballot/pkg/ctxutil"
)

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "NOT_AUTHENTICATED", "Please sign in to vote")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin lets only administrators through. Anonymous requests get 401,
// other users 403.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "NOT_AUTHENTICATED", "Please sign in")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
