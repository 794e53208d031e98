package middleware

import (
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/heartmarshall/campus-ballot/internal/config"
)

// CORS answers preflight requests and tags responses for allowed origins.
//
// Entries in AllowedOrigins are exact origins, "*", or glob patterns such
// as "https://*.kab.ac.ug" for faculty subdomains. The matching origin is
// echoed back rather than "*" so credentialed requests keep working.
func CORS(cfg config.CORSConfig) Middleware {
	origins := splitList(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := origin != "" && originAllowed(origin, origins)
			if allowed {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			if allowed {
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func originAllowed(origin string, allowed []string) bool {
	for _, a := range allowed {
		if a == "*" || strings.EqualFold(a, origin) {
			return true
		}
		if strings.Contains(a, "*") {
			if ok, _ := path.Match(strings.ToLower(a), strings.ToLower(origin)); ok {
				return true
			}
		}
	}
	return false
}
