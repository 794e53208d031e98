package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/campus-ballot/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health *HealthHandler
	Auth   *AuthHandler
	Ballot *BallotHandler
	Admin  *AdminHandler
}

// Middlewares are built by the caller so that the router stays free of
// configuration.
type Middlewares struct {
	// Global wraps every route, outermost first.
	Global []middleware.Middleware
	// Auth resolves the bearer token into the request context.
	Auth middleware.Middleware
	// AuthLimit and BallotLimit throttle the credential and voting routes.
	AuthLimit   middleware.Middleware
	BallotLimit middleware.Middleware
	// TrustProxy takes the client address from X-Forwarded-For and
	// X-Real-IP. Enable it only behind a proxy that overwrites them, or
	// clients can pick their own rate limit bucket.
	TrustProxy bool
}

// NewRouter builds the HTTP API.
func NewRouter(h Handlers, mw Middlewares) http.Handler {
	r := chi.NewRouter()

	// Unset middleware become no-ops.
	mw.Auth = middleware.Chain(mw.Auth)
	mw.AuthLimit = middleware.Chain(mw.AuthLimit)
	mw.BallotLimit = middleware.Chain(mw.BallotLimit)

	if mw.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Chain(mw.Global...))

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Group(func(r chi.Router) {
		r.Use(mw.Auth)

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(mw.AuthLimit)
				r.Post("/signup", h.Auth.SignUp)
				r.Post("/login", h.Auth.SignIn)
				r.Post("/refresh", h.Auth.Refresh)
				r.Post("/verify", h.Auth.Verify)
				r.Get("/verify", h.Auth.Verify)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Post("/logout", h.Auth.SignOut)
				r.With(mw.AuthLimit).Post("/verification", h.Auth.ResendVerification)
				r.Get("/me", h.Auth.Me)
			})
		})

		r.Route("/ballot", func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/", h.Ballot.Get)
			r.Get("/status", h.Ballot.Status)
			r.With(mw.BallotLimit).Post("/", h.Ballot.Submit)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		// The only route that takes its token from the query string.
		r.With(middleware.QueryToken, mw.Auth, middleware.RequireAdmin).Get("/results/stream", h.Admin.Stream)

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth, middleware.RequireAdmin)
			r.Get("/results", h.Admin.Results)
			r.Get("/results/export", h.Admin.Export)
			r.Get("/stats", h.Admin.Stats)
			r.Post("/reset", h.Admin.Reset)
		})
	})

	return r
}
