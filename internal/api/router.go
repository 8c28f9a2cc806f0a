package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"codearena/internal/api/handler"
	"codearena/internal/api/middleware"
	"codearena/internal/common/security"
)

// NewRouter wires the HTTP surface: /api/auth is public, everything else
// requires a valid token.
func NewRouter(
	authHandler *handler.AuthHandler,
	contestHandler *handler.ContestHandler,
	problemHandler *handler.ProblemHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			authHandler.RegisterRoutes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(security.TokenAuth))
			r.Use(middleware.Authenticator)

			r.Route("/contests", func(r chi.Router) {
				contestHandler.RegisterRoutes(r)
			})
			r.Route("/problems", func(r chi.Router) {
				problemHandler.RegisterRoutes(r)
			})
		})
	})

	return r
}
