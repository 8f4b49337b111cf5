package handler

import (
	"github.com/go-chi/chi/v5"

	"token-auth-server/internal/security"
)

// SetupAuthRoutes : /api/auth. Только /me требует access токен
func SetupAuthRoutes(r chi.Router, h *AuthenticationHandler, validator security.AccessTokenValidator) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(InstrumentValidator(validator), WriteError))
			r.Get("/me", h.GetCurrentUser)
			r.Head("/me", h.GetCurrentUserHead)
		})
		r.Group(func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/refresh", h.RefreshToken)
			r.Post("/logout", h.Logout)
		})
	})
}

func SetupUserRoutes(r chi.Router, h *UserHandler) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.RegisterUser)
	})
}
