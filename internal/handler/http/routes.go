package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/auth", func(r chi.Router) {
		// routes without an established session
		r.Post("/signup", h.signUp)
		r.With(h.authenticate(h.localStrategy)).Post("/login", h.login)
		r.Get("/logout", h.logout)
		r.Post("/sendOTP", h.sendOTP)
		r.Patch("/resetpassword/{id}", h.resetPassword)

		// routes requiring a valid session cookie
		r.With(h.authenticate(h.jwtCookieStrategy)).Get("/check", h.check)
	})

	return router
}
