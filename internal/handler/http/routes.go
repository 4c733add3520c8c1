package http

import (
	"github.com/MKhiriev/go-chat-config/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)
	router.With(h.rateLimit).Post("/api/v1/auth/token", h.exchangeToken)

	// management routes
	router.Group(func(r chi.Router) {
		r.Use(h.adminOnly)

		r.Post("/api/v1/applications", h.registerApplication)
		r.Post("/api/v1/credentials", h.issueCredential)
		r.Post("/api/v1/credentials/validate", h.validateCredential)
		r.Post("/api/v1/credentials/{code}/revoke", h.revokeCredential)
		r.Post("/api/v1/credentials/{code}/rotate", h.rotateCredential)
	})

	// routes of the authenticated application
	router.Route("/api/v1/applications/{code}", func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.sameApplication)

		writeScope := h.requireScope(models.ScopeConfigWrite)

		r.Get("/configuration", h.resolveConfiguration)
		r.With(writeScope).Patch("/configuration", h.updateApplicationConfig)
		r.With(writeScope).Put("/configuration/{key}", h.setApplicationDefault)

		r.Route("/companies/{companyID}/overrides", func(r chi.Router) {
			r.Get("/", h.listCompanyOverrides)
			r.With(writeScope).Post("/copy", h.copyFromApplication)
			r.With(writeScope).Post("/restore", h.restoreDefaults)
			r.With(writeScope).Put("/{key}", h.setCompanyOverride)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
