package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/worldsync/internal/metrics"
)

// Init builds the control API router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.timeout > 0 {
		router.Use(middleware.Timeout(h.timeout))
	}

	router.Handle("/metrics", metrics.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.With(withGZip).Get("/journal", h.listJournal)

		r.Route("/synchronizers", func(r chi.Router) {
			r.Get("/", h.listSynchronizers)
			r.Post("/", h.addSynchronizer)

			r.Route("/{host}/{port}", func(r chi.Router) {
				r.Use(withServiceAddress)

				r.Get("/", h.getSynchronizer)
				r.Delete("/", h.removeSynchronizer)

				r.Post("/connect", h.connect)
				r.Post("/disconnect", h.disconnect)

				r.Post("/session", h.createSession)
				r.Delete("/session", h.destroySession)
				r.Post("/session/join", h.joinSession)
				r.Post("/session/exit", h.exitSession)
				r.Post("/session/state", h.refreshSessionState)

				r.With(withGZip).Get("/entities", h.listEntities)
				r.With(withGZip).Post("/entities", h.addEntity)
				r.With(withGZip).Put("/entities/{entityID}", h.updateEntity)
				r.Delete("/entities/{entityID}", h.removeEntity)

				r.Post("/messages", h.sendMessage)
				r.Get("/users/{clientID}", h.getUserTag)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
