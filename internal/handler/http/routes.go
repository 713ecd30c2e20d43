package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	router.Route("/api/listener", func(r chi.Router) {
		r.Get("/", h.getListenerStatus)
		r.Post("/suspend", h.suspendListener)
		r.Post("/resume", h.resumeListener)
		r.Post("/stop", h.stopListener)
	})

	router.Post("/api/adapter/verify", h.verifyAdapter)
	router.Get("/api/version/", h.getServerVersion)

	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
