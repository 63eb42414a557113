package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	ConfGetPath = "/conf_get"
	ConfSetPath = "/conf_set"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// every route requires the access token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post(h.apiPrefix+ConfGetPath, h.confGet)
		r.Post(h.apiPrefix+ConfSetPath, h.confSet)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
