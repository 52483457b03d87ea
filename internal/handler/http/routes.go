package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/user/", h.registerUser)
		r.Get("/user/{username}", h.lookupUser)

		r.Post("/tweet/", h.createTweet)
		r.Get("/tweet/{tweetID}", h.getTweet)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
