package handlers

import (
	"github.com/go-chi/chi"
)

// Routes for app, telegram posts updates to /<routePath>/
func (h *Handlers) Routes(routePath string) chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.handleStatus())

	router.Post("/"+routePath, h.handleUpdates())
	router.Post("/"+routePath+"/", h.handleUpdates())
	router.Post("/invoke", h.handleInvoke())
	router.Post("/webhook", h.handleSetWebhook())

	return router
}
