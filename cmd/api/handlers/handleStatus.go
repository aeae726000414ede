package handlers

import (
	"net/http"
)

type statusResponse struct {
	Version int  `json:"version"`
	Queued  bool `json:"queued"`
}

// handleStatus returns the api version and whether events go through the queue
func (h *Handlers) handleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := statusResponse{
			Version: 1,
			Queued:  h.queue != nil,
		}
		respond(w, dataMessage(status, "API responding"))
	}
}
