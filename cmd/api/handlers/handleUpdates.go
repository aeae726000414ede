package handlers

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/gpng/quip-bot/models"
	"go.uber.org/zap"
)

// maxBodyBytes caps inbound request bodies, telegram updates are far smaller
const maxBodyBytes = 1 << 20

// handleUpdates receives telegram webhook calls. It always answers 200 so
// telegram never redelivers an update.
func (h *Handlers) handleUpdates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			h.logger.Error("failed to read body", zap.Error(err))
			body = nil
		}

		h.dispatch(r.Context(), models.NewUpdateEvent(body))
		respond(w, message("ok"))
	}
}

// handleInvoke accepts a raw inbound event, {"body": "...", "set_webhook": true}
func (h *Handlers) handleInvoke() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		event := models.InboundEvent{}

		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&event); err != nil {
			h.logger.Warn("failed to decode event", zap.Error(err))
			respond(w, message("ok"))
			return
		}

		h.dispatch(r.Context(), event)
		respond(w, message("ok"))
	}
}

// handleSetWebhook registers the bot's webhook with telegram
func (h *Handlers) handleSetWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.dispatch(r.Context(), models.NewWebhookEvent())
		respond(w, message("ok"))
	}
}

func (h *Handlers) dispatch(ctx context.Context, event models.InboundEvent) {
	if h.queue != nil {
		_, err := h.queue.Enqueue(JobHandleEvent, jobArgs(event))
		if err == nil {
			return
		}
		h.logger.Error("failed to enqueue event, handling inline", zap.Error(err))
	}

	h.run(ctx, event)
}

func (h *Handlers) run(ctx context.Context, event models.InboundEvent) {
	out := h.dispatcher.Handle(ctx, event)
	h.logger.Debug("event handled",
		zap.String("invocation_id", out.InvocationID),
		zap.String("result", string(out.Result)),
		zap.String("reason", out.Reason),
		zap.Int("diagnostics", len(out.Diagnostics)),
	)
}
