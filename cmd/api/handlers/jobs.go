package handlers

import (
	"context"

	"github.com/gocraft/work"
	"github.com/gpng/quip-bot/models"
	"go.uber.org/zap"
)

// JobHandleEvent is the queue name for inbound events
const JobHandleEvent = "handle_event"

const (
	jobArgBody       = "body"
	jobArgSetWebhook = "set_webhook"
)

func jobArgs(event models.InboundEvent) work.Q {
	args := work.Q{}
	if event.Body != nil {
		args[jobArgBody] = *event.Body
	}
	if event.SetWebhook != nil {
		args[jobArgSetWebhook] = *event.SetWebhook
	}
	return args
}

func eventFromJob(job *work.Job) (models.InboundEvent, error) {
	event := models.InboundEvent{}
	if _, ok := job.Args[jobArgBody]; ok {
		body := job.ArgString(jobArgBody)
		event.Body = &body
	}
	if _, ok := job.Args[jobArgSetWebhook]; ok {
		set := job.ArgBool(jobArgSetWebhook)
		event.SetWebhook = &set
	}
	return event, job.ArgError()
}

// HandleEventJob runs a queued event. It never fails so the job is never retried.
func (h *Handlers) HandleEventJob(job *work.Job) error {
	l := h.logger.With(zap.String("job", JobHandleEvent), zap.String("job_id", job.ID))

	event, err := eventFromJob(job)
	if err != nil {
		l.Error("invalid job arguments", zap.Error(err))
		return nil
	}

	h.run(context.Background(), event)

	return nil
}
