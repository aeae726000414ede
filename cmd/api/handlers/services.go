package handlers

import (
	"context"

	"github.com/gocraft/work"
	"github.com/gpng/quip-bot/bot"
	"github.com/gpng/quip-bot/models"
	"go.uber.org/zap"
)

// Dispatcher runs one inbound event
type Dispatcher interface {
	Handle(ctx context.Context, event models.InboundEvent) bot.Outcome
}

// Queue defers events to the worker pool, *work.Enqueuer satisfies it
type Queue interface {
	Enqueue(jobName string, args map[string]interface{}) (*work.Job, error)
}

// Handlers struct
type Handlers struct {
	logger     *zap.Logger
	dispatcher Dispatcher
	queue      Queue
}

// New service, queue may be nil to handle events inline
func New(
	logger *zap.Logger,
	dispatcher Dispatcher,
	queue Queue,
) *Handlers {
	return &Handlers{logger, dispatcher, queue}
}
