// Package bot is the dispatch core of the quip bot. An inbound event is
// classified, routed to an admin command when the sender is the admin in a
// private chat, and otherwise handed to the broadcast policy which may relay a
// random stored quip back to the chat.
package bot

import (
	"context"

	"github.com/google/uuid"
	"github.com/gpng/quip-bot/models"
	"go.uber.org/zap"
)

// SecretSource resolves named secrets such as the bot token
type SecretSource interface {
	Secret(ctx context.Context, name string) (string, error)
}

// Store keeps quips
type Store interface {
	Put(ctx context.Context, quip models.Quip) error
	Scan(ctx context.Context) ([]models.Quip, error)
	Delete(ctx context.Context, id string) error
}

// Messenger talks to the messaging platform. An empty parseMode sends plain text.
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string, parseMode string) error
	SetWebhook(ctx context.Context, url string) error
}

// Messengers returns a Messenger authenticated with token
type Messengers interface {
	Messenger(token string) (Messenger, error)
}

// MessengersFunc adapts a function to Messengers
type MessengersFunc func(token string) (Messenger, error)

// Messenger calls f(token)
func (f MessengersFunc) Messenger(token string) (Messenger, error) {
	return f(token)
}

// Settings the dispatcher needs, assembled once at startup
type Settings struct {
	AdminID        int64
	TokenParameter string
	WebhookURL     string
}

// Dispatcher handles inbound events one at a time. It is safe for concurrent
// use as long as its collaborators are.
type Dispatcher struct {
	settings   Settings
	secrets    SecretSource
	messengers Messengers
	store      Store
	rnd        Rand
	logger     *zap.Logger
	commands   []command
}

// New dispatcher
func New(
	settings Settings,
	secrets SecretSource,
	messengers Messengers,
	store Store,
	rnd Rand,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		settings:   settings,
		secrets:    secrets,
		messengers: messengers,
		store:      store,
		rnd:        rnd,
		logger:     logger,
		commands:   commandTable(),
	}
}

// Handle runs a single invocation. It never fails: collaborator errors are
// logged and reported through Outcome.Diagnostics.
func (d *Dispatcher) Handle(ctx context.Context, event models.InboundEvent) Outcome {
	inv := &invocation{
		ctx:        ctx,
		id:         uuid.New().String(),
		messengers: d.messengers,
	}
	inv.logger = d.logger.With(zap.String("invocation_id", inv.id))

	token, err := d.secrets.Secret(ctx, d.settings.TokenParameter)
	if err != nil {
		inv.fail(stageSecret, err, "failed to fetch bot token")
		return inv.outcome(ResultAborted, "")
	}
	inv.token = token

	req := Classify(event)
	switch req.Kind {
	case RequestWebhookRegistration:
		inv.registerWebhook(d.settings.WebhookURL)
		return inv.outcome(ResultWebhookRegistered, "")
	case RequestIgnored:
		inv.logger.Debug("ignoring event", zap.String("reason", req.Reason))
		return inv.outcome(ResultIgnored, req.Reason)
	}

	inv.chatID = req.Message.Chat.ID
	inv.logger = inv.logger.With(zap.Int64("chat_id", inv.chatID))

	if cmd, arg, ok := d.route(req.Message, req.Text); ok {
		inv.logger = inv.logger.With(zap.String("command", cmd.name))
		return inv.outcome(cmd.run(d, inv, arg), "")
	}

	return inv.outcome(d.broadcast(inv, req.Message), "")
}
