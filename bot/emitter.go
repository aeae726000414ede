package bot

import (
	"context"

	"go.uber.org/zap"
)

// diagnostic stages
const (
	stageSecret      = "secret"
	stageMessenger   = "messenger"
	stageStorePut    = "store.put"
	stageStoreScan   = "store.scan"
	stageStoreDelete = "store.delete"
	stageSend        = "send"
	stageWebhook     = "webhook"
)

// invocation carries per event state
type invocation struct {
	ctx         context.Context
	id          string
	logger      *zap.Logger
	chatID      int64
	token       string
	messengers  Messengers
	messenger   Messenger
	diagnostics []Diagnostic
}

func (inv *invocation) fail(stage string, err error, msg string) {
	inv.logger.Error(msg, zap.String("stage", stage), zap.Error(err))
	inv.diagnostics = append(inv.diagnostics, Diagnostic{Stage: stage, Err: err})
}

func (inv *invocation) outcome(result Result, reason string) Outcome {
	return Outcome{
		InvocationID: inv.id,
		Result:       result,
		Reason:       reason,
		Diagnostics:  inv.diagnostics,
	}
}

// client is resolved lazily so ignored events never reach the platform
func (inv *invocation) client() (Messenger, bool) {
	if inv.messenger != nil {
		return inv.messenger, true
	}
	m, err := inv.messengers.Messenger(inv.token)
	if err != nil {
		inv.fail(stageMessenger, err, "failed to initialise messenger")
		return nil, false
	}
	inv.messenger = m
	return m, true
}

// send replies to the invocation's chat, best effort
func (inv *invocation) send(text string, parseMode string) {
	m, ok := inv.client()
	if !ok {
		return
	}
	if err := m.SendMessage(inv.ctx, inv.chatID, text, parseMode); err != nil {
		inv.fail(stageSend, err, "failed to send message")
	}
}

func (inv *invocation) registerWebhook(url string) {
	m, ok := inv.client()
	if !ok {
		return
	}
	if err := m.SetWebhook(inv.ctx, url); err != nil {
		inv.fail(stageWebhook, err, "failed to register webhook")
		return
	}
	inv.logger.Info("webhook registered", zap.String("url", url))
}
