package bot

import (
	"encoding/json"

	"github.com/gpng/quip-bot/models"
)

// RequestKind of a classified inbound event
type RequestKind int

// request kinds
const (
	RequestIgnored RequestKind = iota
	RequestWebhookRegistration
	RequestActionable
)

// reasons for ignoring an event
const (
	ReasonMissingBody      = "missing body"
	ReasonMalformedPayload = "malformed payload"
	ReasonNotAnUpdate      = "not a platform update"
	ReasonNotAMessage      = "not a message update"
	ReasonNonText          = "non-text message"
)

// ClassifiedRequest is what an inbound event turned out to be
type ClassifiedRequest struct {
	Kind    RequestKind
	Reason  string
	Message *models.Message
	Text    string
}

func ignored(reason string) ClassifiedRequest {
	return ClassifiedRequest{Kind: RequestIgnored, Reason: reason}
}

// Classify decides what to do with an inbound event without touching any
// collaborator.
func Classify(event models.InboundEvent) ClassifiedRequest {
	if event.WantsWebhook() {
		return ClassifiedRequest{Kind: RequestWebhookRegistration}
	}
	if event.Body == nil {
		return ignored(ReasonMissingBody)
	}

	update := models.TelegramUpdate{}
	if err := json.Unmarshal([]byte(*event.Body), &update); err != nil {
		return ignored(ReasonMalformedPayload)
	}
	if update.UpdateID == nil {
		return ignored(ReasonNotAnUpdate)
	}
	if update.Message == nil {
		return ignored(ReasonNotAMessage)
	}
	if update.Message.Text == nil {
		return ignored(ReasonNonText)
	}

	return ClassifiedRequest{
		Kind:    RequestActionable,
		Message: update.Message,
		Text:    *update.Message.Text,
	}
}
