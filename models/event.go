package models

// InboundEvent is a single trigger of the bot. When SetWebhook is true the
// body is never looked at.
type InboundEvent struct {
	Body       *string `json:"body,omitempty"`
	SetWebhook *bool   `json:"set_webhook,omitempty"`
}

// NewUpdateEvent wraps a raw webhook body. An empty body yields an event
// without one.
func NewUpdateEvent(body []byte) InboundEvent {
	if len(body) == 0 {
		return InboundEvent{}
	}
	s := string(body)
	return InboundEvent{Body: &s}
}

// NewWebhookEvent asks for webhook registration
func NewWebhookEvent() InboundEvent {
	set := true
	return InboundEvent{SetWebhook: &set}
}

// WantsWebhook reports whether the event is a webhook registration request
func (e InboundEvent) WantsWebhook() bool {
	return e.SetWebhook != nil && *e.SetWebhook
}
