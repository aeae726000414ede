package models

import (
	"encoding/json"
	"fmt"
)

// ChatType of a telegram chat
type ChatType string

// chat types
const (
	ChatPrivate    ChatType = "private"
	ChatGroup      ChatType = "group"
	ChatSupergroup ChatType = "supergroup"
	ChatChannel    ChatType = "channel"
)

// UnmarshalJSON rejects chat types telegram does not send
func (t *ChatType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch ChatType(s) {
	case ChatPrivate, ChatGroup, ChatSupergroup, ChatChannel:
		*t = ChatType(s)
		return nil
	}
	return fmt.Errorf("unknown chat type %q", s)
}

// Chat model
type Chat struct {
	ID        int64    `json:"id"`
	Type      ChatType `json:"type"`
	Title     string   `json:"title,omitempty"`
	FirstName string   `json:"first_name,omitempty"`
	Username  string   `json:"username,omitempty"`
}

// User model
type User struct {
	ID           int64  `json:"id"`
	IsBot        bool   `json:"is_bot"`
	FirstName    string `json:"first_name"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
}

// Message model
type Message struct {
	MessageID int     `json:"message_id"`
	Date      int64   `json:"date"`
	Chat      Chat    `json:"chat"`
	From      User    `json:"from"`
	Text      *string `json:"text,omitempty"`
}

// IsPrivate reports whether the message was sent in a one to one chat
func (m *Message) IsPrivate() bool {
	return m.Chat.Type == ChatPrivate
}

// TelegramUpdate model
type TelegramUpdate struct {
	UpdateID *int64   `json:"update_id,omitempty"`
	Message  *Message `json:"message,omitempty"`
}
