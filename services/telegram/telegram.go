package telegram

import (
	"context"
	"fmt"
	"sync"

	tgbotapi "github.com/dilfish/telegram-bot-api-up"
)

// Bot with all methods
type Bot struct {
	BotAPI *tgbotapi.BotAPI
}

// New bot, checks the token against the api
func New(token string) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{bot}, nil
}

// SendMessage text, parseMode may be empty for plain text
func (bot *Bot) SendMessage(ctx context.Context, chatID int64, text string, parseMode string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = parseMode
	if _, err := bot.BotAPI.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// SetWebhook points telegram at url
func (bot *Bot) SetWebhook(ctx context.Context, url string) error {
	res, err := bot.BotAPI.SetWebhook(tgbotapi.NewWebhook(url))
	if err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	if !res.Ok {
		return fmt.Errorf("set webhook: %s", res.Description)
	}
	return nil
}

// Clients caches one Bot per token so the api is only asked about a token once
type Clients struct {
	mu     sync.Mutex
	bots   map[string]*client
	newBot func(token string) (*Bot, error)
}

// client guards the getMe round trip of a single token, failures are retried
type client struct {
	mu  sync.Mutex
	bot *Bot
}

// NewClients cache backed by New
func NewClients() *Clients {
	return &Clients{bots: map[string]*client{}, newBot: New}
}

// Get returns the cached bot for token, creating it on first use. Only
// callers of the same token wait on its creation.
func (c *Clients) Get(token string) (*Bot, error) {
	c.mu.Lock()
	entry, ok := c.bots[token]
	if !ok {
		entry = &client{}
		c.bots[token] = entry
	}
	c.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.bot != nil {
		return entry.bot, nil
	}
	bot, err := c.newBot(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	entry.bot = bot
	return bot, nil
}
