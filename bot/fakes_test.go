package bot

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/gpng/quip-bot/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testAdminID    = int64(1001)
	testWebhookURL = "https://quips.example.com/updates/"
)

var errBoom = errors.New("boom")

type memStore struct {
	mu      sync.Mutex
	quips   map[string]string
	puts    []models.Quip
	deletes []string
	scans   int
	err     error
}

func newMemStore(quips ...models.Quip) *memStore {
	s := &memStore{quips: map[string]string{}}
	for _, q := range quips {
		s.quips[q.ID] = q.Text
	}
	return s
}

func (s *memStore) Put(ctx context.Context, quip models.Quip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puts = append(s.puts, quip)
	if s.err != nil {
		return s.err
	}
	s.quips[quip.ID] = quip.Text
	return nil
}

func (s *memStore) Scan(ctx context.Context) ([]models.Quip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scans++
	if s.err != nil {
		return nil, s.err
	}
	quips := make([]models.Quip, 0, len(s.quips))
	for id, text := range s.quips {
		quips = append(quips, models.Quip{ID: id, Text: text})
	}
	sort.Slice(quips, func(i, j int) bool { return quips[i].ID < quips[j].ID })
	return quips, nil
}

func (s *memStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, id)
	if s.err != nil {
		return s.err
	}
	delete(s.quips, id)
	return nil
}

func (s *memStore) calls() int {
	return len(s.puts) + len(s.deletes) + s.scans
}

type sentMessage struct {
	chatID    int64
	text      string
	parseMode string
}

type fakeMessenger struct {
	sent     []sentMessage
	webhooks []string
	built    int
	err      error
	buildErr error
	tokens   []string
}

func (m *fakeMessenger) Messenger(token string) (Messenger, error) {
	m.built++
	m.tokens = append(m.tokens, token)
	if m.buildErr != nil {
		return nil, m.buildErr
	}
	return m, nil
}

func (m *fakeMessenger) SendMessage(ctx context.Context, chatID int64, text string, parseMode string) error {
	m.sent = append(m.sent, sentMessage{chatID, text, parseMode})
	return m.err
}

func (m *fakeMessenger) SetWebhook(ctx context.Context, url string) error {
	m.webhooks = append(m.webhooks, url)
	return m.err
}

type fakeSecrets struct {
	token string
	err   error
}

func (s fakeSecrets) Secret(ctx context.Context, name string) (string, error) {
	return s.token, s.err
}

// fixedRand always returns the same draws
type fixedRand struct {
	f float64
	i int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) Intn(n int) int   { return r.i % n }

type fixture struct {
	store     *memStore
	messenger *fakeMessenger
	secrets   fakeSecrets
	rnd       Rand
	logger    *zap.Logger
}

func newFixture(quips ...models.Quip) *fixture {
	return &fixture{
		store:     newMemStore(quips...),
		messenger: &fakeMessenger{},
		secrets:   fakeSecrets{token: "123:abc"},
		rnd:       fixedRand{f: 0.99},
		logger:    zap.NewNop(),
	}
}

func (f *fixture) dispatcher() *Dispatcher {
	return New(
		Settings{AdminID: testAdminID, TokenParameter: "BOT_TOKEN", WebhookURL: testWebhookURL},
		f.secrets,
		f.messenger,
		f.store,
		f.rnd,
		f.logger,
	)
}

func (f *fixture) handle(event models.InboundEvent) Outcome {
	return f.dispatcher().Handle(context.Background(), event)
}

func updateEvent(t *testing.T, chatType models.ChatType, senderID int64, text string) models.InboundEvent {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"update_id": 10000,
		"message": map[string]interface{}{
			"message_id": 1365,
			"date":       1441645532,
			"chat":       map[string]interface{}{"id": 42, "type": chatType},
			"from":       map[string]interface{}{"id": senderID, "is_bot": false, "first_name": "Ada"},
			"text":       text,
		},
	})
	require.NoError(t, err)
	return models.NewUpdateEvent(body)
}

func adminCommand(t *testing.T, text string) models.InboundEvent {
	return updateEvent(t, models.ChatPrivate, testAdminID, text)
}

func rawEvent(body string) models.InboundEvent {
	return models.InboundEvent{Body: &body}
}
