package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gpng/quip-bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*QuipStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	pool := New("redis://"+mr.Addr(), "")
	t.Cleanup(func() { pool.Close() })
	return NewQuipStore(pool, "quip_bot_test", "quips"), mr
}

func TestQuipStore(t *testing.T) {
	ctx := context.Background()
	s, mr := newStore(t)

	quips, err := s.Scan(ctx)
	require.NoError(t, err)
	assert.Empty(t, quips)

	require.NoError(t, s.Put(ctx, models.Quip{ID: "zzz9876543", Text: "second"}))
	require.NoError(t, s.Put(ctx, models.Quip{ID: "abc123defg", Text: "buy milk"}))
	assert.Equal(t, "buy milk", mr.HGet("quip_bot_test:quips", "abc123defg"))

	quips, err = s.Scan(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Quip{
		{ID: "abc123defg", Text: "buy milk"},
		{ID: "zzz9876543", Text: "second"},
	}, quips)

	require.NoError(t, s.Delete(ctx, "abc123defg"))
	require.NoError(t, s.Delete(ctx, "does-not-exist"))

	quips, err = s.Scan(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Quip{{ID: "zzz9876543", Text: "second"}}, quips)
}

func TestQuipStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	pool := New("redis://127.0.0.1:1", "")
	defer pool.Close()
	s := NewQuipStore(pool, "quip_bot_test", "quips")

	assert.Error(t, s.Put(ctx, models.Quip{ID: "a", Text: "b"}))
	_, err := s.Scan(ctx)
	assert.Error(t, err)
	assert.Error(t, s.Delete(ctx, "a"))
}
