package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Setenv("ADMIN_ID", "1001")
	t.Setenv("DOMAIN", "https://quips.example.com")
	t.Setenv("ROUTE_PATH", "telegram")
	t.Setenv("STORE_BACKEND", "dynamodb")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, int64(1001), cfg.AdminID)
	assert.Equal(t, "BOT_TOKEN", cfg.TokenParameter)
	assert.Equal(t, SecretEnv, cfg.SecretBackend)
	assert.Equal(t, "quips", cfg.TableName)
	assert.Equal(t, "https://quips.example.com/telegram/", cfg.WebhookURL())
	assert.False(t, cfg.NeedsRedis())
}

func TestNewInvalid(t *testing.T) {
	for _, name := range []string{"ADMIN_ID", "DOMAIN"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
	t.Setenv("SECRET_BACKEND", "vault")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AdminID is a required field")
	assert.Contains(t, err.Error(), "Domain is a required field")
	assert.Contains(t, err.Error(), "SecretBackend must be one of [env keyring ssm]")
}

func TestWebhookURL(t *testing.T) {
	cfg := Config{Domain: "https://quips.example.com/", RoutePath: "updates"}
	assert.Equal(t, "https://quips.example.com/updates/", cfg.WebhookURL())
}

func TestNeedsRedis(t *testing.T) {
	assert.True(t, Config{StoreBackend: StoreRedis}.NeedsRedis())
	assert.True(t, Config{StoreBackend: StorePostgres, QueueEnabled: true}.NeedsRedis())
	assert.False(t, Config{StoreBackend: StorePostgres}.NeedsRedis())
}
