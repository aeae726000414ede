// Package secrets resolves the bot token from wherever it is kept.
package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// ErrNotFound is returned when a secret does not exist
var ErrNotFound = errors.New("secret not found")

// Env reads secrets from the live process environment on every lookup
type Env struct {
	lookup func(string) (string, bool)
}

// NewEnv source, pass os.LookupEnv in production
func NewEnv(lookup func(string) (string, bool)) Env {
	return Env{lookup: lookup}
}

// Secret named name
func (e Env) Secret(ctx context.Context, name string) (string, error) {
	value, ok := e.lookup(name)
	if !ok || value == "" {
		return "", fmt.Errorf("env %s: %w", name, ErrNotFound)
	}
	return value, nil
}

// Keyring reads secrets from the OS keychain
type Keyring struct {
	service string
}

// NewKeyring source for service
func NewKeyring(service string) Keyring {
	return Keyring{service: service}
}

// Secret stored under the service with name as the account
func (k Keyring) Secret(ctx context.Context, name string) (string, error) {
	value, err := keyring.Get(k.service, name)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("keyring %s/%s: %w", k.service, name, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("keyring %s/%s: %w", k.service, name, err)
	}
	return value, nil
}
