package cmd

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sensortower/st-cli/internal/config"
)

type memKeyring struct {
	items map[string]keyring.Item
}

func newMemKeyring() *memKeyring {
	return &memKeyring{items: map[string]keyring.Item{}}
}

func (m *memKeyring) Get(key string) (keyring.Item, error) {
	item, ok := m.items[key]
	if !ok {
		return keyring.Item{}, keyring.ErrKeyNotFound
	}
	return item, nil
}

func (m *memKeyring) GetMetadata(string) (keyring.Metadata, error) {
	return keyring.Metadata{}, nil
}

func (m *memKeyring) Set(item keyring.Item) error {
	m.items[item.Key] = item
	return nil
}

func (m *memKeyring) Remove(key string) error {
	if _, ok := m.items[key]; !ok {
		return keyring.ErrKeyNotFound
	}
	delete(m.items, key)
	return nil
}

func (m *memKeyring) Keys() ([]string, error) {
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	return keys, nil
}

func withMemKeyring(t *testing.T) *memKeyring {
	t.Helper()
	mem := newMemKeyring()
	restore := config.SetOpenKeyring(func(keyring.Config) (keyring.Keyring, error) {
		return mem, nil
	})
	t.Cleanup(restore)
	return mem
}

func TestAuthLoginAndStatus(t *testing.T) {
	t.Setenv("ST_AUTH_TOKEN", "")
	mem := withMemKeyring(t)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"auth", "login", "--api-token", "tok-1234567890"})
		assert.NoError(t, err)
	})
	assert.Contains(t, output, "Token saved.")

	item, err := mem.Get("auth_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1234567890", string(item.Data))

	output = captureStdout(t, func() {
		err := Execute(context.Background(), []string{"auth", "status"})
		assert.NoError(t, err)
	})
	assert.Contains(t, output, "Token: configured")
	assert.Contains(t, output, "tok-...7890")
	assert.NotContains(t, output, "tok-1234567890")
	assert.Contains(t, output, "keychain")
}

func TestAuthLogin_EmptyToken(t *testing.T) {
	withMemKeyring(t)

	// A blank flag value falls back to stdin; empty stdin is an error.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_ = w.Close()
	oldStdin := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = oldStdin })

	err = Execute(context.Background(), []string{"auth", "login", "--api-token", "   "})
	require.Error(t, err)
}

func TestAuthLogin_TokenFromStdin(t *testing.T) {
	t.Setenv("ST_AUTH_TOKEN", "")
	mem := withMemKeyring(t)

	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, _ = w.WriteString("piped-token\n")
	_ = w.Close()
	oldStdin := os.Stdin
	os.Stdin = r
	t.Cleanup(func() { os.Stdin = oldStdin })

	_ = captureStdout(t, func() {
		err := Execute(context.Background(), []string{"auth", "login"})
		assert.NoError(t, err)
	})

	item, err := mem.Get("auth_token")
	require.NoError(t, err)
	assert.Equal(t, "piped-token", string(item.Data))
}

func TestAuthStatus_NotConfigured(t *testing.T) {
	t.Setenv("ST_AUTH_TOKEN", "")
	withMemKeyring(t)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"auth", "status"})
		assert.NoError(t, err)
	})
	assert.Contains(t, output, "Token: not configured")
}

func TestAuthStatus_EnvToken(t *testing.T) {
	t.Setenv("ST_AUTH_TOKEN", "env-token-abcdef")
	withMemKeyring(t)

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"auth", "status"})
		assert.NoError(t, err)
	})
	assert.Contains(t, output, "Token: configured")
	assert.Contains(t, output, "not stored in keychain")
}

func TestAuthLogout(t *testing.T) {
	t.Setenv("ST_AUTH_TOKEN", "")
	mem := withMemKeyring(t)
	mem.items["auth_token"] = keyring.Item{Key: "auth_token", Data: []byte("tok")}

	output := captureStdout(t, func() {
		err := Execute(context.Background(), []string{"auth", "logout"})
		assert.NoError(t, err)
	})
	assert.Contains(t, output, "Token removed.")
	assert.Empty(t, mem.items)

	// Logging out twice is not an error.
	err := Execute(context.Background(), []string{"auth", "logout"})
	assert.NoError(t, err)
}

func TestMaskToken(t *testing.T) {
	assert.Equal(t, "****", maskToken("short"))
	assert.Equal(t, "abcd...wxyz", maskToken("abcdefghijklmnopqrstuvwxyz"))
	assert.False(t, strings.Contains(maskToken("abcdefghijklmnop"), "efghijkl"))
}
