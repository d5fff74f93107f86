// Package config stores the API auth token in the OS keyring, falling back
// to an encrypted file keyring on headless systems.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/99designs/keyring"
)

const (
	serviceName = "st-cli"
	tokenKey    = "auth_token"

	envAuthToken       = "ST_AUTH_TOKEN"
	envKeyringBackend  = "ST_KEYRING_BACKEND"
	envKeyringPassword = "ST_KEYRING_PASSWORD"
	envCredentialsDir  = "ST_CREDENTIALS_DIR"

	keyringBackendAuto   = "auto"
	keyringBackendFile   = "file"
	keyringBackendSystem = "system"
)

// ErrNotConfigured is returned when no token is stored.
var ErrNotConfigured = errors.New("no stored credentials - run 'st auth login' first")

// openKeyring is a package-level function for opening keyrings.
// It can be replaced in tests to use a mock keyring.
var openKeyring = func(cfg keyring.Config) (keyring.Keyring, error) {
	return keyring.Open(cfg)
}

var userConfigDir = os.UserConfigDir

var stdinHasTTY = func() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// SetOpenKeyring allows replacing the keyring opener for testing.
// Returns a cleanup function that restores the original.
func SetOpenKeyring(fn func(keyring.Config) (keyring.Keyring, error)) func() {
	original := openKeyring
	openKeyring = fn
	return func() { openKeyring = original }
}

func keyringConfig() keyring.Config {
	cfg := keyring.Config{ServiceName: serviceName}

	backend := keyringBackendMode()
	if backend == keyringBackendSystem {
		return cfg
	}

	cfg.FileDir = keyringFileDir()
	cfg.FilePasswordFunc = keyringFilePassword

	// Headless Linux has no secret service; use encrypted file storage.
	if backend == keyringBackendFile ||
		(backend == keyringBackendAuto && runtime.GOOS == "linux" &&
			strings.TrimSpace(os.Getenv("DBUS_SESSION_BUS_ADDRESS")) == "") {
		cfg.AllowedBackends = []keyring.BackendType{keyring.FileBackend}
	}

	return cfg
}

func keyringBackendMode() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(envKeyringBackend))) {
	case keyringBackendFile:
		return keyringBackendFile
	case keyringBackendSystem, "os", "native":
		return keyringBackendSystem
	default:
		return keyringBackendAuto
	}
}

func keyringFileDir() string {
	base := strings.TrimSpace(os.Getenv(envCredentialsDir))
	if base == "" {
		if dir, err := userConfigDir(); err == nil && strings.TrimSpace(dir) != "" {
			base = filepath.Join(dir, serviceName)
		}
	}
	if base == "" {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			base = filepath.Join(home, ".config", serviceName)
		}
	}
	if base == "" {
		base = filepath.Join(os.TempDir(), serviceName)
	}
	return filepath.Join(base, "keyring")
}

func keyringFilePassword(prompt string) (string, error) {
	if password := os.Getenv(envKeyringPassword); strings.TrimSpace(password) != "" {
		return password, nil
	}
	if !stdinHasTTY() {
		return "", fmt.Errorf("set %s when using the file keyring in non-interactive environments", envKeyringPassword)
	}
	return keyring.TerminalPrompt(prompt)
}

// SaveToken stores the auth token in the keyring.
func SaveToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}
	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return fmt.Errorf("failed to open keyring: %w", err)
	}
	return ring.Set(keyring.Item{
		Key:   tokenKey,
		Data:  []byte(token),
		Label: "Sensor Tower API token",
	})
}

// LoadToken retrieves the stored auth token. Returns ErrNotConfigured when
// no token has been saved.
func LoadToken() (string, error) {
	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return "", fmt.Errorf("failed to open keyring: %w", err)
	}
	item, err := ring.Get(tokenKey)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", ErrNotConfigured
		}
		return "", fmt.Errorf("failed to read keyring: %w", err)
	}
	return string(item.Data), nil
}

// DeleteToken removes the stored auth token. Deleting a token that was
// never stored is not an error.
func DeleteToken() error {
	ring, err := openKeyring(keyringConfig())
	if err != nil {
		return fmt.Errorf("failed to open keyring: %w", err)
	}
	if err := ring.Remove(tokenKey); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

// ResolveToken resolves the auth token in priority order: the explicit
// value (a --token flag), the ST_AUTH_TOKEN environment variable, then the
// keyring. An empty result means no token is configured anywhere; the API
// client turns that into its authentication error before any request.
func ResolveToken(explicit string) string {
	if token := strings.TrimSpace(explicit); token != "" {
		return token
	}
	if token := strings.TrimSpace(os.Getenv(envAuthToken)); token != "" {
		return token
	}
	token, err := LoadToken()
	if err != nil {
		return ""
	}
	return token
}
