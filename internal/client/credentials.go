package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService is the OS keyring service credentials are stored under.
const KeyringService = "gamehub"

// ErrNoCredentials is returned when nothing is stored for an API.
var ErrNoCredentials = errors.New("client: no stored credentials")

// Credentials is what the CLI remembers between runs.
type Credentials struct {
	Username     string `json:"username"`
	RefreshToken string `json:"refresh_token"`
}

// SaveCredentials stores creds for the API at baseURL.
func SaveCredentials(baseURL string, creds Credentials) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("client: encode credentials: %w", err)
	}
	if err := keyring.Set(KeyringService, account(baseURL), string(raw)); err != nil {
		return fmt.Errorf("client: keyring set: %w", err)
	}
	return nil
}

// LoadCredentials reads the stored credentials for baseURL.
func LoadCredentials(baseURL string) (Credentials, error) {
	raw, err := keyring.Get(KeyringService, account(baseURL))
	if errors.Is(err, keyring.ErrNotFound) {
		return Credentials{}, ErrNoCredentials
	}
	if err != nil {
		return Credentials{}, fmt.Errorf("client: keyring get: %w", err)
	}
	var creds Credentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return Credentials{}, fmt.Errorf("client: decode credentials: %w", err)
	}
	return creds, nil
}

// DeleteCredentials forgets baseURL's credentials. Missing entries are not
// an error.
func DeleteCredentials(baseURL string) error {
	err := keyring.Delete(KeyringService, account(baseURL))
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("client: keyring delete: %w", err)
	}
	return nil
}

func account(baseURL string) string {
	return strings.TrimRight(strings.TrimSpace(baseURL), "/")
}
