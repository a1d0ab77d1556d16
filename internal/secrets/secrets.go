package secrets

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const service = "launchpad"

// ErrNotFound is returned when no secret is stored for an environment.
var ErrNotFound = errors.New("secret not found")

// Store defines credential storage for environment passwords.
type Store interface {
	Set(envID, password string) error
	Get(envID string) (string, error)
	Delete(envID string) error
}

// Keyring stores passwords in the OS keyring, keyed by environment ID.
type Keyring struct{}

// NewKeyring creates a keyring-backed store.
func NewKeyring() Keyring {
	return Keyring{}
}

// Set stores the password for an environment.
func (Keyring) Set(envID, password string) error {
	if err := keyring.Set(service, envID, password); err != nil {
		return fmt.Errorf("keyring set: %w", err)
	}
	return nil
}

// Get retrieves the password for an environment.
// Returns ErrNotFound when none is stored.
func (Keyring) Get(envID string) (string, error) {
	p, err := keyring.Get(service, envID)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("keyring get: %w", err)
	}
	return p, nil
}

// Delete removes the password for an environment.
// Deleting a missing secret is not an error.
func (Keyring) Delete(envID string) error {
	err := keyring.Delete(service, envID)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete: %w", err)
	}
	return nil
}
