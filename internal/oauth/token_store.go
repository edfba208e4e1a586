package oauth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"frisbii-transform-mcp/pkg/logging"
)

// TokenStore persists a single OAuth token to a JSON file.
//
// SECURITY: the store handles a live credential. The file is written with
// 0600 permissions (owner read/write only) and token values are never
// logged; only the storage path appears in log output.
type TokenStore struct {
	mu   sync.Mutex
	path string
}

// NewTokenStore creates a token store backed by the given file path.
func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Path returns the storage file path.
func (s *TokenStore) Path() string {
	return s.path
}

// Load reads the stored token. It returns nil (and no error) when the file
// does not exist; a corrupt file is also treated as no token, since the
// caller's recovery in both cases is to fetch a fresh one.
func (s *TokenStore) Load() *Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("oauth", "failed to read token file %s: %v", s.path, err)
		}
		return nil
	}

	var token Token
	if err := json.Unmarshal(data, &token); err != nil {
		logging.Warn("oauth", "ignoring corrupt token file %s: %v", s.path, err)
		return nil
	}

	return &token
}

// Save persists the token with restricted permissions.
func (s *TokenStore) Save(token *Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create token storage directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	logging.Debug("oauth", "token saved to %s", s.path)
	return nil
}

// Delete removes the stored token. Deleting an absent token is not an error.
func (s *TokenStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to remove token file: %w", err)
	}

	logging.Debug("oauth", "token file %s removed", s.path)
	return nil
}
