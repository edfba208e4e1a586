package oauth

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestTokenStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := NewTokenStore(path)

	token := &Token{
		AccessToken: "test-access-token",
		TokenType:   "Bearer",
		ExpiresIn:   3600,
		ExpiresAt:   time.Now().Add(1 * time.Hour).UTC(),
		Scope:       "api",
	}

	if err := store.Save(token); err != nil {
		t.Fatalf("Failed to save token: %v", err)
	}

	loaded := store.Load()
	if loaded == nil {
		t.Fatal("Expected to load stored token, got nil")
	}
	if loaded.AccessToken != token.AccessToken {
		t.Errorf("Expected access token %q, got %q", token.AccessToken, loaded.AccessToken)
	}
	if !loaded.ExpiresAt.Equal(token.ExpiresAt) {
		t.Errorf("Expected expiry %v, got %v", token.ExpiresAt, loaded.ExpiresAt)
	}
	if loaded.Scope != "api" {
		t.Errorf("Expected scope %q, got %q", "api", loaded.Scope)
	}
}

func TestTokenStoreFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := NewTokenStore(path)

	if err := store.Save(&Token{AccessToken: "secret"}); err != nil {
		t.Fatalf("Failed to save token: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat token file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected file permissions 0600, got %o", perm)
	}
}

func TestTokenStoreLoadMissing(t *testing.T) {
	store := NewTokenStore(filepath.Join(t.TempDir(), "missing.json"))
	if token := store.Load(); token != nil {
		t.Errorf("Expected nil for missing file, got %+v", token)
	}
}

func TestTokenStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	store := NewTokenStore(path)
	if token := store.Load(); token != nil {
		t.Errorf("Expected nil for corrupt file, got %+v", token)
	}
}

func TestTokenStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	store := NewTokenStore(path)

	if err := store.Save(&Token{AccessToken: "tok"}); err != nil {
		t.Fatalf("Failed to save token: %v", err)
	}
	if err := store.Delete(); err != nil {
		t.Fatalf("Failed to delete token: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected token file to be removed")
	}

	// Deleting again is not an error.
	if err := store.Delete(); err != nil {
		t.Errorf("Deleting absent token should not fail: %v", err)
	}
}

func TestTokenStoreCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token.json")
	store := NewTokenStore(path)

	if err := store.Save(&Token{AccessToken: "tok"}); err != nil {
		t.Fatalf("Failed to save token into nested directory: %v", err)
	}
	if store.Load() == nil {
		t.Error("Expected token to round-trip through nested directory")
	}
}
