// Package credstore persists the identity token and profile on the client,
// encrypted at rest.
//
// A random data key is wrapped with an Argon2id key derived from the user's
// passphrase and kept in keyring.json. Each entry is sealed under its own
// HKDF-derived key with XChaCha20-Poly1305.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/and161185/ecoscan/internal/errs"
	"github.com/and161185/ecoscan/internal/model"
)

const (
	keyringFile = "keyring.json"
	tokenEntry  = "token"
	profEntry   = "profile"
	formatVer   = 1
)

type keyring struct {
	Version    uint32 `json:"version"`
	Salt       []byte `json:"salt"`
	WrappedDEK []byte `json:"wrapped_dek"`
}

// Store is an encrypted key-value store for credentials.
type Store struct {
	dir string
	dek []byte
	mu  sync.Mutex
}

// Open unlocks the store in dir with passphrase, creating the keyring on
// first use. A wrong passphrase yields errs.ErrUnauthorized.
func Open(dir string, passphrase []byte) (*Store, error) {
	if len(passphrase) == 0 {
		return nil, fmt.Errorf("empty passphrase: %w", errs.ErrInvalidInput)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	path := filepath.Join(dir, keyringFile)
	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return create(dir, path, passphrase)
	case err != nil:
		return nil, err
	}

	var kr keyring
	if err := json.Unmarshal(raw, &kr); err != nil {
		return nil, fmt.Errorf("credstore: keyring: %w", err)
	}
	dek, err := open(deriveKEK(passphrase, kr.Salt), kr.WrappedDEK, nil)
	if err != nil {
		return nil, errs.ErrUnauthorized
	}
	return &Store{dir: dir, dek: dek}, nil
}

func create(dir, path string, passphrase []byte) (*Store, error) {
	salt, err := randBytes(16)
	if err != nil {
		return nil, err
	}
	dek, err := randBytes(dekLen)
	if err != nil {
		return nil, err
	}
	wrapped, err := seal(deriveKEK(passphrase, salt), dek, nil)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(keyring{Version: formatVer, Salt: salt, WrappedDEK: wrapped})
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return nil, err
	}
	return &Store{dir: dir, dek: dek}, nil
}

// Exists reports whether a keyring has been created in dir.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, keyringFile))
	return err == nil
}

func (s *Store) put(name string, plaintext []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, err := entryKey(s.dek, name)
	if err != nil {
		return err
	}
	sealed, err := seal(key, plaintext, entryAAD(name, formatVer))
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name+".bin"), sealed, 0o600)
}

func (s *Store) get(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sealed, err := os.ReadFile(filepath.Join(s.dir, name+".bin"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	key, err := entryKey(s.dek, name)
	if err != nil {
		return nil, err
	}
	pt, err := open(key, sealed, entryAAD(name, formatVer))
	if err != nil {
		return nil, fmt.Errorf("credstore: %s: %w", name, err)
	}
	return pt, nil
}

func (s *Store) del(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(filepath.Join(s.dir, name+".bin"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// SaveToken stores the raw ID token.
func (s *Store) SaveToken(token string) error { return s.put(tokenEntry, []byte(token)) }

// LoadToken returns the stored token or errs.ErrNotFound.
func (s *Store) LoadToken() (string, error) {
	b, err := s.get(tokenEntry)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DeleteToken removes the token. Deleting a missing token is not an error.
func (s *Store) DeleteToken() error { return s.del(tokenEntry) }

// SaveProfile stores the user profile.
func (s *Store) SaveProfile(p model.Profile) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.put(profEntry, b)
}

// LoadProfile returns the stored profile or errs.ErrNotFound.
func (s *Store) LoadProfile() (*model.Profile, error) {
	b, err := s.get(profEntry)
	if err != nil {
		return nil, err
	}
	var p model.Profile
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("credstore: profile: %w", err)
	}
	return &p, nil
}

// DeleteProfile removes the profile.
func (s *Store) DeleteProfile() error { return s.del(profEntry) }
