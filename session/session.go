// Package session persists the signed-in user's token and profile on
// disk with an absolute expiry. Reads past the expiry behave as if
// nothing was ever stored, and forget the value as a side effect.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/leettrack/leettrack/types"
)

// DefaultValidity is how long a saved session stays readable.
const DefaultValidity = 7 * 24 * time.Hour

const (
	tokenFile = "token.json"
	userFile  = "user.json"

	filePerm = 0o600
	dirPerm  = 0o700
)

// envelope wraps a stored value with its absolute expiry, expressed as
// milliseconds since the Unix epoch.
type envelope struct {
	Value     json.RawMessage `json:"value"`
	ExpiresAt int64           `json:"expiresAt"`
}

// Store is a file-backed session store. One file per key under dir.
type Store struct {
	dir      string
	validity time.Duration
	now      func() time.Time
}

// New opens a store rooted at dir, creating it if needed. An empty dir
// defaults to ~/.leettrack.
func New(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".leettrack")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, err
	}
	return &Store{
		dir:      dir,
		validity: DefaultValidity,
		now:      time.Now,
	}, nil
}

// Save persists the token and user together under one fresh expiry,
// overwriting any prior session. If either write fails the partial
// session is removed so the two keys never diverge.
func (s *Store) Save(token string, user types.User) error {
	expiresAt := s.now().Add(s.validity).UnixMilli()

	if err := s.write(tokenFile, token, expiresAt); err != nil {
		return err
	}
	if err := s.write(userFile, user, expiresAt); err != nil {
		_ = os.Remove(filepath.Join(s.dir, tokenFile))
		return err
	}
	return nil
}

// Token returns the stored bearer token, or false if the session is
// absent or expired. Expired and corrupt entries are purged.
func (s *Store) Token() (string, bool) {
	var token string
	if !s.read(tokenFile, &token) {
		return "", false
	}
	return token, true
}

// User returns the stored user profile, or false if the session is
// absent or expired.
func (s *Store) User() (types.User, bool) {
	var user types.User
	if !s.read(userFile, &user) {
		return types.User{}, false
	}
	return user, true
}

// Clear unconditionally removes the stored session.
func (s *Store) Clear() {
	_ = os.Remove(filepath.Join(s.dir, tokenFile))
	_ = os.Remove(filepath.Join(s.dir, userFile))
}

func (s *Store) write(name string, value any, expiresAt int64) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	data, err := json.Marshal(envelope{Value: raw, ExpiresAt: expiresAt})
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, filePerm)
}

// read unmarshals the named entry into out. Malformed or expired
// entries are deleted and reported as absent, never as errors.
func (s *Store) read(name string, out any) bool {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		_ = os.Remove(path)
		return false
	}
	if s.now().UnixMilli() > env.ExpiresAt {
		_ = os.Remove(path)
		return false
	}
	if err := json.Unmarshal(env.Value, out); err != nil {
		_ = os.Remove(path)
		return false
	}
	return true
}
