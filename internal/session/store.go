// Package session owns the authenticated identity: the current bearer token
// and user, their persisted copy, and the login/register/logout lifecycle.
//
// There is no module-level singleton; a Store is constructed once in main
// and injected into everything that needs the session. Exactly one session
// is active at a time, and setting a new one fully replaces the prior one.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ourbigday/bigday/internal/api"
)

const fileName = "session.json"

// User is the authenticated identity.
type User struct {
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName"`
}

// Session pairs a bearer token with its user.
type Session struct {
	Token string
	User  User
}

// persisted is the on-disk shape; the token is AES-GCM sealed.
type persisted struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Store holds the current session and its persisted copy.
type Store struct {
	client  *api.Client
	path    string
	current *Session
}

// NewStore places the session file under the user config dir.
func NewStore(client *api.Client) (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(client, filepath.Join(dir, "bigday", fileName)), nil
}

// NewStoreAt uses an explicit file path.
func NewStoreAt(client *api.Client, path string) *Store {
	return &Store{client: client, path: path}
}

// Current returns the active session, or nil when unauthenticated.
func (s *Store) Current() *Session { return s.current }

// Token returns the active bearer token, or "" when unauthenticated.
func (s *Store) Token() string {
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Login exchanges credentials for a session, persists it, and makes it
// current. A rejected attempt leaves the store unchanged.
func (s *Store) Login(ctx context.Context, email, password string) error {
	auth, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.install(auth, email, "")
	return nil
}

// Register creates an account and signs it in, same contract as Login.
func (s *Store) Register(ctx context.Context, email, password, displayName string) error {
	auth, err := s.client.Register(ctx, email, password, displayName)
	if err != nil {
		return err
	}
	s.install(auth, email, displayName)
	return nil
}

func (s *Store) install(auth api.Auth, email, displayName string) {
	user := User{
		Email:       auth.Email,
		Role:        ParseRole(auth.Role),
		DisplayName: auth.DisplayName,
	}
	if user.Email == "" {
		user.Email = email
	}
	if auth.Role == "" {
		user.Role = RoleFamily
	}
	if user.DisplayName == "" {
		if displayName != "" {
			user.DisplayName = displayName
		} else {
			user.DisplayName = user.Email
		}
	}
	s.current = &Session{Token: auth.Token, User: user}
	if err := s.save(); err != nil {
		slog.Warn("persist session", "err", err)
	}
}

// Logout clears the current session and its persisted copy. Idempotent.
func (s *Store) Logout() {
	s.current = nil
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		slog.Warn("remove session file", "err", err)
	}
}

// Restore reads the persisted session at startup. Malformed or
// undecryptable content is discarded and the file removed, leaving the
// store unauthenticated.
func (s *Store) Restore() *Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var p persisted
	if err := json.Unmarshal(data, &p); err != nil {
		s.discard()
		return nil
	}
	token, err := openToken(p.Token)
	if err != nil || token == "" {
		s.discard()
		return nil
	}
	p.User.Role = ParseRole(string(p.User.Role))
	s.current = &Session{Token: token, User: p.User}
	return s.current
}

func (s *Store) discard() {
	slog.Warn("discarding malformed session file", "path", s.path)
	_ = os.Remove(s.path)
}

func (s *Store) save() error {
	sealed, err := sealToken(s.current.Token)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(persisted{Token: sealed, User: s.current.User}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
