// Package session owns the login/signup/logout lifecycle. Credentials are
// accepted without verification against any store; only shape constraints
// are enforced.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"staffhub/internal/platform/kv"
	"staffhub/internal/platform/validate"
)

const (
	adminEmail       = "admin@company.com"
	adminDisplayName = "Admin User"
	guestDisplayName = "John Admin"

	placeholderAvatar = "/placeholder.svg?height=32&width=32"
)

type Manager struct {
	store kv.Store

	mu      sync.RWMutex
	session Session
}

func NewManager(store kv.Store) *Manager {
	return &Manager{store: store}
}

type loginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type signupInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Login activates a session for any well-formed credentials. The admin
// address maps to a fixed display name, every other address to the generic
// fallback.
func (m *Manager) Login(ctx context.Context, email, password string) (UserProfile, error) {
	if err := validate.Struct(loginInput{Email: email, Password: password}); err != nil {
		return UserProfile{}, err
	}

	name := guestDisplayName
	if email == adminEmail {
		name = adminDisplayName
	}
	profile := UserProfile{Name: name, Email: email, Avatar: placeholderAvatar}

	m.mu.Lock()
	m.session = Session{Authenticated: true, User: &profile}
	m.mu.Unlock()

	if err := m.persist(ctx, profile); err != nil {
		return UserProfile{}, fmt.Errorf("persist session: %w", err)
	}
	return profile, nil
}

// Signup activates a session for a new profile built from the given name
// and email.
func (m *Manager) Signup(ctx context.Context, name, email, password string) (UserProfile, error) {
	if err := validate.Struct(signupInput{Name: name, Email: email, Password: password}); err != nil {
		return UserProfile{}, err
	}

	profile := UserProfile{Name: name, Email: email, Avatar: placeholderAvatar}

	m.mu.Lock()
	m.session = Session{Authenticated: true, User: &profile}
	m.mu.Unlock()

	if err := m.persist(ctx, profile); err != nil {
		return UserProfile{}, fmt.Errorf("persist session: %w", err)
	}
	return profile, nil
}

// Logout clears the in-memory session and removes both persisted entries.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	m.session = Session{}
	m.mu.Unlock()

	if err := m.store.Delete(ctx, kv.KeySessionAuthenticated); err != nil {
		return fmt.Errorf("clear session flag: %w", err)
	}
	if err := m.store.Delete(ctx, kv.KeySessionUser); err != nil {
		return fmt.Errorf("clear session user: %w", err)
	}
	return nil
}

// Restore loads the persisted session at process start. The session is
// active again only when the flag was true and a profile round-trips;
// anything missing or corrupt means logged out, not an error.
func (m *Manager) Restore(ctx context.Context) error {
	flag, err := m.store.Load(ctx, kv.KeySessionAuthenticated)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load session flag: %w", err)
	}
	if string(flag) != "true" {
		return nil
	}

	raw, err := m.store.Load(ctx, kv.KeySessionUser)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load session user: %w", err)
	}

	var profile UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil
	}

	m.mu.Lock()
	m.session = Session{Authenticated: true, User: &profile}
	m.mu.Unlock()
	return nil
}

// Active reports whether a session is currently authenticated. This is the
// boolean the navigation-guard collaborator reads.
func (m *Manager) Active() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Authenticated
}

// Current returns the signed-in profile, if any.
func (m *Manager) Current() (UserProfile, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.session.Authenticated || m.session.User == nil {
		return UserProfile{}, false
	}
	return *m.session.User, true
}

func (m *Manager) persist(ctx context.Context, profile UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	if err := m.store.Save(ctx, kv.KeySessionAuthenticated, []byte("true")); err != nil {
		return err
	}
	return m.store.Save(ctx, kv.KeySessionUser, raw)
}
