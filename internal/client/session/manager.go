// Package session holds the client-local record of who is logged in and
// with which credential, persisted to the durable key/value store.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/client/repositories/metadata"
)

// Storage keys. Both are always written and removed together.
const (
	tokenKey = "token"
	userKey  = "user"
)

// Phase tells consumers whether the persisted session has been loaded yet,
// so they can show a neutral state instead of flashing "logged out".
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseReady
)

// State is an immutable snapshot of the session. The three observable
// facts (user, token, authenticated) always change together.
type State struct {
	User  *models.User
	Token string
}

// Authenticated reports whether both the user and the token are present.
func (s State) Authenticated() bool {
	return s.User != nil && s.Token != ""
}

// Manager is the single source of truth for session state. It is safe for
// concurrent use; the only mutations are the atomic Initialize, Login and
// Logout transitions.
type Manager struct {
	repo metadata.Repository

	mu    sync.RWMutex
	user  *models.User
	token string
	phase Phase
}

func NewManager(repo metadata.Repository) *Manager {
	return &Manager{repo: repo, phase: PhaseInitializing}
}

// Initialize loads the persisted token and user record. The session becomes
// authenticated only when both are present and the user record parses;
// otherwise any remnants are removed and the session stays unauthenticated.
// Idempotent. The phase is Ready once it returns, even on error.
func (m *Manager) Initialize(ctx context.Context) error {
	defer m.setPhase(PhaseReady)

	token, err := m.repo.Get(ctx, tokenKey)
	if err != nil {
		return err
	}
	userRaw, err := m.repo.Get(ctx, userKey)
	if err != nil {
		return err
	}

	if len(token) == 0 || len(userRaw) == 0 {
		m.discard(ctx)
		return nil
	}

	var user models.User
	if err := json.Unmarshal(userRaw, &user); err != nil {
		m.discard(ctx)
		return nil
	}

	m.mu.Lock()
	m.user = &user
	m.token = string(token)
	m.mu.Unlock()
	return nil
}

// discard wipes persisted remnants (best effort) and clears memory.
func (m *Manager) discard(ctx context.Context) {
	_ = m.repo.DeleteMulti(ctx, tokenKey, userKey)
	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.mu.Unlock()
}

// Login persists the pair durably, then flips the in-memory state. No
// observer can see a state with only one of the two set.
func (m *Manager) Login(ctx context.Context, token string, user *models.User) error {
	userRaw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	if err := m.repo.SetMulti(ctx, map[string][]byte{
		tokenKey: []byte(token),
		userKey:  userRaw,
	}); err != nil {
		return err
	}

	m.mu.Lock()
	m.user = user
	m.token = token
	m.mu.Unlock()
	return nil
}

// Logout erases both persisted values and clears the in-memory state. The
// in-memory state is cleared even when the storage delete fails, so the
// process never keeps using a credential the user asked to drop.
func (m *Manager) Logout(ctx context.Context) error {
	err := m.repo.DeleteMulti(ctx, tokenKey, userKey)

	m.mu.Lock()
	m.user = nil
	m.token = ""
	m.mu.Unlock()
	return err
}

// Current returns a snapshot of the session state.
func (m *Manager) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return State{User: m.user, Token: m.token}
}

// Token returns the current bearer token, or "" when logged out. Matches
// the client.TokenProvider signature.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Authenticated reports whether a complete session is present.
func (m *Manager) Authenticated() bool {
	return m.Current().Authenticated()
}

// Phase reports whether Initialize has completed.
func (m *Manager) Phase() Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase
}

func (m *Manager) setPhase(p Phase) {
	m.mu.Lock()
	m.phase = p
	m.mu.Unlock()
}
