package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-foodie-storefront/backend"
	"go-foodie-storefront/config"
	"go-foodie-storefront/storage"
	"go-foodie-storefront/store"
	"go-foodie-storefront/watch"
)

const (
	// idleTTL is how long a session may go without a request before its
	// watcher is stopped and the in-memory entry is dropped. The durable
	// credential survives; the next request with the same cookie rebuilds
	// and rehydrates the session.
	idleTTL = 2 * time.Hour

	sweepInterval = 10 * time.Minute
)

// Manager keys sessions by the session cookie. One http.Client is shared
// across all backend clients; stores and watcher are per session.
type Manager struct {
	mu       sync.Mutex
	cfg      *config.AppConfig
	creds    *storage.CredentialStore
	httpc    *http.Client
	sessions map[string]*Session
}

func NewManager(cfg *config.AppConfig, creds *storage.CredentialStore) *Manager {
	m := &Manager{
		cfg:      cfg,
		creds:    creds,
		httpc:    &http.Client{Timeout: 15 * time.Second},
		sessions: make(map[string]*Session),
	}
	go m.sweep()
	return m
}

func (m *Manager) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for range ticker.C {
		m.evictIdle(time.Now())
	}
}

// evictIdle stops and drops every session that has seen no request for
// idleTTL. Without this, a visitor who closes the tab on a polled page
// would leave its watcher hitting the backend forever.
func (m *Manager) evictIdle(now time.Time) {
	m.mu.Lock()
	var evicted []*Session
	for id, sess := range m.sessions {
		if now.Sub(sess.LastSeen()) > idleTTL {
			delete(m.sessions, id)
			evicted = append(evicted, sess)
		}
	}
	m.mu.Unlock()
	for _, sess := range evicted {
		sess.Watch.Stop()
	}
}

// GetOrCreate resolves the session for a cookie value, building and
// rehydrating a fresh one when the id is unknown (new visitor, or a
// process restart with a surviving cookie). Ids that are not uuids are
// replaced rather than trusted.
func (m *Manager) GetOrCreate(id string) *Session {
	if id != "" {
		if _, err := uuid.Parse(id); err != nil {
			id = ""
		}
	}
	if id == "" {
		id = uuid.NewString()
	}

	m.mu.Lock()
	if sess, ok := m.sessions[id]; ok {
		m.mu.Unlock()
		sess.Touch()
		return sess
	}
	m.mu.Unlock()

	sess := m.build(id)
	sess.Touch()

	m.mu.Lock()
	if existing, ok := m.sessions[id]; ok {
		m.mu.Unlock()
		sess.Watch.Stop()
		existing.Touch()
		return existing
	}
	m.sessions[id] = sess
	m.mu.Unlock()

	// App-start behavior: a rehydrated token triggers a background profile
	// refresh; a 401 there clears the credential through the pipeline hook.
	if sess.Auth.Token() != "" {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := sess.Auth.RefreshProfile(ctx); err != nil {
				zap.S().Debugw("startup profile refresh failed", "session", id, "err", err)
			}
		}()
	}
	return sess
}

func (m *Manager) build(id string) *Session {
	auth := store.NewAuth(m.creds, id)
	api := backend.New(m.cfg.BackendURL, auth, backend.WithHTTPClient(m.httpc))
	api.OnUnauthorized(auth.Invalidate)
	auth.Bind(api)
	auth.Rehydrate()

	return &Session{
		ID:    id,
		Auth:  auth,
		Cart:  store.NewCart(api, auth),
		Menu:  store.NewMenu(api),
		API:   api,
		Watch: watch.New(m.cfg.PollInterval),
	}
}
