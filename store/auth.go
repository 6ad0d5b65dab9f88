package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"go-foodie-storefront/backend"
	"go-foodie-storefront/helpers"
	"go-foodie-storefront/models"
	"go-foodie-storefront/storage"
)

// Auth owns the current credential. Token and profile are set and cleared
// together, in memory and in the credential cache; the only exception is
// RefreshProfile, which replaces the profile for an existing token.
type Auth struct {
	mu      sync.RWMutex
	api     *backend.Client
	creds   *storage.CredentialStore
	sid     string
	token   string
	profile *models.Profile
	loading bool
	lastErr string
}

func NewAuth(creds *storage.CredentialStore, sid string) *Auth {
	return &Auth{creds: creds, sid: sid}
}

// Bind attaches the backend client. The client needs the auth store as its
// token source, so the two are wired in two steps.
func (a *Auth) Bind(api *backend.Client) {
	a.api = api
}

// Token implements backend.TokenSource.
func (a *Auth) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

func (a *Auth) Profile() *models.Profile {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.profile == nil {
		return nil
	}
	p := *a.profile
	return &p
}

func (a *Auth) Authenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token != "" && a.profile != nil
}

func (a *Auth) Loading() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.loading
}

func (a *Auth) Err() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastErr
}

func (a *Auth) ClearErr() {
	a.mu.Lock()
	a.lastErr = ""
	a.mu.Unlock()
}

// Rehydrate restores the credential from the cache without any network
// call. Tokens that are already past their expiry are dropped on the spot
// rather than waiting for the first 401.
func (a *Auth) Rehydrate() {
	token, profile, err := a.creds.Load(a.sid)
	if err != nil {
		zap.S().Warnw("credential rehydrate failed", "err", err)
		return
	}
	if token == "" || profile == nil {
		return
	}
	if helpers.TokenExpired(token) {
		zap.S().Infow("discarding expired cached token", "session", a.sid)
		if err := a.creds.Clear(a.sid); err != nil {
			zap.S().Warnw("credential clear failed", "err", err)
		}
		return
	}
	a.mu.Lock()
	a.token = token
	a.profile = profile
	a.mu.Unlock()
}

// Register sends registration unauthenticated. A failure surfaces the
// backend's message and never touches any stored credential.
func (a *Auth) Register(ctx context.Context, form models.RegisterForm) error {
	a.begin()
	cred, err := a.api.Register(ctx, form)
	if err != nil {
		a.fail(backend.Message(err, "Registration failed"))
		return err
	}
	a.accept(cred, "Registration failed")
	return nil
}

// Login has the same contract as Register; the pipeline never attaches a
// stale credential to it.
func (a *Auth) Login(ctx context.Context, form models.LoginForm) error {
	a.begin()
	cred, err := a.api.Login(ctx, form)
	if err != nil {
		a.fail(backend.Message(err, "Login failed"))
		return err
	}
	a.accept(cred, "Login failed")
	return nil
}

// RefreshProfile re-fetches the profile for the current token, replacing
// only the in-memory profile. A 401 is handled by the pipeline hook, which
// clears both entries.
func (a *Auth) RefreshProfile(ctx context.Context) error {
	if a.Token() == "" {
		return nil
	}
	profile, err := a.api.Me(ctx)
	if err != nil {
		zap.S().Debugw("profile refresh failed", "err", err)
		return err
	}
	a.mu.Lock()
	if a.token != "" {
		a.profile = profile
	}
	a.mu.Unlock()
	return nil
}

// Logout is synchronous and has no network effect: it clears the in-memory
// state and both durable entries. Logging out twice is the same as once.
func (a *Auth) Logout() {
	a.mu.Lock()
	a.token = ""
	a.profile = nil
	a.loading = false
	a.lastErr = ""
	a.mu.Unlock()
	if err := a.creds.Clear(a.sid); err != nil {
		zap.S().Warnw("credential clear failed", "err", err)
	}
}

// Invalidate is the pipeline's 401 hook.
func (a *Auth) Invalidate() {
	a.Logout()
}

func (a *Auth) begin() {
	a.mu.Lock()
	a.loading = true
	a.lastErr = ""
	a.mu.Unlock()
}

func (a *Auth) fail(msg string) {
	a.mu.Lock()
	a.loading = false
	a.lastErr = msg
	a.mu.Unlock()
}

func (a *Auth) accept(cred *models.Credential, fallback string) {
	if cred == nil || cred.Token == "" || cred.Profile == nil {
		a.fail(fallback)
		return
	}
	if err := a.creds.Save(a.sid, cred.Token, cred.Profile); err != nil {
		zap.S().Warnw("credential save failed", "err", err)
	}
	a.mu.Lock()
	a.token = cred.Token
	a.profile = cred.Profile
	a.loading = false
	a.lastErr = ""
	a.mu.Unlock()
}
