// Package session owns the authenticated-admin session: startup restore,
// login, logout and the global teardown on rejected credentials.
package session

import (
	"errors"

	"github.com/K1ta141k/skillsense-hr/internal/kvstore"
	"github.com/K1ta141k/skillsense-hr/internal/skillsense"

	"go.uber.org/zap"
)

// AdminRole is the only role allowed to hold a session.
const AdminRole = "admin"

// ErrAccessDenied is returned by Login when the credential exchange succeeded
// but the account does not carry the admin role.
var ErrAccessDenied = errors.New("access denied: admin role required")

// AuthAPI is the slice of the backend client the gate depends on.
type AuthAPI interface {
	Login(email, password string) (string, error)
	Me() (*skillsense.UserRecord, error)
}

// Navigator is invoked when a session ends and control must return to the
// login entry point.
type Navigator interface {
	RedirectToLogin()
}

// Gate decides whether the caller holds an authenticated admin session.
type Gate struct {
	api    AuthAPI
	tokens kvstore.Store
	nav    Navigator
	logger *zap.Logger

	user   *skillsense.UserRecord
	loaded bool
}

func NewGate(api AuthAPI, tokens kvstore.Store, nav Navigator, logger *zap.Logger) (*Gate, error) {
	if api == nil {
		return nil, errors.New("auth api is required")
	}
	if tokens == nil {
		return nil, errors.New("token store is required")
	}
	if nav == nil {
		return nil, errors.New("navigator is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &Gate{api: api, tokens: tokens, nav: nav, logger: logger}, nil
}

// CheckAuth restores a session from a persisted token. It never returns an
// error: any failure clears the token and degrades to logged-out. Loading is
// marked complete exactly once, whatever the outcome.
func (g *Gate) CheckAuth() {
	defer func() { g.loaded = true }()

	token, err := g.tokens.Get(skillsense.TokenKey)
	if err != nil || token == "" {
		return
	}

	user, err := g.api.Me()
	if err != nil {
		g.logger.Debug("stored token rejected", zap.Error(err))
		g.purgeToken()
		return
	}

	if user.Role != AdminRole {
		g.logger.Warn("stored token belongs to a non-admin account", zap.String("role", user.Role))
		g.purgeToken()
		return
	}

	g.user = user
}

// Login exchanges credentials for a token and confirms the admin role. The
// token is persisted before the role check and purged again when the check
// fails, so a half-authenticated session is never observable. Token issuance
// alone does not establish a session.
func (g *Gate) Login(email, password string) error {
	token, err := g.api.Login(email, password)
	if err != nil {
		return err
	}

	if err := g.tokens.Set(skillsense.TokenKey, token); err != nil {
		return err
	}

	user, err := g.api.Me()
	if err != nil {
		return err
	}

	if user.Role != AdminRole {
		g.purgeToken()
		return ErrAccessDenied
	}

	g.user = user

	g.logger.Info("session established", zap.String("email", user.Email))

	return nil
}

// Logout tears the session down and unconditionally returns to the login
// entry point.
func (g *Gate) Logout() {
	g.logger.Info("logging out")
	g.teardown()
}

// HandleUnauthorized is the hook for 401 responses from any endpoint. It is
// the same teardown as Logout, triggered by the backend instead of the user.
func (g *Gate) HandleUnauthorized() {
	g.logger.Warn("session rejected by backend")
	g.teardown()
}

func (g *Gate) teardown() {
	g.purgeToken()
	g.user = nil
	g.nav.RedirectToLogin()
}

func (g *Gate) purgeToken() {
	if err := g.tokens.Remove(skillsense.TokenKey); err != nil {
		g.logger.Warn("removing stored token", zap.Error(err))
	}
}

// User returns the authenticated user, or nil outside a session.
func (g *Gate) User() *skillsense.UserRecord {
	return g.user
}

func (g *Gate) IsAuthenticated() bool {
	return g.user != nil
}

// Loading reports whether the startup auth check has not finished yet.
// Protected views must not render while this is true.
func (g *Gate) Loading() bool {
	return !g.loaded
}
