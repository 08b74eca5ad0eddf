// Package services contains application services for the gophnotes client.
// This file defines the authentication service: register, login/logout
// against the backend, session restore on startup, and a liveness probe.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/client/session"
	"github.com/golang-jwt/jwt/v5"
)

// SessionInfo describes the current session for display purposes.
// TokenExpiry is filled only when the bearer token parses as a JWT with an
// exp claim; the parse is unverified and is never used to gate requests.
type SessionInfo struct {
	Authenticated bool
	UserID        int64
	Username      string
	TokenExpiry   time.Time
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create a new account on the backend.
//   - Login: authenticate and atomically persist the resulting session.
//   - Logout: erase the persisted session.
//   - Restore: load a previously persisted session at startup.
//   - Ping: check backend liveness.
//   - Info: snapshot of the current session.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, username string, password string) (*models.User, error)
	Login(ctx context.Context, username string, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) error
	Ping(ctx context.Context) error
	Info() SessionInfo
}

// authService is the concrete AuthService backed by the API client and the
// session manager.
type authService struct {
	client  client.Client
	session *session.Manager
}

// NewAuthService constructs an AuthService bound to the given API client
// and session manager.
func NewAuthService(client client.Client, session *session.Manager) AuthService {
	return &authService{client: client, session: session}
}

func (a *authService) Register(ctx context.Context, username string, password string) (*models.User, error) {
	user, err := a.client.Register(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("register error: %w", err)
	}
	return user, nil
}

// Login authenticates against the backend and stores the returned token
// together with the user identity it names. A failed login leaves any
// existing session untouched.
func (a *authService) Login(ctx context.Context, username string, password string) (*models.User, error) {
	resp, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}

	// The login response carries only id and username; created_at stays
	// empty until a future fetch supplies it.
	user := &models.User{ID: resp.UserID, Username: resp.Username}

	if err := a.session.Login(ctx, resp.AccessToken, user); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

func (a *authService) Restore(ctx context.Context) error {
	return a.session.Initialize(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Info() SessionInfo {
	st := a.session.Current()

	info := SessionInfo{Authenticated: st.Authenticated()}
	if !info.Authenticated {
		return info
	}

	info.UserID = st.User.ID
	info.Username = st.User.Username
	info.TokenExpiry = tokenExpiry(st.Token)
	return info
}

// tokenExpiry peeks at the token's exp claim without verifying the
// signature. Returns the zero time when the token is not a JWT or carries
// no expiry.
func tokenExpiry(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
