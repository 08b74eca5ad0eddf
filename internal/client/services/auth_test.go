package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/client/client"
	"github.com/dmitrijs2005/gophnotes/internal/client/models"
	"github.com/dmitrijs2005/gophnotes/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophnotes/internal/client/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T, fc *fakeClient) (AuthService, *session.Manager) {
	t.Helper()
	m := session.NewManager(metadata.NewInMemoryRepository())
	require.NoError(t, m.Initialize(context.Background()))
	return NewAuthService(fc, m), m
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestAuthService_Register(t *testing.T) {
	fc := &fakeClient{RegisterRet: &models.User{ID: 7, Username: "alice"}}
	svc, _ := newAuthFixture(t, fc)

	user, err := svc.Register(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice", fc.LastUsername)
	assert.Equal(t, "secret1", fc.LastPassword)
}

func TestAuthService_Login_PopulatesSession(t *testing.T) {
	fc := &fakeClient{LoginRet: &models.LoginResponse{
		AccessToken: "tok-1", TokenType: "bearer", UserID: 7, Username: "alice",
	}}
	svc, m := newAuthFixture(t, fc)

	user, err := svc.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)

	st := m.Current()
	require.True(t, st.Authenticated())
	assert.Equal(t, "tok-1", st.Token)
	assert.Equal(t, "alice", st.User.Username)
}

func TestAuthService_Login_FailureLeavesSessionUntouched(t *testing.T) {
	fc := &fakeClient{LoginRet: &models.LoginResponse{AccessToken: "tok-1", UserID: 7, Username: "alice"}}
	svc, m := newAuthFixture(t, fc)

	_, err := svc.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	fc.LoginRet = nil
	fc.LoginErr = &client.APIError{Status: 401, Message: "Incorrect username or password"}

	_, err = svc.Login(context.Background(), "alice", "wrongpass")
	require.Error(t, err)
	require.ErrorIs(t, err, client.ErrUnauthorized)

	st := m.Current()
	require.True(t, st.Authenticated())
	assert.Equal(t, "tok-1", st.Token)
}

func TestAuthService_Logout(t *testing.T) {
	fc := &fakeClient{LoginRet: &models.LoginResponse{AccessToken: "tok-1", UserID: 7, Username: "alice"}}
	svc, m := newAuthFixture(t, fc)

	_, err := svc.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(context.Background()))
	assert.False(t, m.Authenticated())
}

func TestAuthService_Info(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	fc := &fakeClient{LoginRet: &models.LoginResponse{
		AccessToken: signedToken(t, exp), UserID: 7, Username: "alice",
	}}
	svc, _ := newAuthFixture(t, fc)

	info := svc.Info()
	assert.False(t, info.Authenticated)

	_, err := svc.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	info = svc.Info()
	require.True(t, info.Authenticated)
	assert.Equal(t, int64(7), info.UserID)
	assert.Equal(t, "alice", info.Username)
	assert.Equal(t, exp.Unix(), info.TokenExpiry.Unix())
}

func TestAuthService_Info_OpaqueToken(t *testing.T) {
	fc := &fakeClient{LoginRet: &models.LoginResponse{AccessToken: "not-a-jwt", UserID: 7, Username: "alice"}}
	svc, _ := newAuthFixture(t, fc)

	_, err := svc.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	info := svc.Info()
	require.True(t, info.Authenticated)
	assert.True(t, info.TokenExpiry.IsZero())
}

func TestAuthService_Ping(t *testing.T) {
	fc := &fakeClient{}
	svc, _ := newAuthFixture(t, fc)
	require.NoError(t, svc.Ping(context.Background()))

	fc.PingErr = client.ErrUnavailable
	require.ErrorIs(t, svc.Ping(context.Background()), client.ErrUnavailable)
}
