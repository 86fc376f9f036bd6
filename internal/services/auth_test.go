package services

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devmarket/internal/models"
)

func newTestAuth(t *testing.T) *AuthService {
	t.Helper()
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewAuthService("admin@example.com", hash, logger)
}

func TestSignInSuccess(t *testing.T) {
	auth := newTestAuth(t)

	session, err := auth.SignIn("admin@example.com", "secret123")
	require.NoError(t, err)
	assert.True(t, session.IsAdmin)
	assert.NotEmpty(t, session.Token)

	got, ok := auth.Session(session.Token)
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", got.Email)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	auth := newTestAuth(t)

	_, err := auth.SignIn("admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.SignIn("intruder@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignOutClosesSession(t *testing.T) {
	auth := newTestAuth(t)
	session, err := auth.SignIn("admin@example.com", "secret123")
	require.NoError(t, err)

	auth.SignOut(session.Token)
	_, ok := auth.Session(session.Token)
	assert.False(t, ok)

	// Unknown tokens are ignored.
	auth.SignOut("nope")
}

func TestSubscribeReceivesSessionChanges(t *testing.T) {
	auth := newTestAuth(t)

	var events []*models.Session
	auth.Subscribe(func(s *models.Session) { events = append(events, s) })

	session, err := auth.SignIn("admin@example.com", "secret123")
	require.NoError(t, err)
	auth.SignOut(session.Token)

	require.Len(t, events, 2)
	assert.NotNil(t, events[0], "sign-in delivers the new session")
	assert.Nil(t, events[1], "sign-out delivers nil")
}

func TestChangePassword(t *testing.T) {
	auth := newTestAuth(t)

	assert.ErrorIs(t, auth.ChangePassword("wrong", "next456"), ErrInvalidCredentials)

	require.NoError(t, auth.ChangePassword("secret123", "next456"))
	_, err := auth.SignIn("admin@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.SignIn("admin@example.com", "next456")
	assert.NoError(t, err)
}
