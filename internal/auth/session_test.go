package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/vgc-companion/internal/auth"
	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims *auth.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestSessionFromToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signToken(t, &auth.Claims{
		UserID: "uid-123",
		Email:  "ash@example.com",
		Name:   "Ash",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "uid-123",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	s, err := auth.SessionFromToken("Bearer " + token)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", s.UID)
	assert.Equal(t, "ash@example.com", s.Email)
	assert.Equal(t, "Ash", s.DisplayName)
	assert.Equal(t, token, s.Token)
	assert.True(t, s.ExpiresAt.Equal(exp))
	assert.False(t, s.Expired(time.Now()))
	assert.True(t, s.Expired(exp))
}

func TestSessionFromToken_SubjectFallback(t *testing.T) {
	token := signToken(t, &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-1"},
	})

	s, err := auth.SessionFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sub-1", s.UID)
	assert.True(t, s.ExpiresAt.IsZero())
	assert.False(t, s.Expired(time.Now()))
}

func TestSessionFromToken_Invalid(t *testing.T) {
	_, err := auth.SessionFromToken("")
	assert.True(t, vgcerr.IsUnauthenticated(err))

	_, err = auth.SessionFromToken("not-a-jwt")
	assert.True(t, vgcerr.IsUnauthenticated(err))

	_, err = auth.SessionFromToken(signToken(t, &auth.Claims{Email: "x@example.com"}))
	assert.True(t, vgcerr.IsUnauthenticated(err))
}

func TestRequireSession(t *testing.T) {
	ctx := context.Background()

	_, err := auth.RequireSession(ctx)
	assert.True(t, vgcerr.IsUnauthenticated(err))

	expired := &auth.Session{UID: "u", ExpiresAt: time.Now().Add(-time.Minute)}
	_, err = auth.RequireSession(auth.WithSession(ctx, expired))
	assert.True(t, vgcerr.IsUnauthenticated(err))

	live := &auth.Session{UID: "u"}
	got, err := auth.RequireSession(auth.WithSession(ctx, live))
	require.NoError(t, err)
	assert.Same(t, live, got)

	_, ok := auth.FromContext(auth.WithSession(ctx, nil))
	assert.False(t, ok)
}
