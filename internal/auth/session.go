package auth

import (
	"context"
	"strings"
	"time"

	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the identity provider ID-token payload we care about
type Claims struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	Name          string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Session is the signed-in user
type Session struct {
	UID         string
	Email       string
	DisplayName string
	Token       string
	ExpiresAt   time.Time
}

// Expired reports whether the token is past its expiry. Tokens without exp never expire.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SessionFromToken reads the claims of an ID token. The signature is checked by
// the API, so the client only decodes.
func SessionFromToken(token string) (*Session, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return nil, vgcerr.Unauthenticated("missing authorization token")
	}

	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, vgcerr.WrapWithCode(err, vgcerr.CodeUnauthenticated, "invalid authorization token")
	}

	uid := claims.UserID
	if uid == "" {
		uid = claims.Subject
	}
	if uid == "" {
		return nil, vgcerr.Unauthenticated("authorization token has no user")
	}

	s := &Session{
		UID:         uid,
		Email:       claims.Email,
		DisplayName: claims.Name,
		Token:       token,
	}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

type sessionKey struct{}

// WithSession attaches s to ctx
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session carried by ctx, if any
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

// RequireSession returns the current session or an unauthenticated error
func RequireSession(ctx context.Context) (*Session, error) {
	s, ok := FromContext(ctx)
	if !ok {
		return nil, vgcerr.Unauthenticated("You must be signed in to do that.")
	}
	if s.Expired(time.Now()) {
		return nil, vgcerr.Unauthenticated("Your session has expired. Please sign in again.").
			WithMeta("uid", s.UID)
	}
	return s, nil
}
