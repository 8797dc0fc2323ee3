package auth

import (
	"context"
	"net/mail"
	"net/url"
	"strings"
	"time"

	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
	"github.com/KirkDiggler/vgc-companion/internal/repositories/localstore"
)

// DefaultEmailLinkTTL matches the provider's action code lifetime
const DefaultEmailLinkTTL = time.Hour

// EmailLinkConfig configures an EmailLinkStore
type EmailLinkConfig struct {
	Store localstore.Repository
	TTL   time.Duration
}

// EmailLinkStore remembers which address requested a passwordless sign-in link
type EmailLinkStore struct {
	store localstore.Repository
	ttl   time.Duration
}

// EmailLinkSignIn is a validated sign-in link paired with its address
type EmailLinkSignIn struct {
	Email   string
	OOBCode string
}

func NewEmailLinkStore(cfg *EmailLinkConfig) *EmailLinkStore {
	if cfg == nil {
		panic("EmailLinkConfig cannot be nil")
	}
	if cfg.Store == nil {
		panic("local store is required")
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultEmailLinkTTL
	}

	return &EmailLinkStore{
		store: cfg.Store,
		ttl:   ttl,
	}
}

// Start records email as the pending sign-in address
func (s *EmailLinkStore) Start(ctx context.Context, email string) error {
	addr, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	if err := s.store.Set(ctx, localstore.KeyEmailForSignIn, []byte(addr), s.ttl); err != nil {
		return vgcerr.Wrap(err, "failed to remember sign-in email")
	}
	return nil
}

// Pending returns the remembered address, if any
func (s *EmailLinkStore) Pending(ctx context.Context) (string, bool, error) {
	data, err := s.store.Get(ctx, localstore.KeyEmailForSignIn)
	if err != nil {
		if vgcerr.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, vgcerr.Wrap(err, "failed to read sign-in email")
	}
	return string(data), true, nil
}

// Complete validates link and resolves the address to sign in with. A remembered
// address wins; otherwise the caller-supplied one is used, as when the link is
// opened on a different device. The remembered address is cleared on success.
func (s *EmailLinkStore) Complete(ctx context.Context, link, email string) (*EmailLinkSignIn, error) {
	oobCode, ok := signInCode(link)
	if !ok {
		return nil, MapError(CodeInvalidActionCode, "")
	}

	addr, found, err := s.Pending(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		if strings.TrimSpace(email) == "" {
			return nil, MapError(CodeMissingEmail, "")
		}
		if addr, err = normalizeEmail(email); err != nil {
			return nil, err
		}
	}

	if err := s.store.Delete(ctx, localstore.KeyEmailForSignIn); err != nil {
		return nil, vgcerr.Wrap(err, "failed to clear sign-in email")
	}

	return &EmailLinkSignIn{
		Email:   addr,
		OOBCode: oobCode,
	}, nil
}

// IsSignInLink reports whether link looks like an email sign-in link
func IsSignInLink(link string) bool {
	_, ok := signInCode(link)
	return ok
}

func signInCode(link string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", false
	}
	q := u.Query()
	if q.Get("mode") != "signIn" {
		return "", false
	}
	code := q.Get("oobCode")
	return code, code != ""
}

func normalizeEmail(email string) (string, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return "", MapError(CodeInvalidEmail, "")
	}
	return strings.ToLower(addr.Address), nil
}
