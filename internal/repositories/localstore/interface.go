package localstore

//go:generate mockgen -destination=mock/mock.go -package=mocklocalstore -source=interface.go

import (
	"context"
	"time"
)

// Keys persisted on the client between runs
const (
	KeyAnalyticsReplays = "analyticsReplays"
	KeyEmailForSignIn   = "emailForSignIn"
)

// Repository is a small key/value store for client-side state.
// Get returns a not_found error for missing or expired keys.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value; a zero ttl never expires
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete is a no-op for missing keys
	Delete(ctx context.Context, key string) error
}

// TimeProvider lets tests control expiry
type TimeProvider interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
