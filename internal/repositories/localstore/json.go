package localstore

import (
	"context"
	"encoding/json"
	"time"

	vgcerr "github.com/KirkDiggler/vgc-companion/internal/errors"
)

// GetJSON decodes the value at key into out. found is false for missing keys.
func GetJSON(ctx context.Context, repo Repository, key string, out any) (found bool, err error) {
	data, err := repo.Get(ctx, key)
	if err != nil {
		if vgcerr.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, vgcerr.WrapWithCode(err, vgcerr.CodeInternal, "failed to decode stored value").
			WithMeta("key", key)
	}
	return true, nil
}

// SetJSON encodes value and stores it at key
func SetJSON(ctx context.Context, repo Repository, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return vgcerr.WrapWithCode(err, vgcerr.CodeInternal, "failed to encode value").
			WithMeta("key", key)
	}
	return repo.Set(ctx, key, data, ttl)
}
