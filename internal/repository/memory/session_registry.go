package memory

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/patrickmn/go-cache"
)

// SessionRegistry maps opaque bearer tokens to member ISIC numbers.
// Tokens live for the lifetime of the process: there is no expiry or
// revocation yet, so the registry sits on go-cache with NoExpiration
// and a future TTL is a constructor change, not an API change.
type SessionRegistry struct {
	cache *cache.Cache
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Issue generates a fresh token for the member and records the binding.
// 32 bytes of crypto/rand give 256 bits of entropy; uniqueness comes
// from the generator, not from collision checks.
func (r *SessionRegistry) Issue(isic string) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)
	r.cache.Set(token, isic, cache.NoExpiration)
	return token, nil
}

// Resolve returns the member bound to the token, or false for any token
// the registry did not issue.
func (r *SessionRegistry) Resolve(token string) (string, bool) {
	if x, found := r.cache.Get(token); found {
		return x.(string), true
	}
	return "", false
}
