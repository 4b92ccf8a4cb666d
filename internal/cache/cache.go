package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for verdict caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a cleaned candidate. Candidates are
// hashed so raw identifier values never appear in cache internals.
func Key(candidate string) string {
	hash := sha256.Sum256([]byte(candidate))
	return "panvet:v1:" + hex.EncodeToString(hash[:])
}
