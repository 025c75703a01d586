package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores fetched policy page bodies so repeat audits of the same
// URL stay cheap
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a policy URL
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "candor:v1:" + hex.EncodeToString(hash[:])
}
