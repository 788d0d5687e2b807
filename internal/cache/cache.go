// Package cache provides the byte caches used across tagtrend: a memory
// cache for lazily computed co-occurrence results and a layered
// memory+disk cache for fetched API pages, so an interrupted dataset fetch
// resumes without re-downloading.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache is the common interface of all cache layers.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key builds a stable cache key from the parts identifying a query or
// fetch (operation name, tags, page numbers). Parts are hashed so tags
// with filesystem-hostile characters stay safe as disk cache filenames.
func Key(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return "tagtrend:v1:" + hex.EncodeToString(hash[:])
}
