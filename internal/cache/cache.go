package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the key/value contract the pipeline uses for response caching.
// Reads that fail are treated as misses by callers; writes are best effort.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration)
}

// Key builds a content-addressed cache key: a namespace prefix plus the
// SHA-256 of the fully instantiated prompt. Identical prompts across
// different users and requests collapse to one entry.
func Key(prefix string, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return prefix + ":" + hex.EncodeToString(sum[:])
}
