package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

const (
	defaultNumCounters = 100000
	defaultMaxCost     = 10000000
	defaultBufferItems = 64
)

// RistrettoCache backs the response cache with an in-process ristretto store.
// Ristretto is safe for concurrent use, so pipeline runs share one instance
// without additional locking.
type RistrettoCache struct {
	cache *ristretto.Cache
}

type RistrettoConfig struct {
	NumCounters int64
	MaxCost     int64
}

func NewRistrettoCache(config RistrettoConfig) (*RistrettoCache, error) {
	numCounters := config.NumCounters
	if numCounters <= 0 {
		numCounters = defaultNumCounters
	}
	maxCost := config.MaxCost
	if maxCost <= 0 {
		maxCost = defaultMaxCost
	}

	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: defaultBufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &RistrettoCache{cache: c}, nil
}

func (c *RistrettoCache) Get(key string) (string, bool) {
	value, found := c.cache.Get(key)
	if !found {
		return "", false
	}

	s, ok := value.(string)
	if !ok {
		return "", false
	}
	return s, true
}

func (c *RistrettoCache) Set(key string, value string, ttl time.Duration) {
	c.cache.SetWithTTL(key, value, int64(len(value)), ttl)
	// Writes are buffered; Wait makes the entry visible to the next Get so
	// identical prompts within one burst still collapse to one model call.
	c.cache.Wait()
}

func (c *RistrettoCache) Close() {
	c.cache.Close()
}
