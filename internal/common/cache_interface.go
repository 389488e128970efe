package common

import (
	"encoding/json"
	"time"
)

// CacheInterface defines the contract for cache implementations
type CacheInterface interface {
	// Set stores a value in cache with the given key and duration
	Set(key string, value interface{}, duration time.Duration)

	// Get retrieves a value from cache by key
	// Returns the value and true if found, nil and false otherwise
	Get(key string) (interface{}, bool)

	// Delete removes a value from cache by key
	Delete(key string)

	// GetOrSet retrieves a value from cache, or loads it using the loader function if not found
	GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error)

	// Ping reports whether the backing store is reachable
	Ping() error

	// Close closes any underlying connections (for Redis, etc.)
	Close() error
}

// CachedValue converts a cached value back to T. The in-memory cache hands
// back the stored value itself; Redis hands back decoded JSON, which is
// re-encoded into T.
func CachedValue[T any](val interface{}) (T, bool) {
	var out T
	switch v := val.(type) {
	case nil:
		return out, false
	case T:
		return v, true
	case *T:
		if v == nil {
			return out, false
		}
		return *v, true
	}

	data, err := json.Marshal(val)
	if err != nil {
		return out, false
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, false
	}
	return out, true
}
