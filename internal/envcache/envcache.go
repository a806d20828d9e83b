package envcache

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/tovesk/envseal/internal/secrets"
)

// Cache memoizes a decrypted environment for the process lifetime.
//
// The zero value is ready to use. Load decrypts at most once; Reset clears
// the memoized state so tests can reload with different inputs.
type Cache struct {
	mu     sync.Mutex
	loaded bool
	vars   map[string]string
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{}
}

// Load decrypts the container at sourcePath and memoizes the resulting
// mapping. Subsequent calls return the memoized mapping without touching
// the file or the key derivation again. Engine errors are wrapped with the
// source path for context.
func (c *Cache) Load(sourcePath, keyVar string) (map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		vars, err := secrets.Decrypt(sourcePath, keyVar)
		if err != nil {
			return nil, fmt.Errorf("failed to load environment from %s: %w", sourcePath, err)
		}
		c.vars = vars
		c.loaded = true
	}

	// Hand out a copy so callers cannot mutate the cached state.
	out := make(map[string]string, len(c.vars))
	for k, v := range c.vars {
		out[k] = v
	}
	return out, nil
}

// Get returns the raw value for key and whether it was present. It never
// triggers a load; call Load first.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.vars[key]
	return value, ok
}

// GetString returns the value for key, or fallback when absent.
func (c *Cache) GetString(key, fallback string) string {
	if value, ok := c.Get(key); ok {
		return value
	}
	return fallback
}

// GetBool returns the value for key parsed as a bool, or fallback when the
// key is absent or the value does not parse.
func (c *Cache) GetBool(key string, fallback bool) bool {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// GetInt returns the value for key parsed as an int, or fallback when the
// key is absent or the value does not parse.
func (c *Cache) GetInt(key string, fallback int) int {
	value, ok := c.Get(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// Reset clears the memoized environment so the next Load decrypts again.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
	c.vars = nil
}
