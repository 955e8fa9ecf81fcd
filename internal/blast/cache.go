package blast

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Cache is a JSON file of earlier search results. A nil Cache is a
// cache that holds nothing.
type Cache struct {
	// Path to the cache file
	Path string

	// TTL is how long an entry is used for. Zero never expires entries
	TTL time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
	loaded  bool
}

type cacheEntry struct {
	Matches     []string `json:"matches"`
	RetrievedAt int64    `json:"retrieved_at"`
}

// NewCache returns a Cache stored in dir.
func NewCache(dir string, ttl time.Duration) *Cache {
	return &Cache{
		Path: filepath.Join(dir, "blast_cache.json"),
		TTL:  ttl,
	}
}

// load reads the cache file once. A missing or corrupt file is an empty cache.
func (c *Cache) load() {
	if c.loaded {
		return
	}
	c.loaded = true
	c.entries = make(map[string]cacheEntry)

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &c.entries); err != nil || c.entries == nil {
		c.entries = make(map[string]cacheEntry)
	}
}

// Get the matches of a query if cached and not expired.
func (c *Cache) Get(key string) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.TTL > 0 && time.Since(time.Unix(e.RetrievedAt, 0)) > c.TTL {
		return nil, false
	}
	return e.Matches, true
}

// Set the matches of a query and save the cache file.
func (c *Cache) Set(key string, matches []string) error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.load()
	c.entries[key] = cacheEntry{Matches: matches, RetrievedAt: time.Now().Unix()}

	b, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return fmt.Errorf("failed to make cache dir: %v", err)
	}
	return os.WriteFile(c.Path, b, 0o644)
}
