// Package cache stores the result of IP geolocation on disk so that
// repeated CLI invocations (a status bar polls every few seconds) do not
// hammer the lookup service. Computed prayer times are never cached; the
// calculation is offline and cheap enough to redo on every call.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hmaged/salat/internal/geo"
)

const (
	geoCacheFile = "geolocation.json"
	geoTTL       = 24 * time.Hour
)

// Cache provides file-based caching for geolocation data.
type Cache struct {
	dir string
}

// GeoEntry stores a cached geolocation result with a timestamp.
type GeoEntry struct {
	Location geo.Location `json:"location"`
	CachedAt time.Time    `json:"cached_at"`
}

// New creates a Cache rooted at the given directory.
// If dir is empty, it defaults to ~/.cache/salat/.
func New(dir string) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".cache", "salat")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create cache directory %s: %w", dir, err)
	}

	return &Cache{dir: dir}, nil
}

// LoadGeo attempts to read a cached geolocation result.
// Returns nil if the cache is missing, unreadable, or older than the TTL.
func (c *Cache) LoadGeo() *geo.Location {
	data, err := os.ReadFile(filepath.Join(c.dir, geoCacheFile))
	if err != nil {
		return nil
	}

	var entry GeoEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}

	if time.Since(entry.CachedAt) > geoTTL {
		return nil
	}

	return &entry.Location
}

// SaveGeo writes a geolocation result to the cache.
func (c *Cache) SaveGeo(loc *geo.Location) error {
	entry := GeoEntry{
		Location: *loc,
		CachedAt: time.Now(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal geo cache: %w", err)
	}

	path := filepath.Join(c.dir, geoCacheFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write geo cache: %w", err)
	}

	return nil
}

// Clear removes the cached geolocation, if present.
func (c *Cache) Clear() error {
	err := os.Remove(filepath.Join(c.dir, geoCacheFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to clear geo cache: %w", err)
	}
	return nil
}
