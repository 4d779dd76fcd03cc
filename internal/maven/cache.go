package maven

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// VersionCache holds a cached version lookup for one artifact.
type VersionCache struct {
	Artifact  string    `json:"artifact"`
	Versions  []string  `json:"versions"`
	CheckedAt time.Time `json:"checked_at"`
}

func cacheFileName(artifact string) string {
	return "versions-" + strings.NewReplacer(":", "_", "/", "_").Replace(artifact) + ".json"
}

// LoadCache reads the cache for artifact ("group:artifact").
// Returns nil, nil if no cache file exists.
func LoadCache(fs afero.Fs, dir, artifact string) (*VersionCache, error) {
	path := filepath.Join(dir, cacheFileName(artifact))

	data, err := afero.ReadFile(fs, path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading version cache: %w", err)
	}

	var cache VersionCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("parsing version cache: %w", err)
	}
	return &cache, nil
}

// SaveCache writes the cache to dir.
func SaveCache(fs afero.Fs, dir string, cache *VersionCache) error {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling version cache: %w", err)
	}

	path := filepath.Join(dir, cacheFileName(cache.Artifact))
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("writing version cache: %w", err)
	}
	return nil
}

// IsCacheStale returns true if the cache is nil, empty, or older than maxAge.
func IsCacheStale(cache *VersionCache, maxAge time.Duration, now time.Time) bool {
	if cache == nil || len(cache.Versions) == 0 {
		return true
	}
	return now.Sub(cache.CheckedAt) > maxAge
}
