package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jrebirth-labs/jrforge/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Configuration keys.
const (
	KeyReleaseRepository  = "repositories.release"
	KeySnapshotRepository = "repositories.snapshot"
	KeyHTTPTimeout        = "http_timeout"
	KeyCacheTTL           = "cache_ttl"
	KeyNoColor            = "no_color"
)

// Defaults for the keys above.
const (
	DefaultReleaseRepository  = "http://repo.jrebirth.org/libs-release"
	DefaultSnapshotRepository = "http://repo.jrebirth.org/libs-snapshot"
	DefaultHTTPTimeout        = 15 * time.Second
	DefaultCacheTTL           = 24 * time.Hour
)

// Dir returns the path to the config directory (~/.jrforge/).
// JRFORGE_HOME overrides the location.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.jrforge/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyReleaseRepository, DefaultReleaseRepository)
	viper.SetDefault(KeySnapshotRepository, DefaultSnapshotRepository)
	viper.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout)
	viper.SetDefault(KeyCacheTTL, DefaultCacheTTL)
	viper.SetDefault(KeyNoColor, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// ReleaseRepository returns the URL of the JRebirth release repository.
func ReleaseRepository() string { return viper.GetString(KeyReleaseRepository) }

// SnapshotRepository returns the URL of the JRebirth snapshot repository.
func SnapshotRepository() string { return viper.GetString(KeySnapshotRepository) }

// HTTPTimeout bounds each version lookup request.
func HTTPTimeout() time.Duration {
	if d := viper.GetDuration(KeyHTTPTimeout); d > 0 {
		return d
	}
	return DefaultHTTPTimeout
}

// CacheTTL is how long fetched version lists are reused.
func CacheTTL() time.Duration {
	if d := viper.GetDuration(KeyCacheTTL); d > 0 {
		return d
	}
	return DefaultCacheTTL
}

// NoColor reports whether status lines should be printed without styling.
func NoColor() bool { return viper.GetBool(KeyNoColor) }

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
