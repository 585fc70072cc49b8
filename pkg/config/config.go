// Package config loads the optional gradletree.toml settings file.
//
// The file is looked up in the project directory first, then in the user's
// config directory (~/.config/gradletree/gradletree.toml). A missing file
// yields the defaults; every field can still be overridden by CLI flags.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gradletree/gradletree/pkg/errors"
)

// FileName is the settings file name searched for.
const FileName = "gradletree.toml"

// Config holds the tool's settings.
type Config struct {
	// Gradle overrides executable discovery (wrapper, then PATH).
	Gradle string `toml:"gradle"`

	// Offline disables remote POM fetching.
	Offline bool `toml:"offline"`

	// Configurations filters extraction to the named configurations.
	// Empty means all resolvable configurations.
	Configurations []string `toml:"configurations"`

	// Repositories are extra Maven repository URLs consulted for POMs in
	// addition to the ones the build declares.
	Repositories []string `toml:"repositories"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig controls the POM response cache.
type CacheConfig struct {
	// Dir is the cache directory. Empty selects ~/.cache/gradletree.
	Dir string `toml:"dir"`

	// TTL is the entry lifetime, e.g. "24h". Empty selects 24h; "0" never
	// expires.
	TTL string `toml:"ttl"`
}

// Default returns the zero configuration with defaults applied.
func Default() *Config {
	return &Config{}
}

// CacheTTL parses the configured TTL, defaulting to 24 hours.
func (c *Config) CacheTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid cache ttl %q", c.Cache.TTL)
	}
	return d, nil
}

// IncludesConfiguration reports whether the named configuration passes the
// configured filter. An empty filter passes everything.
func (c *Config) IncludesConfiguration(name string) bool {
	if len(c.Configurations) == 0 {
		return true
	}
	for _, want := range c.Configurations {
		if want == name {
			return true
		}
	}
	return false
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	for _, name := range c.Configurations {
		if err := errors.ValidateConfigurationName(name); err != nil {
			return err
		}
	}
	for _, u := range c.Repositories {
		if err := errors.ValidateURL(u); err != nil {
			return err
		}
	}
	_, err := c.CacheTTL()
	return err
}

// Load reads the settings for a project directory.
//
// Search order: <projectDir>/gradletree.toml, then the user config file.
// A missing file is not an error; a malformed one is.
func Load(projectDir string) (*Config, error) {
	paths := []string{filepath.Join(projectDir, FileName)}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "gradletree", FileName))
	}

	for _, path := range paths {
		cfg, err := loadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return Default(), nil
}

// LoadFile reads the settings from an explicit path.
func LoadFile(path string) (*Config, error) {
	return loadFile(path)
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
