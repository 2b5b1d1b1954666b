// Package config loads the optional grgen configuration file.
//
// The file is TOML and is looked up at the path given by --config, the
// GRGEN_CONFIG environment variable, or ~/.config/grgen/config.toml, in
// that order. A missing file yields the defaults; everything the file can
// express is also reachable through flags, so most installs never have one.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Backend names accepted in the [cache] section.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "GRGEN_CONFIG"

// Config is the root of the configuration file.
type Config struct {
	// OutputDir is the default directory for generated fixtures.
	// Empty means the current directory.
	OutputDir string `toml:"output_dir"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects and configures the fixture cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", "mongo", or "none".
	Backend string `toml:"backend"`

	// TTLHours bounds the lifetime of cached fixtures. Zero keeps them
	// until evicted manually with `grgen cache clear`.
	TTLHours int `toml:"ttl_hours"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig holds connection settings for the mongo backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Backend: BackendFile,
			Redis:   RedisConfig{Addr: "localhost:6379"},
			Mongo: MongoConfig{
				URI:        "mongodb://localhost:27017",
				Database:   "grgen",
				Collection: "fixtures",
			},
		},
	}
}

// Load reads the configuration from path. An empty path falls back to
// GRGEN_CONFIG and then the default location. Only a missing file at the
// default location is tolerated; a path named by the flag or the
// environment variable must exist.
func Load(path string) (Config, error) {
	explicit := path != ""
	if path == "" {
		if path = os.Getenv(EnvConfigPath); path != "" {
			explicit = true
		}
	}
	if path == "" {
		var err error
		if path, err = defaultPath(); err != nil {
			return Default(), nil
		}
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendMongo, BackendNone, "":
		return nil
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
}

// defaultPath returns ~/.config/grgen/config.toml, honoring XDG_CONFIG_HOME.
func defaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "grgen", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "grgen", "config.toml"), nil
}
