// Package cli implements the grgen command-line interface.
//
// This package provides commands for generating DIMACS shortest-path
// fixtures at preset or custom sizes, inspecting and previewing generated
// files, managing the fixture cache, and serving generation over HTTP.
// The CLI is built using cobra with verbose logging via charmbracelet/log.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grfixtures/grgen/internal/config"
	"github.com/grfixtures/grgen/pkg/buildinfo"
	"github.com/grfixtures/grgen/pkg/cache"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "grgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "grgen",
		Short:        "grgen generates DIMACS shortest-path test fixtures",
		Long:         `grgen is a CLI tool for generating randomly weighted directed graphs in DIMACS shortest-path format (.gr files), sized by preset or custom dimensions, for use as test fixtures.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/grgen/config.toml)")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// config loads the configuration file selected by --config.
func (c *CLI) config() (config.Config, error) {
	return config.Load(c.configPath)
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCache builds the fixture cache from configuration. Backend failures
// degrade to a null cache rather than failing the command: the cache only
// memoizes seeded runs, so losing it costs time, not correctness.
func (c *CLI) newCache(ctx context.Context, cfg config.Config, noCache bool) cache.Cache {
	if noCache || cfg.Cache.Backend == config.BackendNone {
		return cache.NewNullCache()
	}

	switch cfg.Cache.Backend {
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.Redis.Addr, cfg.Cache.Redis.Password, cfg.Cache.Redis.DB)
		if err != nil {
			c.Logger.Warnf("Redis cache unavailable, caching disabled: %v", err)
			return cache.NewNullCache()
		}
		return rc
	case config.BackendMongo:
		mc, err := cache.NewMongoCache(ctx, cfg.Cache.Mongo.URI, cfg.Cache.Mongo.Database, cfg.Cache.Mongo.Collection)
		if err != nil {
			c.Logger.Warnf("Mongo cache unavailable, caching disabled: %v", err)
			return cache.NewNullCache()
		}
		return mc
	default:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warnf("File cache unavailable, caching disabled: %v", err)
			return cache.NewNullCache()
		}
		return fc
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/grgen/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
