package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gradletree/gradletree/pkg/buildinfo"
	"github.com/gradletree/gradletree/pkg/cache"
	"github.com/gradletree/gradletree/pkg/httputil"
)

const (
	// appName is the application name used for directories and display.
	appName = "gradletree"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "gradletree",
		Short: "Gradletree extracts dependency trees from Gradle builds",
		Long: `Gradletree runs a project's own Gradle to capture its resolved dependency
configurations and assembles them into a portable JSON tree, with POM file
locations for external packages and source paths for workspace projects.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.extractCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newByteCache returns the shared on-disk cache, or a NullCache when caching
// is disabled or the cache directory cannot be determined. A non-empty
// override replaces the default location.
func newByteCache(noCache bool, override string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if override != "" {
		return cache.NewFileCache(override)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(filepath.Join(dir, "data"))
}

// cacheDir returns the cache directory using XDG standard (~/.cache/gradletree/).
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

// newMissCache returns the negative-lookup cache for remote POM fetches, or
// nil (disabled) when caching is off or the directory is unavailable.
func newMissCache(noCache bool, ttl time.Duration) (*httputil.Cache, error) {
	if noCache {
		return nil, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, nil
	}
	misses, err := httputil.NewCache(filepath.Join(dir, "http"), ttl)
	if err != nil {
		return nil, err
	}
	return misses.Namespace("pom-miss"), nil
}

// pomStoreDir returns the directory where fetched POM files are materialized.
func pomStoreDir() (string, error) {
	dir, err := cacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "poms"), nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
