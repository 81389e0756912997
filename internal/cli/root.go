package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/distrograph/distrograph/pkg/buildinfo"
	"github.com/distrograph/distrograph/pkg/cache"
	"github.com/distrograph/distrograph/pkg/distro"
	"github.com/distrograph/distrograph/pkg/distrowatch"
	"github.com/distrograph/distrograph/pkg/errors"
)

// recordsFile is the cached snapshot written under the output dir.
const recordsFile = "dists.json"

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Explore Linux distribution lineage",
		Long:    "Fetch Linux distribution metadata, combine it with archive data,\nand export it as JSON, CSV, reports, and family trees.",
		Version: buildinfo.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(buildinfo.Template())
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newFetchCmd(),
		newExportCmd(),
		newTreeCmd(),
		newCombineCmd(),
		newRenderCmd(),
		newServeCmd(),
		newBrowseCmd(),
		newCacheCmd(),
		newCompletionCmd(rootCmd),
	)

	return rootCmd.ExecuteContext(ctx)
}

// newCacheBackend picks the response cache based on config: Redis when an
// address is configured, otherwise a file cache, falling back to no cache
// when neither is usable.
func newCacheBackend(ctx context.Context, cfg Config, noCache bool) cache.Cache {
	logger := loggerFromContext(ctx)

	if noCache {
		return cache.NewNullCache()
	}

	if cfg.RedisAddr != "" {
		backend, err := cache.NewRedisCache(ctx, cfg.RedisAddr)
		if err == nil {
			logger.Debug("using redis cache", "addr", cfg.RedisAddr)
			return backend
		}
		logger.Warn("redis unavailable, falling back to file cache", "addr", cfg.RedisAddr, "error", err)
	}

	dir, err := cacheDir(cfg)
	if err != nil {
		logger.Warn("cache dir unavailable, caching disabled", "error", err)
		return cache.NewNullCache()
	}
	backend, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Warn("file cache unavailable, caching disabled", "dir", dir, "error", err)
		return cache.NewNullCache()
	}
	logger.Debug("using file cache", "dir", dir)
	return backend
}

// sourceFlags are shared by commands that need distribution records. They
// resolve records from, in order: an explicit --input file, the cached
// snapshot under the output dir, or a fresh fetch.
type sourceFlags struct {
	input   string
	refresh bool
	noCache bool
	workers int
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "read records from a JSON file instead of fetching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "ignore cached data and fetch fresh")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the HTTP response cache")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "concurrent detail fetches (0 = default)")
}

// records resolves the distribution records for a command.
func (f *sourceFlags) records(ctx context.Context, cfg Config) ([]distro.Record, error) {
	logger := loggerFromContext(ctx)

	if f.input != "" {
		records, err := distro.ReadFile(f.input)
		if err != nil {
			return nil, err
		}
		logger.Debug("loaded records", "path", f.input, "count", len(records))
		return records, nil
	}

	snapshot := filepath.Join(cfg.OutputDir, recordsFile)
	if !f.refresh {
		if records, err := distro.ReadFile(snapshot); err == nil {
			logger.Debug("loaded cached snapshot", "path", snapshot, "count", len(records))
			return records, nil
		}
	}

	backend := newCacheBackend(ctx, cfg, f.noCache)
	defer backend.Close()

	client := distrowatch.NewClient(cfg.BaseURL, backend, cfg.TTL())
	records, err := client.FetchList(ctx, distrowatch.Options{
		Search:  cfg.Search,
		Refresh: f.refresh,
		Workers: f.workers,
		Logger:  logger.Warnf,
	})
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create output dir %s", cfg.OutputDir)
	}
	if err := distro.WriteFile(records, snapshot); err != nil {
		return nil, err
	}
	logger.Debug("wrote snapshot", "path", snapshot, "count", len(records))

	return records, nil
}

// openOutput opens the target for rendered output: stdout when path is
// empty or "-", otherwise the named file.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
