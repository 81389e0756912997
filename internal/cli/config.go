package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/distrograph/distrograph/pkg/distrowatch"
	"github.com/distrograph/distrograph/pkg/errors"
)

// appName is the application name used for directories and display.
const appName = "distrograph"

// Config holds the settings read from the optional config file
// (~/.config/distrograph/config.toml). Command-line flags override
// config file values, which override the defaults.
type Config struct {
	// BaseURL is the site to fetch from (default: DistroWatch).
	BaseURL string `toml:"base_url"`

	// Search is the query appended to /search.php.
	Search string `toml:"search"`

	// OutputDir is where cached data and exports land.
	OutputDir string `toml:"output_dir"`

	// CacheDir overrides the XDG cache location for HTTP responses.
	CacheDir string `toml:"cache_dir"`

	// CacheTTLHours is how long HTTP responses stay fresh.
	CacheTTLHours int `toml:"cache_ttl_hours"`

	// RedisAddr, when set, switches the response cache to Redis so several
	// instances share fetched pages.
	RedisAddr string `toml:"redis_addr"`
}

func defaultConfig() Config {
	return Config{
		BaseURL:       distrowatch.DefaultBaseURL,
		Search:        distrowatch.DefaultSearch,
		OutputDir:     "out",
		CacheTTLHours: 24,
	}
}

// loadConfig reads the config file if present and applies defaults for
// anything left unset. A missing file is not an error.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	var fileCfg Config
	if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if fileCfg.BaseURL != "" {
		cfg.BaseURL = fileCfg.BaseURL
	}
	if fileCfg.Search != "" {
		cfg.Search = fileCfg.Search
	}
	if fileCfg.OutputDir != "" {
		cfg.OutputDir = fileCfg.OutputDir
	}
	if fileCfg.CacheDir != "" {
		cfg.CacheDir = fileCfg.CacheDir
	}
	if fileCfg.CacheTTLHours > 0 {
		cfg.CacheTTLHours = fileCfg.CacheTTLHours
	}
	if fileCfg.RedisAddr != "" {
		cfg.RedisAddr = fileCfg.RedisAddr
	}

	return cfg, nil
}

// TTL returns the configured cache TTL as a duration.
func (c Config) TTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}

// configPath returns the config file location using the XDG standard
// (~/.config/distrograph/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// cacheDir returns the HTTP cache directory using the XDG standard
// (~/.cache/distrograph/) unless overridden by config.
func cacheDir(cfg Config) (string, error) {
	if cfg.CacheDir != "" {
		return cfg.CacheDir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
