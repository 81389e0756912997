package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/distrograph/distrograph/pkg/distrowatch"
	"github.com/distrograph/distrograph/pkg/errors"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Point XDG_CONFIG_HOME at an empty dir so no config file is found.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.BaseURL != distrowatch.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
	if cfg.OutputDir != "out" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "out")
	}
	if cfg.CacheTTLHours != 24 {
		t.Errorf("CacheTTLHours = %d, want 24", cfg.CacheTTLHours)
	}
	if cfg.TTL() != 24*time.Hour {
		t.Errorf("TTL() = %v, want 24h", cfg.TTL())
	}
}

func TestLoadConfigFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	content := `base_url = "http://example.test"
output_dir = "exports"
cache_ttl_hours = 6
redis_addr = "localhost:6379"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if cfg.BaseURL != "http://example.test" {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, "http://example.test")
	}
	if cfg.OutputDir != "exports" {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, "exports")
	}
	if cfg.TTL() != 6*time.Hour {
		t.Errorf("TTL() = %v, want 6h", cfg.TTL())
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q, want %q", cfg.RedisAddr, "localhost:6379")
	}

	// Fields omitted from the file keep their defaults.
	if cfg.Search != distrowatch.DefaultSearch {
		t.Errorf("Search = %q, want default", cfg.Search)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadConfig()
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("loadConfig() error = %v, want INVALID_CONFIG", err)
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir(Config{})
	if err != nil {
		t.Fatalf("cacheDir() error = %v", err)
	}
	if want := filepath.Join("/tmp/xdg-cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}

	// Config override wins over XDG.
	dir, err = cacheDir(Config{CacheDir: "/custom/cache"})
	if err != nil {
		t.Fatalf("cacheDir() error = %v", err)
	}
	if dir != "/custom/cache" {
		t.Errorf("cacheDir() = %q, want %q", dir, "/custom/cache")
	}
}
