package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadUsesDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("CINEBOB_TELEGRAM_TOKEN", "")

	path := filepath.Join(t.TempDir(), "missing.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Commands.PopularCount != 5 || cfg.Commands.PopularMax != 25 {
		t.Fatalf("popular defaults = %d/%d, want 5/25", cfg.Commands.PopularCount, cfg.Commands.PopularMax)
	}
	if cfg.Telegram.BaseURL != "https://api.telegram.org" {
		t.Fatalf("base url = %q", cfg.Telegram.BaseURL)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("logging defaults = %s/%s", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadParsesFile(t *testing.T) {
	t.Setenv("CINEBOB_TELEGRAM_TOKEN", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[telegram]
token = "12345:secret"
poll_timeout = 10

[commands]
popular_count = 3
popular_max = 10

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Telegram.Token != "12345:secret" {
		t.Fatalf("token = %q", cfg.Telegram.Token)
	}
	if cfg.Commands.PopularCount != 3 || cfg.Commands.PopularMax != 10 {
		t.Fatalf("popular = %d/%d", cfg.Commands.PopularCount, cfg.Commands.PopularMax)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging = %s/%s", cfg.Logging.Format, cfg.Logging.Level)
	}
	if cfg.Telegram.RequestTimeout <= cfg.Telegram.PollTimeout {
		t.Fatalf("request timeout %d must exceed poll timeout %d",
			cfg.Telegram.RequestTimeout, cfg.Telegram.PollTimeout)
	}
}

func TestLoadRejectsMalformedToken(t *testing.T) {
	t.Setenv("CINEBOB_TELEGRAM_TOKEN", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[telegram]\ntoken = \"nocolon\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for malformed token")
	}
}

func TestEnvTokenOverridesFile(t *testing.T) {
	t.Setenv("CINEBOB_TELEGRAM_TOKEN", "99999:fromenv")

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[telegram]\ntoken = \"12345:fromfile\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Telegram.Token != "99999:fromenv" {
		t.Fatalf("token = %q, want env override", cfg.Telegram.Token)
	}
}

func TestRequireTelegramToken(t *testing.T) {
	cfg := Default()
	cfg.Telegram.Token = ""
	err := cfg.RequireTelegramToken()
	if err == nil {
		t.Fatal("expected error for missing token")
	}
	if !strings.Contains(err.Error(), "CINEBOB_TELEGRAM_TOKEN") {
		t.Fatalf("error %q should mention the env var", err)
	}

	cfg.Telegram.Token = "12345:secret"
	if err := cfg.RequireTelegramToken(); err != nil {
		t.Fatalf("unexpected error with token set: %v", err)
	}
}

func TestPathHelpers(t *testing.T) {
	cfg := Default()
	cfg.Paths.DataDir = "/tmp/cinebob-test"

	if got := cfg.StorePath(); got != filepath.Join("/tmp/cinebob-test", "catalog.db") {
		t.Fatalf("StorePath = %q", got)
	}
	cfg.Catalog.StorePath = "/elsewhere/movies.db"
	if got := cfg.StorePath(); got != "/elsewhere/movies.db" {
		t.Fatalf("StorePath override = %q", got)
	}
	if got := cfg.SocketPath(); got != filepath.Join("/tmp/cinebob-test", "cinebob.sock") {
		t.Fatalf("SocketPath = %q", got)
	}
	if got := cfg.LockPath(); got != filepath.Join("/tmp/cinebob-test", "cinebobd.lock") {
		t.Fatalf("LockPath = %q", got)
	}
}

func TestNormalizeClampsPopularCount(t *testing.T) {
	cfg := Default()
	cfg.Commands.PopularCount = 50
	cfg.Commands.PopularMax = 10
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Commands.PopularCount != 10 {
		t.Fatalf("popular count = %d, want clamped to 10", cfg.Commands.PopularCount)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("CINEBOB_TELEGRAM_TOKEN", "")

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if _, _, exists, err := Load(path); err != nil || !exists {
		t.Fatalf("sample config should load cleanly, exists=%v err=%v", exists, err)
	}
}
