package bot

import (
	"log/slog"
	"os"
	"testing"
)

// unsetenv removes a variable for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset %s: %v", key, err)
	}
}

func TestLoadConfig_WithValidToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token-123")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DiscordToken != "test-token-123" {
		t.Errorf("expected token %q, got %q", "test-token-123", cfg.DiscordToken)
	}
}

func TestLoadConfig_WithEmptyToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := LoadConfig()
	if err == nil {
		t.Error("expected error for missing token, got nil")
	}
}

func TestLoadConfig_LoggingDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	unsetenv(t, "LOG_FORMAT")
	unsetenv(t, "LOG_LEVEL")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LogFormat != LogFormatJSON {
		t.Errorf("expected format %q, got %q", LogFormatJSON, cfg.LogFormat)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected level %v, got %v", slog.LevelInfo, cfg.LogLevel)
	}
}

func TestLoadConfig_LoggingOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LogFormat != LogFormatText {
		t.Errorf("expected format %q, got %q", LogFormatText, cfg.LogFormat)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected level %v, got %v", slog.LevelDebug, cfg.LogLevel)
	}
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("LOG_LEVEL", "loud")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for invalid log level, got nil")
	}
}
