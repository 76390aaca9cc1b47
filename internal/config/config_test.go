package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	yaml := `
http:
  addr: ":9090"
limits:
  reports_per_minute: 9
bot:
  moderator_chat_id: 4242
  report_retention: 720h
geo:
  cities:
    - city: Testville
      lat: 1.5
      lon: 2.5
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Limits.ReportsPerMinute != 9 {
		t.Fatalf("unexpected reports_per_minute: %d", cfg.Limits.ReportsPerMinute)
	}
	if cfg.Bot.ModeratorChatID != 4242 {
		t.Fatalf("unexpected moderator chat id: %d", cfg.Bot.ModeratorChatID)
	}
	if cfg.Bot.ReportRetention.String() != "720h0m0s" {
		t.Fatalf("unexpected report retention: %s", cfg.Bot.ReportRetention)
	}
	if len(cfg.Geo.Cities) != 1 || cfg.Geo.Cities[0].City != "Testville" {
		t.Fatalf("unexpected geo cities override: %+v", cfg.Geo.Cities)
	}

	if cfg.Limits.FeedbackPerMinute != 5 {
		t.Fatalf("feedback_per_minute default should stay 5")
	}
	if cfg.Auth.JWTAccessTTL.String() != "15m0s" {
		t.Fatalf("unexpected default access ttl: %s", cfg.Auth.JWTAccessTTL)
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config with missing file: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected default http addr: %s", cfg.HTTP.Addr)
	}
	if len(cfg.Geo.Cities) == 0 {
		t.Fatalf("default geocoding table should not be empty")
	}
	if cfg.Media.MaxUploadBytes != 10<<20 {
		t.Fatalf("unexpected default max upload bytes: %d", cfg.Media.MaxUploadBytes)
	}
	if cfg.Auth.OAuth.UserInfoURL == "" {
		t.Fatalf("default oauth userinfo url should be set")
	}
}

func TestEnvOverridesWinOverDefaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("POSTGRES_DSN", "postgres://other:other@db:5432/other")
	t.Setenv("BOT_MODERATOR_CHAT_ID", "777")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Postgres.DSN != "postgres://other:other@db:5432/other" {
		t.Fatalf("postgres dsn env override not applied: %s", cfg.Postgres.DSN)
	}
	if cfg.Bot.ModeratorChatID != 777 {
		t.Fatalf("moderator chat id env override not applied: %d", cfg.Bot.ModeratorChatID)
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV",
		"HTTP_ADDR",
		"HTTP_READ_TIMEOUT",
		"HTTP_WRITE_TIMEOUT",
		"HTTP_IDLE_TIMEOUT",
		"LOG_LEVEL",
		"POSTGRES_DSN",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"S3_ENDPOINT",
		"S3_ACCESS_KEY",
		"S3_SECRET_KEY",
		"S3_BUCKET",
		"S3_USE_SSL",
		"JWT_SECRET",
		"JWT_ACCESS_TTL",
		"REFRESH_TTL",
		"OAUTH_USERINFO_URL",
		"BOT_TOKEN",
		"BOT_MODERATOR_CHAT_ID",
		"BOT_POLL_INTERVAL",
		"BOT_CLEANUP_INTERVAL",
		"BOT_REPORT_RETENTION",
	} {
		t.Setenv(key, "")
	}
}
