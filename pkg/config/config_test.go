package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Abraxas-365/campus/pkg/errx"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "app_name: test\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.AppName != "test" {
		t.Errorf("app_name = %q", cfg.AppName)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Database.MaxOpenConns != 25 || cfg.Database.ConnMaxLifetime != 5*time.Minute {
		t.Errorf("pool defaults = %+v", cfg.Database)
	}
	if cfg.Auth.CookieName != "wowcampus_token" || cfg.Auth.AccessTokenTTL != 24*time.Hour {
		t.Errorf("auth defaults = %+v", cfg.Auth)
	}
	if cfg.Applications.StrictTransitions {
		t.Errorf("strict transitions should default to off")
	}
}

func TestLoadFileAndEnvironment(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
  shutdown_timeout: 30s
database:
  host: file-host
  name: campus_test
applications:
  strict_transitions: true
`)
	t.Setenv("DB_HOST", "env-host")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "9000" || cfg.Server.ShutdownTimeout != 30*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Database.Host != "env-host" || cfg.Database.Port != "6543" {
		t.Errorf("environment should win over the file, got %+v", cfg.Database)
	}
	if cfg.Database.Name != "campus_test" {
		t.Errorf("name = %q", cfg.Database.Name)
	}
	if cfg.Auth.JWTSecret != "from-env" {
		t.Errorf("jwt secret = %q", cfg.Auth.JWTSecret)
	}
	if !cfg.Applications.StrictTransitions {
		t.Errorf("strict transitions not read from file")
	}

	want := "host=env-host port=6543 user=postgres password= dbname=campus_test sslmode=disable"
	if got := cfg.Database.DSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errx.IsCode(err, CodeReadFailed) {
		t.Fatalf("expected %s, got %v", CodeReadFailed, err)
	}
}

func TestValidate(t *testing.T) {
	path := writeConfig(t, `
redis:
  enabled: true
  addr: ""
`)
	_, err := Load(path)
	if !errx.IsCode(err, CodeInvalid) {
		t.Fatalf("expected %s, got %v", CodeInvalid, err)
	}
}

func TestUsesUnsafeSecret(t *testing.T) {
	cfg := &Config{}
	if !cfg.UsesUnsafeSecret() {
		t.Fatalf("empty secret should report unsafe")
	}
	if cfg.Auth.JWTSecret == "" {
		t.Fatalf("default secret not filled in")
	}

	cfg = &Config{Auth: AuthConfig{JWTSecret: "set"}}
	if cfg.UsesUnsafeSecret() || cfg.Auth.JWTSecret != "set" {
		t.Fatalf("configured secret must be kept")
	}
}
