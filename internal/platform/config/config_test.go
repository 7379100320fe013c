package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return fs
}

func TestLoadDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")
	cfg, err := Load(newFlags(t, "--env-file", missing))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.EnvFileLoaded {
		t.Error("absent env file reported as loaded")
	}
	if cfg.Addr() != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.SubmitterUserID != 1 {
		t.Errorf("SubmitterUserID = %d, want 1", cfg.SubmitterUserID)
	}
	if cfg.DBMaxOpenConns != 5 {
		t.Errorf("DBMaxOpenConns = %d, want 5", cfg.DBMaxOpenConns)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("judge queue should be disabled by default, RedisAddr = %q", cfg.RedisAddr)
	}
	if cfg.RequestTimeout != 60*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	want := "host=localhost port=5432 user=user password=password dbname=judge sslmode=disable"
	if cfg.DBConnStr != want {
		t.Errorf("DBConnStr = %q, want %q", cfg.DBConnStr, want)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://judge@db/judge")
	t.Setenv("API_PORT", "9000")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test/, http://b.test")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load(newFlags(t, "--env-file", filepath.Join(t.TempDir(), "none")))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DBConnStr != "postgres://judge@db/judge" {
		t.Errorf("DBConnStr = %q", cfg.DBConnStr)
	}
	if cfg.APIPort != "9000" || cfg.RedisAddr != "redis:6379" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Errorf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v", cfg.ShutdownTimeout)
	}
}

func TestLoadEnvFileAndFlags(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(envFile, []byte("JUDGE_API_TEST_MARKER=1\nLOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("JUDGE_API_TEST_MARKER")
		os.Unsetenv("LOG_LEVEL")
	})

	cfg, err := Load(newFlags(t, "--env-file", envFile, "--migrate", "--port", "7070"))
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.EnvFileLoaded || cfg.LogLevel != "debug" {
		t.Errorf("env file not applied: loaded=%v level=%q", cfg.EnvFileLoaded, cfg.LogLevel)
	}
	if !cfg.MigrateOnStart {
		t.Error("--migrate did not enable MigrateOnStart")
	}
	if cfg.APIPort != "7070" {
		t.Errorf("--port ignored, APIPort = %q", cfg.APIPort)
	}
}

func TestLoadRejectsBadSubmitter(t *testing.T) {
	t.Setenv("SUBMITTER_USER_ID", "0")
	if _, err := Load(newFlags(t, "--env-file", filepath.Join(t.TempDir(), "none"))); err == nil {
		t.Fatal("expected an error for SUBMITTER_USER_ID=0")
	}
}
