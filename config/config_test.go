package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load should succeed with defaults: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("expected driver postgres, got %s", cfg.Database.Driver)
	}
	if cfg.Auth.Enabled {
		t.Error("auth should be disabled by default")
	}
	if cfg.Auth.AccessTokenTTL != time.Hour {
		t.Errorf("expected access token ttl 1h, got %v", cfg.Auth.AccessTokenTTL)
	}
	if len(cfg.Server.CORS.AllowOrigins) != 1 || cfg.Server.CORS.AllowOrigins[0] != "*" {
		t.Errorf("expected permissive CORS by default, got %v", cfg.Server.CORS.AllowOrigins)
	}
}

func TestLoad_LegacyEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_DATABASE", "hr")
	t.Setenv("SECRET_KEY", "legacy-secret-key-0123456789")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("expected host from DB_HOST, got %s", cfg.Database.Host)
	}
	if cfg.Database.Port != 6543 {
		t.Errorf("expected port from DB_PORT, got %d", cfg.Database.Port)
	}
	if cfg.Database.Name != "hr" {
		t.Errorf("expected name from DB_DATABASE, got %s", cfg.Database.Name)
	}
	if cfg.Auth.JWTSecret != "legacy-secret-key-0123456789" {
		t.Errorf("expected secret from SECRET_KEY, got %s", cfg.Auth.JWTSecret)
	}
}

func TestLoad_PrefixedEnvironmentWins(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_HOST", "legacy-host")
	t.Setenv("HR_DB_HOST", "prefixed-host")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Database.Host != "prefixed-host" {
		t.Errorf("expected HR_DB_HOST to take precedence, got %s", cfg.Database.Host)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server:\n  port: 9090\ndb:\n  driver: sqlite\n  path: /tmp/hr.db\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("expected sqlite driver, got %s", cfg.Database.Driver)
	}
	if cfg.Database.SQLiteDSN() != "/tmp/hr.db?_foreign_keys=on&_busy_timeout=5000" {
		t.Errorf("unexpected sqlite dsn %s", cfg.Database.SQLiteDSN())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Driver: DriverPostgres},
		}
	}

	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, true},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, true},
		{"auth without secret", func(c *Config) { c.Auth.Enabled = true }, true},
		{"auth with short secret", func(c *Config) {
			c.Auth.Enabled = true
			c.Auth.JWTSecret = "short"
		}, true},
		{"auth with secret", func(c *Config) {
			c.Auth.Enabled = true
			c.Auth.JWTSecret = "a-long-enough-secret-value"
		}, false},
		{"rate limit without window", func(c *Config) {
			c.RateLimit.Enabled = true
			c.RateLimit.Requests = 10
		}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
