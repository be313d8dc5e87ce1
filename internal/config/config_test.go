package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "BACKEND_URL", "BACKEND_TIMEOUT", "TOKEN_STORE", "TOKEN_KEY",
		"SESSION_KEY", "CSRF_KEY", "LOG_LEVEL", "FORCE_LOGOUT_ON_UNAUTHORIZED", "REDIS_DB"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:3000" || cfg.Backend.URL != "http://localhost:8080" || cfg.Backend.Timeout != 0 {
		t.Errorf("Load() = %+v", cfg)
	}
	if cfg.Token.Store != "file" || cfg.Token.Key != "token" {
		t.Errorf("token config = %+v", cfg.Token)
	}
	if !cfg.ForceLogoutOnUnauthorized || cfg.Web.CSRFKey != nil || cfg.Web.SessionKey != nil || cfg.LogLevel != slog.LevelInfo {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name: "Overrides",
			env: map[string]string{
				"BACKEND_TIMEOUT":              "3s",
				"SESSION_KEY":                  strings.Repeat("cd", 32),
				"TOKEN_STORE":                  "Redis",
				"FORCE_LOGOUT_ON_UNAUTHORIZED": "false",
				"LOG_LEVEL":                    "debug",
				"CSRF_KEY":                     strings.Repeat("ab", 32),
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Backend.Timeout != 3*time.Second {
					t.Errorf("Backend.Timeout = %v", cfg.Backend.Timeout)
				}
				if cfg.Token.Store != "redis" || cfg.ForceLogoutOnUnauthorized || cfg.LogLevel != slog.LevelDebug {
					t.Errorf("Load() = %+v", cfg)
				}
				if len(cfg.Web.CSRFKey) != 32 || len(cfg.Web.SessionKey) != 32 {
					t.Errorf("key lengths = %d %d", len(cfg.Web.CSRFKey), len(cfg.Web.SessionKey))
				}
			},
		},
		{name: "Bad timeout", env: map[string]string{"BACKEND_TIMEOUT": "soon"}, wantErr: "BACKEND_TIMEOUT"},
		{name: "Bad store", env: map[string]string{"TOKEN_STORE": "etcd"}, wantErr: "TOKEN_STORE"},
		{name: "Short csrf key", env: map[string]string{"CSRF_KEY": "abcd"}, wantErr: "CSRF_KEY"},
		{name: "Non-hex session key", env: map[string]string{"SESSION_KEY": strings.Repeat("zz", 32)}, wantErr: "SESSION_KEY"},
		{name: "Listen address override", env: map[string]string{"HTTP_ADDR": ":3000"}, check: func(t *testing.T, cfg *Config) {
			if cfg.HTTPAddr != ":3000" {
				t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
			}
		}},
		{name: "Bad bool", env: map[string]string{"SECURE_COOKIES": "maybe"}, wantErr: "SECURE_COOKIES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := Load()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Load() error = %v, want mention of %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}
