package config

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr                  string
	GRPCAddr                  string
	LogLevel                  slog.Level
	ForceLogoutOnUnauthorized bool
	Backend                   BackendConfig
	Token                     TokenConfig
	Redis                     RedisConfig
	DB                        DBConfig
	Web                       WebConfig
}

type BackendConfig struct {
	URL     string
	Timeout time.Duration
}

type TokenConfig struct {
	Store      string // file, redis or postgres
	File       string
	Key        string
	SealSecret string
}

type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type WebConfig struct {
	CSRFKey []byte // nil disables CSRF protection
	// SessionKey signs the browser binding cookie. nil means a random key
	// per process, so browsers must log in again after a restart.
	SessionKey    []byte
	SecureCookies bool
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr: getEnv("HTTP_ADDR", "127.0.0.1:3000"),
		GRPCAddr: getEnv("GRPC_ADDR", ":50051"),
		Backend: BackendConfig{
			URL: getEnv("BACKEND_URL", "http://localhost:8080"),
		},
		Token: TokenConfig{
			Store:      strings.ToLower(getEnv("TOKEN_STORE", "file")),
			File:       getEnv("TOKEN_FILE", ".foodadmin/token"),
			Key:        getEnv("TOKEN_KEY", "token"),
			SealSecret: os.Getenv("TOKEN_SEAL_SECRET"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Username: os.Getenv("REDIS_USERNAME"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "foodadmin"),
		},
	}

	var err error
	if cfg.Backend.Timeout, err = getDuration("BACKEND_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}
	if cfg.ForceLogoutOnUnauthorized, err = getBool("FORCE_LOGOUT_ON_UNAUTHORIZED", true); err != nil {
		return nil, err
	}
	if cfg.Web.SecureCookies, err = getBool("SECURE_COOKIES", false); err != nil {
		return nil, err
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.Web.CSRFKey, err = getKey("CSRF_KEY"); err != nil {
		return nil, err
	}
	if cfg.Web.SessionKey, err = getKey("SESSION_KEY"); err != nil {
		return nil, err
	}

	switch cfg.Token.Store {
	case "file", "redis", "postgres":
	default:
		return nil, fmt.Errorf("TOKEN_STORE %q: want file, redis or postgres", cfg.Token.Store)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// getKey decodes a 32-byte key given as 64 hex characters. Unset yields nil.
func getKey(key string) ([]byte, error) {
	v := os.Getenv(key)
	if v == "" {
		return nil, nil
	}
	raw, err := hex.DecodeString(v)
	if err != nil || len(raw) != 32 {
		return nil, fmt.Errorf("%s must be 64 hex characters", key)
	}
	return raw, nil
}

func getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
