package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr    string
	PostgresDSN string

	JWTSecret  string
	DigestSalt string

	TokenTTL         time.Duration
	TokenLeeway      time.Duration
	TestExpiredToken bool

	LoginRateLimit         int
	LoginRateWindowSeconds int

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:               addr,
		PostgresDSN:            os.Getenv("POSTGRES_DSN"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		DigestSalt:             os.Getenv("DIGEST_SALT"),
		TokenTTL:               time.Duration(envIntDefault("TOKEN_TTL_HOURS", 168)) * time.Hour,
		TokenLeeway:            time.Duration(envIntDefault("TOKEN_LEEWAY_SECONDS", 0)) * time.Second,
		TestExpiredToken:       envBoolDefault("TEST_EXPIRED_TOKEN", false),
		LoginRateLimit:         envIntDefault("LOGIN_RATE_LIMIT", 0),
		LoginRateWindowSeconds: envIntDefault("LOGIN_RATE_WINDOW_SECONDS", 60),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                envIntDefault("REDIS_DB", 0),
	}
}

// Validate rejects configurations that cannot serve requests. The signing
// secret and the digest salt have no safe defaults.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.DigestSalt == "" {
		return errors.New("DIGEST_SALT is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL_HOURS must be positive")
	}
	if c.TokenLeeway < 0 {
		return errors.New("TOKEN_LEEWAY_SECONDS must not be negative")
	}
	return nil
}

func envIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
