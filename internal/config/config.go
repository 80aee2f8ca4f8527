// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from a YAML
// file and environment variables. It provides a centralized Config struct
// used across the application.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

const defaultDBPassword = "changeme"

// Config holds all application configuration values.
type Config struct {
	// Server settings
	Host     string `yaml:"host" env:"APP_HOST" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"APP_PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"APP_ENV" env-default:"development"` // "development", "production", "testing"
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`

	HTTP   HTTPConfig   `yaml:"http"`
	Store  StoreConfig  `yaml:"store"`
	DB     DBConfig     `yaml:"db"`
	Valkey ValkeyConfig `yaml:"valkey"`
	Cache  CacheConfig  `yaml:"cache"`
	Auth   AuthConfig   `yaml:"auth"`
	Limits LimitsConfig `yaml:"limits"`
}

// HTTPConfig holds server timeouts and the counter rate limit.
type HTTPConfig struct {
	RequestTimeout  time.Duration `yaml:"request_timeout" env:"HTTP_REQUEST_TIMEOUT" env-default:"15s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
	CounterLimit    int           `yaml:"counter_limit" env:"COUNTER_RATE_LIMIT" env-default:"60"`
	CounterWindow   time.Duration `yaml:"counter_window" env:"COUNTER_RATE_WINDOW" env-default:"1m"`
	// TrustProxy reads client addresses from X-Forwarded-For / X-Real-IP.
	TrustProxy bool `yaml:"trust_proxy" env:"TRUST_PROXY" env-default:"false"`
}

// StoreConfig selects the storage backend.
type StoreConfig struct {
	Driver string `yaml:"driver" env:"STORE_DRIVER" env-default:"postgres"`
	// Seed loads development content into an empty database.
	Seed bool `yaml:"seed" env:"STORE_SEED" env-default:"true"`
}

// DBConfig is the PostgreSQL connection. URL, when set, wins over the parts.
type DBConfig struct {
	URL             string        `yaml:"url" env:"DATABASE_URL"`
	Host            string        `yaml:"host" env:"POSTGRES_HOST" env-default:"localhost"`
	Port            string        `yaml:"port" env:"POSTGRES_PORT" env-default:"5432"`
	User            string        `yaml:"user" env:"POSTGRES_USER" env-default:"contentdesk"`
	Password        string        `yaml:"password" env:"POSTGRES_PASSWORD" env-default:"changeme"`
	Name            string        `yaml:"name" env:"POSTGRES_DB" env-default:"contentdesk"`
	MaxOpenConns    int           `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"30m"`
}

// ValkeyConfig is the shared response cache. An empty Addr selects the
// in-process cache.
type ValkeyConfig struct {
	Addr     string `yaml:"addr" env:"VALKEY_ADDR"`
	Password string `yaml:"password" env:"VALKEY_PASSWORD"`
	DB       int    `yaml:"db" env:"VALKEY_DB" env-default:"0"`
}

// CacheConfig tunes the public response cache.
type CacheConfig struct {
	TTL  time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"5m"`
	Size int           `yaml:"size" env:"CACHE_SIZE" env-default:"1000"`
}

// AuthConfig verifies bearer tokens on protected routes.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
	Issuer    string `yaml:"issuer" env:"AUTH_ISSUER"`
}

// LimitsConfig bounds page sizes.
type LimitsConfig struct {
	Default int `yaml:"default" env:"PAGE_DEFAULT_LIMIT" env-default:"20"`
	Max     int `yaml:"max" env:"PAGE_MAX_LIMIT" env-default:"100"`
}

// Load reads the configuration. Sources, first match wins: an explicit
// path, the CONFIG_PATH variable, the environment alone. Environment
// variables always override values from the file.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	var errs []error

	switch c.Store.Driver {
	case DriverPostgres, DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("store.driver: unknown driver %q", c.Store.Driver))
	}
	if c.Limits.Default <= 0 || c.Limits.Max <= 0 {
		errs = append(errs, errors.New("limits: default and max must be > 0"))
	}
	if c.Limits.Default > c.Limits.Max {
		errs = append(errs, errors.New("limits.default must be <= limits.max"))
	}
	if c.Cache.Size <= 0 {
		errs = append(errs, errors.New("cache.size must be > 0"))
	}

	if c.Env == "production" {
		if c.Auth.JWTSecret == "" {
			errs = append(errs, errors.New("AUTH_JWT_SECRET must be set in production"))
		}
		if c.Store.Driver == DriverPostgres && c.DB.URL == "" && c.DB.Password == defaultDBPassword {
			errs = append(errs, errors.New("POSTGRES_PASSWORD must be set in production"))
		}
	}

	return errors.Join(errs...)
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	if c.DB.URL != "" {
		return c.DB.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=disable",
		c.DB.User, c.DB.Password, net.JoinHostPort(c.DB.Host, c.DB.Port), c.DB.Name,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
