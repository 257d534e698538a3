package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	Environment   string
	JWTSigningKey string
	AuthDisabled  bool

	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

// Database captures PostgreSQL connection configuration. An empty Host means
// the database is not configured and the in-memory store is used instead.
type Database struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string

	// AllowLocalFallback retries against localhost when the configured host
	// does not resolve. Opt-in, intended for local development against a
	// stale service hostname.
	AllowLocalFallback bool

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// URL renders the connection string, or "" when no host is configured.
func (d Database) URL() string {
	if d.Host == "" {
		return ""
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%s", d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	q := url.Values{}
	q.Set("sslmode", "disable")
	u.RawQuery = q.Encode()
	return u.String()
}

// Redis captures cache configuration. An empty URL disables the read cache.
type Redis struct {
	URL          string
	CacheTTL     time.Duration
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// UserCacheTTL bounds retention of cached user records.
var UserCacheTTL = 5 * time.Minute

// FromEnv builds the full configuration from environment variables so main
// stays lean.
func FromEnv() (Server, Database, Redis) {
	addr := os.Getenv("USER_REGISTRY_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	server := Server{
		Addr:          addr,
		Environment:   environment,
		JWTSigningKey: jwtSigningKey,
		AuthDisabled:  os.Getenv("AUTH_DISABLED") == "true",

		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	port := os.Getenv("POSTGRES_PORT")
	if port == "" {
		port = "5432"
	}
	database := Database{
		Host:               os.Getenv("POSTGRES_HOST"),
		Port:               port,
		Name:               os.Getenv("POSTGRES_DB"),
		User:               os.Getenv("POSTGRES_USER"),
		Password:           os.Getenv("POSTGRES_PASSWORD"),
		AllowLocalFallback: os.Getenv("POSTGRES_ALLOW_LOCAL_FALLBACK") == "true",
		MaxOpenConns:       25,
		MaxIdleConns:       5,
		ConnMaxLifetime:    5 * time.Minute,
	}

	cacheTTL := UserCacheTTL
	if raw := os.Getenv("USER_CACHE_TTL"); raw != "" {
		if duration, err := time.ParseDuration(raw); err == nil {
			cacheTTL = duration
		}
	}
	redis := Redis{
		URL:          os.Getenv("REDIS_URL"),
		CacheTTL:     cacheTTL,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return server, database, redis
}
