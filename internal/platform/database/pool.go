package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"user-registry/internal/platform/config"
)

// Pool wraps a *sql.DB with health checking capabilities.
type Pool struct {
	db *sql.DB
}

// New creates a new database connection pool from the given configuration.
// Returns nil if no database host is configured.
//
// With AllowLocalFallback set, a connection host that fails DNS resolution
// is swapped for localhost before connecting. This keeps a compose-style
// hostname in the environment usable from outside the compose network.
func New(cfg config.Database, logger *slog.Logger) (*Pool, error) {
	dsn := cfg.URL()
	if dsn == "" {
		return nil, nil
	}

	if cfg.AllowLocalFallback {
		if fallback, ok := localFallback(dsn); ok {
			logger.Warn("database host does not resolve, falling back to localhost",
				"host", cfg.Host,
			)
			dsn = fallback
		}
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close() //nolint:errcheck // best-effort cleanup on init failure
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{db: db}, nil
}

// localFallback rewrites the DSN host to localhost when the configured host
// does not resolve. Returns the rewritten DSN and whether a rewrite happened.
func localFallback(dsn string) (string, bool) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", false
	}
	host := u.Hostname()
	if host == "" || host == "localhost" {
		return "", false
	}
	if net.ParseIP(host) != nil {
		return "", false
	}
	if _, err := net.LookupHost(host); err == nil {
		return "", false
	}
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	u.Host = net.JoinHostPort("localhost", port)
	return u.String(), true
}

// DB returns the underlying *sql.DB for query operations.
func (p *Pool) DB() *sql.DB {
	return p.db
}

// Health checks if the database is reachable.
func (p *Pool) Health(ctx context.Context) error {
	if p == nil || p.db == nil {
		return fmt.Errorf("database not configured")
	}
	return p.db.PingContext(ctx)
}

// Close closes the database connection pool.
func (p *Pool) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}

// Stats returns database connection pool statistics.
func (p *Pool) Stats() sql.DBStats {
	if p == nil || p.db == nil {
		return sql.DBStats{}
	}
	return p.db.Stats()
}
