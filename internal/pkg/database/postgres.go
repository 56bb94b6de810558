package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/catalogd/catalogd/internal/config"
)

// Postgres dials PostgreSQL connections on demand. The service holds no
// long-lived connections: every operation opens a fresh connection and the
// caller must close it on every exit path.
type Postgres struct {
	dsn string
}

// NewPostgres creates a connection dialer from configuration. It does not
// contact the database; a dead store only surfaces when a request needs it.
func NewPostgres(cfg config.DatabaseConfig) *Postgres {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.Name,
		cfg.SSLMode,
	)
	return &Postgres{dsn: dsn}
}

// Connect opens a new connection. Callers own the connection and must
// Close it, typically via defer, before returning.
func (p *Postgres) Connect(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, p.dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return conn, nil
}

// Ping opens a connection, runs a trivial liveness query and closes the
// connection again. Used by the health endpoint.
func (p *Postgres) Ping(ctx context.Context) error {
	conn, err := p.Connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	var one int
	if err := conn.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("liveness query failed: %w", err)
	}
	return nil
}
