// Package ch opens a clickhouse native protocol connection
package ch

import (
	"context"
	"errors"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Config configures the clickhouse connection
type Config struct {
	Addr        []string
	Database    string
	Username    string
	Password    string
	DialTimeout time.Duration
	// Role is reported to the server in client info, e.g. "api" or "report"
	Role string
}

// CH wraps a clickhouse.Conn
type CH struct {
	Conn driver.Conn
}

// seam for tests
var openConn = clickhouse.Open

// Options maps cfg onto driver options with LZ4 compression
func Options(cfg Config) *clickhouse.Options {
	dial := cfg.DialTimeout
	if dial <= 0 {
		dial = 5 * time.Second
	}
	return &clickhouse.Options{
		Addr: cfg.Addr,
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		ClientInfo:  BuildClientInfo(cfg.Role, "benchmarks"),
		Compression: &clickhouse.Compression{Method: clickhouse.CompressionLZ4},
		DialTimeout: dial,
	}
}

// Open connects and pings once
func Open(ctx context.Context, cfg Config) (*CH, error) {
	if len(cfg.Addr) == 0 {
		return nil, errors.New("ch: no addr configured")
	}
	conn, err := openConn(Options(cfg))
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return &CH{Conn: conn}, nil
}

// Query runs a select
func (c *CH) Query(ctx context.Context, sql string, args ...any) (driver.Rows, error) {
	return c.Conn.Query(ctx, sql, args...)
}

// QueryRow runs a select expected to return one row
func (c *CH) QueryRow(ctx context.Context, sql string, args ...any) driver.Row {
	return c.Conn.QueryRow(ctx, sql, args...)
}

// Ping checks the connection
func (c *CH) Ping(ctx context.Context) error { return c.Conn.Ping(ctx) }

// Close closes the connection
func (c *CH) Close() error { return c.Conn.Close() }
