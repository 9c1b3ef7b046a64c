package store

import (
	"time"

	"benchmarks/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// ConnectRetries bounds the boot ping loop, 0 means 20
	ConnectRetries int
	PingTimeout    time.Duration // default 3s
}

// CHConfig configures the clickhouse native protocol connection
type CHConfig struct {
	Enabled     bool
	Addr        []string
	Database    string
	Username    string
	Password    string
	DialTimeout time.Duration // default 5s
}

// FromEnv enables the backend kind names ("pg" or "clickhouse") and reads its
// settings from SERVICE_PGSQL_* or SERVICE_CLICKHOUSE_* under root
// Any other kind opens nothing
func FromEnv(app, kind string, root config.Conf) Config {
	cfg := Config{AppName: app}
	switch kind {
	case "pg":
		pg := root.Prefix("SERVICE_PGSQL_")
		cfg.PG = PGConfig{
			Enabled:        true,
			URL:            pg.MustString("DBURL"),
			MaxConns:       int32(pg.MayPositiveInt("MAX_CONNS", 4)),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			SlowQueryMs:    pg.MayPositiveInt("SLOW_MS", 500),
			ConnectRetries: pg.MayPositiveInt("CONNECT_RETRIES", 20),
		}
	case "clickhouse":
		ch := root.Prefix("SERVICE_CLICKHOUSE_")
		cfg.CH = CHConfig{
			Enabled:     true,
			Addr:        ch.MayCSV("ADDR", []string{"127.0.0.1:9000"}),
			Database:    ch.MayString("DATABASE", "default"),
			Username:    ch.MayString("USERNAME", "default"),
			Password:    ch.MayString("PASSWORD", ""),
			DialTimeout: ch.MayDuration("DIAL_TIMEOUT", 5*time.Second),
		}
	}
	return cfg
}
