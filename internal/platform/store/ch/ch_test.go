package ch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

func TestOptions_Defaults(t *testing.T) {
	o := Options(Config{Addr: []string{"ch:9000"}, Database: "bench", Username: "u", Role: "api"})
	if o.DialTimeout != 5*time.Second {
		t.Fatalf("dial = %v", o.DialTimeout)
	}
	if o.Compression == nil || o.Compression.Method != clickhouse.CompressionLZ4 {
		t.Fatalf("compression = %+v", o.Compression)
	}
	if o.Auth.Database != "bench" || o.Auth.Username != "u" {
		t.Fatalf("auth = %+v", o.Auth)
	}
	if len(o.ClientInfo.Products) == 0 || o.ClientInfo.Products[0].Name != "benchmarks" {
		t.Fatalf("client info = %+v", o.ClientInfo)
	}
	if o.ClientInfo.Products[1].Version != "api" {
		t.Fatalf("role = %+v", o.ClientInfo.Products[1])
	}
}

func TestOpen_RequiresAddr(t *testing.T) {
	if _, err := Open(context.Background(), Config{}); err == nil {
		t.Fatal("expected error without addr")
	}
}

func TestOpen_PropagatesDriverError(t *testing.T) {
	orig := openConn
	t.Cleanup(func() { openConn = orig })
	openConn = func(*clickhouse.Options) (driver.Conn, error) { return nil, errors.New("dial refused") }

	_, err := Open(context.Background(), Config{Addr: []string{"127.0.0.1:1"}})
	if err == nil || err.Error() != "dial refused" {
		t.Fatalf("err = %v", err)
	}
}
