// Package logger wraps zerolog with process defaults and context scoped fields
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"benchmarks/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Options configures the root logger
type Options struct {
	Level  string
	Format string // console or json
	Output string // stdout or stderr; Writer wins when set
	Writer io.Writer

	Service    string
	WithCaller bool
	// keep one skipped-row warning in N; zero keeps all
	SampleEvery int
}

// FromEnv reads LOG_* through the raw view so config can log without a cycle
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:       rc.Get("LEVEL", "info"),
		Format:      strings.ToLower(rc.Get("FORMAT", "console")),
		Output:      strings.ToLower(rc.Get("OUTPUT", "stdout")),
		Service:     rc.Get("SERVICE", "benchmarks"),
		WithCaller:  rc.GetBool("CALLER", false),
		SampleEvery: rc.GetInt("SAMPLE_EVERY", 0),
	}
}

// Logger is the project-wide logging type
type Logger = zerolog.Logger

var (
	once    sync.Once
	root    atomic.Pointer[Logger]
	sampled atomic.Pointer[Logger]
)

// Get returns the process-wide root logger, building it from env on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// Init builds the root logger; only the first call has an effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		l := build(opt)
		s := l
		if opt.SampleEvery > 1 {
			s = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
		}
		sampled.Store(&s)
		root.Store(&l)
	})
}

func build(opt Options) Logger {
	w := opt.Writer
	if w == nil {
		w = os.Stdout
		if opt.Output == "stderr" {
			w = os.Stderr
		}
	}
	if opt.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opt.Level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	c := zerolog.New(w).Level(lvl).With().Timestamp()
	if opt.Service != "" {
		c = c.Str("service", opt.Service)
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		c = c.Str("go_version", bi.GoVersion)
	}
	if opt.WithCaller {
		c = c.Caller()
	}
	return c.Logger()
}

// Sampled is the root logger thinned by LOG_SAMPLE_EVERY, for per-row noise
func Sampled() *Logger {
	Get()
	return sampled.Load()
}

type ctxKey uint8

const (
	keyRequestID ctxKey = iota
	keySource
	keySnapshot
)

var ctxFields = [...]struct {
	key   ctxKey
	field string
}{
	{keyRequestID, "request_id"},
	{keySource, "source"},
	{keySnapshot, "snapshot_id"},
}

// WithRequest tags ctx with the request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, reqID)
}

// WithSource tags ctx with the row source and, once built, the snapshot id
func WithSource(ctx context.Context, source, snapshotID string) context.Context {
	if source != "" {
		ctx = context.WithValue(ctx, keySource, source)
	}
	if snapshotID != "" {
		ctx = context.WithValue(ctx, keySnapshot, snapshotID)
	}
	return ctx
}

// C returns a child of base carrying the ids found on ctx
func C(ctx context.Context) *Logger { return from(ctx, Get()) }

// SampledC is C over the sampled logger
func SampledC(ctx context.Context) *Logger { return from(ctx, Sampled()) }

func from(ctx context.Context, base *Logger) *Logger {
	b := base.With()
	for _, f := range ctxFields {
		if s, ok := ctx.Value(f.key).(string); ok && s != "" {
			b = b.Str(f.field, s)
		}
	}
	l := b.Logger()
	return &l
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}
