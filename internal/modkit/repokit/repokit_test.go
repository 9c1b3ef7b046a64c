package repokit

import (
	"context"
	"errors"
	"testing"

	kit "benchmarks/internal/platform/testkit"
)

type pinger struct{ err error }

func (p pinger) Guard(context.Context) error { return p.err }

type nopQ struct{ Queryer }

func TestBinder(t *testing.T) {
	b := BindFunc[string](func(q Queryer) string {
		if q == nil {
			return "nil"
		}
		return "bound"
	})
	if got := MustBind[string](b, nopQ{}); got != "bound" {
		t.Fatalf("got %q", got)
	}
	kit.MustPanic(t, func() { MustBind[string](b, nil) })
}

func TestGuard(t *testing.T) {
	ctx := context.Background()
	if err := Guard(ctx, pinger{}); err != nil {
		t.Fatalf("guard: %v", err)
	}
	down := errors.New("down")
	if err := Guard(ctx, pinger{err: down}); !errors.Is(err, down) {
		t.Fatalf("guard err = %v", err)
	}
	if err := Guard(ctx, nil); err == nil {
		t.Fatalf("nil store should fail")
	}

	kit.MustNotPanic(t, func() { MustGuard(ctx, pinger{}) })
	kit.MustPanic(t, func() { MustGuard(ctx, pinger{err: down}) })
}

type deadlineGuard struct{ ok bool }

func (d *deadlineGuard) Guard(ctx context.Context) error {
	_, d.ok = ctx.Deadline()
	return nil
}

func TestGuard_BoundsContext(t *testing.T) {
	g := &deadlineGuard{}
	if err := Guard(context.Background(), g); err != nil || !g.ok {
		t.Fatalf("guard ran without a deadline")
	}
}
