package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWarm_DisabledReturnsImmediately(t *testing.T) {
	src := &countingSource{name: "svc-warm-off", rows: sheet()}
	s := newSvc(src, Options{})

	if err := s.Warm(context.Background()); err != nil {
		t.Fatalf("warm: %v", err)
	}
	if got := src.calls.Load(); got != 0 {
		t.Fatalf("disabled warm loaded %d times", got)
	}
}

func TestWarm_ReloadsUntilCancelled(t *testing.T) {
	src := &countingSource{name: "svc-warm", rows: sheet()}
	s := newSvc(src, Options{RefreshEvery: 10 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Warm(ctx) }()

	deadline := time.After(2 * time.Second)
	for src.calls.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("only %d loads", src.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()

	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("warm returned %v", err)
	}
	if _, ok := s.cache.Peek("svc-warm"); !ok {
		t.Fatalf("warm left the cache empty")
	}
}

func TestWarm_FailedReloadKeepsSnapshot(t *testing.T) {
	src := &countingSource{name: "svc-warm-fail", rows: sheet()}
	s := newSvc(src, Options{RefreshEvery: time.Hour})

	first, err := s.Snapshot(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	src.err = errors.New("sheet down")

	if _, err := s.reload(context.Background()); err == nil {
		t.Fatalf("expected reload error")
	}
	got, err := s.Snapshot(context.Background())
	if err != nil || got != first {
		t.Fatalf("snapshot replaced after failed reload: %v %v", got, err)
	}
}
