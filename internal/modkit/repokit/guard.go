package repokit

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// GuardTimeout bounds a guard whose ctx has no deadline
const GuardTimeout = 5 * time.Second

// Guarder pings every backend it opened, *store.Store is one
type Guarder interface {
	Guard(context.Context) error
}

// Guard checks that the opened backends answer before any module binds to them
func Guard(ctx context.Context, g Guarder) error {
	if g == nil {
		return errors.New("repokit: nil store")
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, GuardTimeout)
		defer cancel()
	}
	if err := g.Guard(ctx); err != nil {
		return fmt.Errorf("backend guard failed: %w", err)
	}
	return nil
}

// MustGuard is Guard for process startup
func MustGuard(ctx context.Context, g Guarder) {
	if err := Guard(ctx, g); err != nil {
		panic(err)
	}
}
