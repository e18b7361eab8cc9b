package main

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// throttle bounds URL fetches both by rate and by how many run at once.
type throttle struct {
	limiter *rate.Limiter
	tokens  chan struct{}
}

func newThrottle(perMinute, concurrent int) *throttle {
	t := &throttle{
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		tokens:  make(chan struct{}, concurrent),
	}
	for i := 0; i < concurrent; i++ {
		t.tokens <- struct{}{}
	}
	return t
}

// acquire blocks until a fetch may start; call the returned func when done.
func (t *throttle) acquire(ctx context.Context) (func(), error) {
	select {
	case <-t.tokens:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if err := t.limiter.Wait(ctx); err != nil {
		t.tokens <- struct{}{}
		return nil, err
	}
	return func() { t.tokens <- struct{}{} }, nil
}
