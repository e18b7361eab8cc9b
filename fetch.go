package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/levigross/grequests"
)

const MAX_FETCH_ATTEMPTS = 3

type fetcher struct {
	throttle *throttle
	timeout  time.Duration
	cooldown time.Duration

	// Set while the server keeps answering 429; shared by all workers.
	rateLimitedFrom atomic.Pointer[time.Time]
}

func newFetcher(cfg *Config) *fetcher {
	return &fetcher{
		throttle: newThrottle(cfg.FetchesPerMin, cfg.MaxFetches),
		timeout:  cfg.Timeout,
		cooldown: time.Minute,
	}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// rateLimited returns how long to back off: the base cooldown, or the time
// spent rate limited so far if that is longer.
func (f *fetcher) rateLimited() time.Duration {
	last := f.rateLimitedFrom.Load()
	now := time.Now()
	f.rateLimitedFrom.CompareAndSwap(nil, &now)
	if last != nil {
		return max(f.cooldown, time.Since(*last))
	}
	return f.cooldown
}

func (f *fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	for attempt := 1; ; attempt++ {
		data, status, err := f.get(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", url, err)
		}
		if status != http.StatusTooManyRequests {
			f.rateLimitedFrom.Store(nil)
			if status >= 400 {
				return nil, fmt.Errorf("fetch %s: received status %d", url, status)
			}
			return data, nil
		}
		if attempt == MAX_FETCH_ATTEMPTS {
			return nil, fmt.Errorf("fetch %s: still rate limited after %d attempts", url, attempt)
		}
		cooldown := f.rateLimited()
		log.Printf("rate limited fetching %s, retrying in %s", url, cooldown)
		select {
		case <-time.After(cooldown):
		case <-ctx.Done():
			return nil, fmt.Errorf("fetch %s: %w", url, ctx.Err())
		}
	}
}

func (f *fetcher) get(ctx context.Context, url string) ([]byte, int, error) {
	done, err := f.throttle.acquire(ctx)
	if err != nil {
		return nil, 0, err
	}
	defer done()

	resp, err := grequests.Get(url, &grequests.RequestOptions{
		Context:        ctx,
		RequestTimeout: f.timeout,
		UserAgent:      "osulegacy/" + version,
		Headers:        map[string]string{"Accept": "text/plain, application/octet-stream"},
	})
	if err != nil {
		return nil, 0, err
	}
	defer resp.Close()
	return resp.Bytes(), resp.StatusCode, nil
}
