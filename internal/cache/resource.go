package cache

import (
	"context"
	"log"
	"sync"
	"time"
)

// Options configures a subscribed resource.
type Options struct {
	// RefreshInterval enables periodic background refresh when > 0. A
	// refresh never clears the visible value while it runs.
	RefreshInterval time.Duration
}

// Resource is a live handle on one cache key: the cached value, its
// loading/error flags and an explicit refetch. Close stops the background
// refresh goroutine.
type Resource struct {
	c       *Cache
	key     string
	fetcher Fetcher

	stop     chan struct{}
	stopOnce sync.Once
}

// Subscribe fetches key once and, when opts.RefreshInterval is set, keeps
// it refreshed in the background until Close.
func (c *Cache) Subscribe(ctx context.Context, key string, fetcher Fetcher, opts Options) *Resource {
	r := &Resource{c: c, key: key, fetcher: fetcher, stop: make(chan struct{})}

	if _, err := c.Get(ctx, key, fetcher); err != nil {
		log.Printf("initial fetch for %q failed: %v", key, err)
	}

	if opts.RefreshInterval > 0 {
		go r.refreshLoop(opts.RefreshInterval)
	}
	return r
}

func (r *Resource) refreshLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			// fetch (not Get) forces revalidation even when the entry is
			// still inside its ttl; stale data stays visible throughout.
			if _, err := r.c.fetch(ctx, r.key, r.fetcher); err != nil {
				log.Printf("background refresh for %q failed: %v", r.key, err)
			}
			cancel()
		case <-r.stop:
			return
		}
	}
}

// Data returns the last-known value and whether one exists.
func (r *Resource) Data() (any, bool) {
	return r.c.Peek(r.key)
}

// Loading reports an in-flight fetch with nothing to show yet.
func (r *Resource) Loading() bool {
	return r.c.Loading(r.key)
}

// Err returns the resource's last fetch error once, then nil until a new
// failure.
func (r *Resource) Err() error {
	return r.c.Err(r.key)
}

// Refetch forces a revalidation and returns the fresh value.
func (r *Resource) Refetch(ctx context.Context) (any, error) {
	return r.c.fetch(ctx, r.key, r.fetcher)
}

// Close stops the background refresh. Safe to call more than once.
func (r *Resource) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
}
