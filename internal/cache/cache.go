// Package cache is the query/cache layer shared by every view of remote
// data. It collapses concurrent fetches of the same key into one network
// call, keeps stale data visible while a refresh runs, and supports
// optimistic mutations that can be rolled back verbatim when the remote
// call they anticipated fails.
package cache

import (
	"context"
	"sync"
	"time"
)

// Fetcher loads the value for one cache key from the remote API.
type Fetcher func(ctx context.Context) (any, error)

type entry struct {
	value     any
	hasValue  bool
	fetchedAt time.Time
	err       error
	errSeen   bool
}

// call tracks one in-flight fetch; late callers wait on done instead of
// issuing a duplicate request.
type call struct {
	done chan struct{}
	val  any
	err  error
}

type Cache struct {
	mu       sync.Mutex
	entries  map[string]*entry
	inflight map[string]*call
	ttl      time.Duration
}

// New creates a cache whose entries are considered fresh for ttl. A zero
// ttl means every Get revalidates (while still serving the stale value to
// concurrent readers).
func New(ttl time.Duration) *Cache {
	return &Cache{
		entries:  make(map[string]*entry),
		inflight: make(map[string]*call),
		ttl:      ttl,
	}
}

// Get returns the cached value for key, fetching it when absent or stale.
// Concurrent callers for the same key share a single fetch.
func (c *Cache) Get(ctx context.Context, key string, fetcher Fetcher) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && e.hasValue && c.ttl > 0 && time.Since(e.fetchedAt) < c.ttl {
		v := e.value
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()
	return c.fetch(ctx, key, fetcher)
}

// fetch runs (or joins) the in-flight call for key.
func (c *Cache) fetch(ctx context.Context, key string, fetcher Fetcher) (any, error) {
	c.mu.Lock()
	if cl, ok := c.inflight[key]; ok {
		c.mu.Unlock()
		select {
		case <-cl.done:
			return cl.val, cl.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	cl := &call{done: make(chan struct{})}
	c.inflight[key] = cl
	c.mu.Unlock()

	val, err := fetcher(ctx)

	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	if err == nil {
		e.value = val
		e.hasValue = true
		e.fetchedAt = time.Now()
		e.err = nil
		e.errSeen = false
	} else {
		// A failed refresh never clears the last-known value; errors on
		// one key never touch any other entry.
		e.err = err
		e.errSeen = false
	}
	delete(c.inflight, key)
	c.mu.Unlock()

	cl.val, cl.err = val, err
	close(cl.done)
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Peek returns the cached value without triggering a fetch.
func (c *Cache) Peek(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok && e.hasValue {
		return e.value, true
	}
	return nil, false
}

// Err returns the last fetch error for key, once: a second call without a
// new failure in between returns nil, so a failure is not re-surfaced on
// every read.
func (c *Cache) Err(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || e.err == nil || e.errSeen {
		return nil
	}
	e.errSeen = true
	return e.err
}

// Loading reports whether key has a fetch in flight and no value to show
// yet. A background refresh over existing data is not "loading".
func (c *Cache) Loading(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, inflight := c.inflight[key]
	e, ok := c.entries[key]
	return inflight && (!ok || !e.hasValue)
}

// Invalidate marks key stale so the next Get refetches. The stale value
// stays visible until the refetch lands.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		e.fetchedAt = time.Time{}
	}
}
