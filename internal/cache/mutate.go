package cache

import (
	"errors"
	"time"

	"github.com/lucsky/cuid"
)

// Updater produces the optimistically-updated value from the current one.
// It must return a new value rather than mutating prev in place; the cache
// keeps prev as the rollback snapshot.
type Updater func(prev any) any

// MutationToken identifies one optimistic mutation and carries the
// pre-mutation snapshot needed to undo it.
type MutationToken struct {
	ID       string
	key      string
	snapshot any
	hadValue bool
	resolved bool
}

var ErrMutationResolved = errors.New("mutation already committed or rolled back")

// Mutate applies updater to the cached value immediately and returns a
// token to Commit or Rollback once the remote call resolves.
func (c *Cache) Mutate(key string, updater Updater) *MutationToken {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}

	tok := &MutationToken{
		ID:       cuid.New(),
		key:      key,
		snapshot: e.value,
		hadValue: e.hasValue,
	}

	e.value = updater(e.value)
	e.hasValue = true
	return tok
}

// Commit confirms a mutation: the key is invalidated so the next read
// refetches the server's version of the truth.
func (c *Cache) Commit(tok *MutationToken) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if tok.resolved {
		return ErrMutationResolved
	}
	tok.resolved = true
	if e, ok := c.entries[tok.key]; ok {
		e.fetchedAt = time.Time{}
	}
	return nil
}

// Rollback restores the key to its pre-mutation snapshot verbatim. Calling
// it a second time is an error rather than a silent double-restore.
func (c *Cache) Rollback(tok *MutationToken) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if tok.resolved {
		return ErrMutationResolved
	}
	tok.resolved = true

	e, ok := c.entries[tok.key]
	if !ok {
		return nil
	}
	e.value = tok.snapshot
	e.hasValue = tok.hadValue
	return nil
}
