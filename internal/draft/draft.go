// Package draft persists the in-progress food form so a reload or crash
// does not lose work. Writes are best-effort and debounced; reads never
// fail, falling back to the empty default draft.
package draft

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/grubline/grubline/internal/models"
	"github.com/grubline/grubline/internal/store"
)

// DefaultDebounce coalesces rapid keystrokes into one storage write.
const DefaultDebounce = 800 * time.Millisecond

// Store owns the draft's local-storage key exclusively.
type Store struct {
	kv    store.Store
	key   string
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending []byte
}

func NewStore(kv store.Store, delay time.Duration) *Store {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Store{kv: kv, key: models.StoreKeyFoodDraft, delay: delay}
}

// Persist schedules a write of the draft's current state. The snapshot is
// taken now; edits made after the call do not leak into the pending write.
// Bursts of calls within the debounce window collapse into one write.
func (s *Store) Persist(d *models.FoodDraft) {
	raw, err := json.Marshal(d)
	if err != nil {
		log.Printf("draft: failed to serialize: %v", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = raw
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.flushPending)
}

func (s *Store) flushPending() {
	s.mu.Lock()
	raw := s.pending
	s.pending = nil
	s.timer = nil
	s.mu.Unlock()

	if raw == nil {
		return
	}
	// Storage quota or I/O trouble must never block the form.
	if err := s.kv.Set(s.key, string(raw)); err != nil {
		log.Printf("draft: failed to persist: %v", err)
	}
}

// Flush writes any pending snapshot immediately, cancelling the timer.
func (s *Store) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.flushPending()
}

// Restore returns the persisted draft, or the empty default when nothing
// is stored or the stored value does not parse. It never fails.
func (s *Store) Restore() *models.FoodDraft {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		log.Printf("draft: failed to read: %v", err)
		return models.NewFoodDraft()
	}
	if !ok {
		return models.NewFoodDraft()
	}
	var d models.FoodDraft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		log.Printf("draft: stored draft is corrupt, starting fresh: %v", err)
		return models.NewFoodDraft()
	}
	return &d
}

// Clear drops the stored draft and any pending write. Called after a
// confirmed successful submit or an explicit discard.
func (s *Store) Clear() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
	s.mu.Unlock()
	return s.kv.Delete(s.key)
}
