// Package cartstore provides the in-memory implementation of the cart store.
// Carts are session-scoped working state; losing them on restart is an
// accepted trade-off.
package cartstore

import (
	"context"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

const sweepInterval = time.Hour

type cartEntry struct {
	cart     *entity.Cart
	lastSeen time.Time
}

// MemoryCartStore keeps one cart per session in a mutex-guarded map.
// Entries idle longer than the session TTL are swept, so abandoned carts do
// not accumulate for the life of the process.
type MemoryCartStore struct {
	mu      sync.Mutex
	entries map[string]*cartEntry
	ttl     time.Duration
	done    chan struct{}
	once    sync.Once
}

// NewMemoryCartStore creates the store and starts its background sweeper.
func NewMemoryCartStore(cfg *config.Config) *MemoryCartStore {
	ttl := cfg.CartSession.TTL
	if ttl <= 0 {
		ttl = time.Hour * 24 * 7
	}

	store := &MemoryCartStore{
		entries: make(map[string]*cartEntry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go store.sweep()

	return store
}

var _ repository.CartStore = (*MemoryCartStore)(nil)

// GetOrCreate returns the session's cart, creating an empty one when absent.
func (s *MemoryCartStore) GetOrCreate(_ context.Context, sessionID string) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		entry = &cartEntry{cart: entity.NewCart()}
		s.entries[sessionID] = entry
	}
	entry.lastSeen = time.Now()

	return entry.cart, nil
}

// Get returns the session's cart or ErrCartNotFound.
func (s *MemoryCartStore) Get(_ context.Context, sessionID string) (*entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		return nil, repository.ErrCartNotFound
	}
	entry.lastSeen = time.Now()

	return entry.cart, nil
}

// Delete drops the session's cart. Deleting an absent cart is a no-op.
func (s *MemoryCartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)

	return nil
}

// Close stops the background sweeper.
func (s *MemoryCartStore) Close() error {
	s.once.Do(func() { close(s.done) })

	return nil
}

func (s *MemoryCartStore) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, entry := range s.entries {
				if now.Sub(entry.lastSeen) > s.ttl {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
