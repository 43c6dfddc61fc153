package sessionstore

import (
	"context"
	"sync"
	"time"

	"homeclean-booking/internal/domain/reservation"
	"homeclean-booking/internal/infra"
	"homeclean-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps sessions in process. Expired entries are dropped lazily
// on access and by Sweep.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]memoryEntry
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		entries: make(map[uuid.UUID]memoryEntry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*reservation.Wizard, error) {
	s.mu.Lock()
	entry, ok := s.entries[id]
	if ok && !s.clock.Now().Before(entry.expiresAt) {
		delete(s.entries, id)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, infra.WrapRepoErr("wizard session not found", nil, infra.KindNotFound)
	}
	return decode(entry.data)
}

func (s *MemoryStore) Save(_ context.Context, w *reservation.Wizard) error {
	data, err := encode(w)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries[w.ID()] = memoryEntry{data: data, expiresAt: s.clock.Now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}

// Sweep removes expired sessions and reports how many were dropped.
func (s *MemoryStore) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
