package storage

import (
	"sync"
	"time"

	"github.com/ragunandhant/photo-overlay/internal/entity"
)

// BatchStore keeps processed batches in memory for the lifetime of a session.
// Nothing is ever written to disk.
type BatchStore interface {
	Put(batch *entity.Batch)
	Get(id string) (*entity.Batch, bool)
	Delete(id string)
	Len() int
}

type memoryStore struct {
	mu      sync.RWMutex
	batches map[string]*entity.Batch
	ttl     time.Duration
}

// NewMemoryStore returns a store that evicts batches older than ttl. A ttl of
// zero keeps batches until they are deleted explicitly.
func NewMemoryStore(ttl time.Duration) BatchStore {
	s := &memoryStore{
		batches: make(map[string]*entity.Batch),
		ttl:     ttl,
	}
	if ttl > 0 {
		go s.janitor()
	}
	return s
}

func (s *memoryStore) Put(batch *entity.Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[batch.ID] = batch
}

func (s *memoryStore) Get(id string) (*entity.Batch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.batches[id]
	return b, ok
}

func (s *memoryStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.batches, id)
}

func (s *memoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.batches)
}

func (s *memoryStore) janitor() {
	interval := s.ttl / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-s.ttl)
		s.mu.Lock()
		for id, b := range s.batches {
			if b.CreatedAt.Before(cutoff) {
				delete(s.batches, id)
			}
		}
		s.mu.Unlock()
	}
}
