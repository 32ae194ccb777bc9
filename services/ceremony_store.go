package services

import (
	"sync"
	"task_management_ms/domain"
	"time"

	"github.com/hashicorp/go-uuid"
)

// CeremonyTTL is how long an unanswered challenge stays claimable.
const CeremonyTTL = 60 * time.Second

// CeremonyStore holds in-flight ceremony state keyed by a random ceremony id.
// Retrieval always consumes: an id yields its state at most once, so a replayed
// response can never complete the same ceremony twice. Entries that are never
// consumed are removed by a per-entry timer; the timer firing after consumption
// is a no-op, and consumption after the timer fired reports the id as unknown.
//
// Registration and signin ceremonies live in separate instances because their
// payloads differ and their ids must not collide.
type CeremonyStore[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]T
}

func NewCeremonyStore[T any](ttl time.Duration) *CeremonyStore[T] {
	return &CeremonyStore[T]{
		ttl:     ttl,
		entries: make(map[string]T),
	}
}

// Begin records state under a fresh unpredictable id and schedules its expiry.
func (s *CeremonyStore[T]) Begin(state T) (string, error) {
	id, err := uuid.GenerateUUID()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.entries[id] = state
	s.mu.Unlock()

	time.AfterFunc(s.ttl, func() {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()
	})

	return id, nil
}

// Consume removes and returns the state for id. Never inserted, already
// consumed and expired are indistinguishable outcomes.
func (s *CeremonyStore[T]) Consume(id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.entries[id]
	if !ok {
		var zero T
		return zero, domain.ErrCeremonyNotFound
	}
	delete(s.entries, id)
	return state, nil
}

// Len reports the number of in-flight ceremonies.
func (s *CeremonyStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
