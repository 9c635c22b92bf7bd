package sessions

import (
	"context"
	"sync"
	"time"

	"miam/models"
)

// MemoryStore keeps sessions in a map. Used when no Redis is configured
// and by the tests; expiry is checked lazily on Get.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memEntry
}

type memEntry struct {
	sess    models.Session
	expires time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memEntry)}
}

func (s *MemoryStore) Save(_ context.Context, sess models.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = memEntry{sess: sess, expires: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[id]
	if !ok || time.Now().After(entry.expires) {
		delete(s.sessions, id)
		return nil, models.ErrNotFound
	}
	sess := entry.sess
	return &sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
