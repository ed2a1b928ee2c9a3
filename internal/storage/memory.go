package storage

import (
	"context"
	"sync"
)

// MemoryStore is the default backend: sessions live for the process
// lifetime only.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[int64]Session),
	}
}

func (s *MemoryStore) Get(_ context.Context, conversationID int64) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[conversationID]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (s *MemoryStore) Set(_ context.Context, conversationID int64, session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[conversationID] = session
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, conversationID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, conversationID)
	return nil
}
