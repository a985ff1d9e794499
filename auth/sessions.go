// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one logged-in admin.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionStore issues and resolves bearer tokens. Injected into handlers
// so tests (and a future persistent implementation) can swap it out.
type SessionStore interface {
	Create(username string) Session
	Get(token string) (Session, bool)
	Delete(token string)
}

// MemoryStore is the in-process SessionStore: a mutex-guarded token map
// with TTL eviction. Expired entries are purged on every Create and Get.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration
	now      func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Create(username string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()

	now := s.now()
	session := Session{
		Token:     uuid.NewString(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.sessions[session.Token] = session
	return session
}

func (s *MemoryStore) Get(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()

	session, ok := s.sessions[token]
	if !ok {
		return Session{}, false
	}
	return session, true
}

func (s *MemoryStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// purgeLocked drops expired sessions. Caller must hold s.mu.
func (s *MemoryStore) purgeLocked() {
	now := s.now()
	for token, session := range s.sessions {
		if !session.ExpiresAt.After(now) {
			delete(s.sessions, token)
		}
	}
}
