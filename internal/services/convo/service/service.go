// Package service provides the in-memory conversation context store
package service

import (
	"sync"
	"time"

	"talktobank/internal/core/langdetect"
	"talktobank/internal/core/nlp"
	"talktobank/internal/services/convo/domain"
)

const recentWindow = 3

// session holds one user's conversation state. All fields are guarded
// by mu so same-user operations serialize without blocking other users
type session struct {
	mu sync.Mutex

	messages      []domain.Message
	currentIntent nlp.Intent
	pending       nlp.Entities
	language      langdetect.Lang
}

// Store implements domain.StorePort over a process-local map
type Store struct {
	cfg domain.Config

	mu       sync.RWMutex
	sessions map[int64]*session

	clock func() time.Time
}

// NewMemory constructs a Store, applying defaults for zero config fields
func NewMemory(cfg domain.Config) *Store {
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = 10
	}
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 24 * time.Hour
	}
	return &Store{
		cfg:      cfg,
		sessions: make(map[int64]*session),
		clock:    time.Now,
	}
}

func (s *Store) get(userID int64) (*session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[userID]
	s.mu.RUnlock()
	return sess, ok
}

func (s *Store) getOrCreate(userID int64) *session {
	if sess, ok := s.get(userID); ok {
		return sess
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		return sess
	}
	sess := &session{language: langdetect.LangEnglish}
	s.sessions[userID] = sess
	return sess
}

// AddMessage implements domain.StorePort
func (s *Store) AddMessage(userID int64, role domain.Role, text string, intent nlp.Intent, entities nlp.Entities) {
	sess := s.getOrCreate(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.messages = append(sess.messages, domain.Message{
		Role:      role,
		Text:      text,
		Intent:    intent,
		Entities:  entities,
		Timestamp: s.clock(),
	})
	if n := len(sess.messages); n > s.cfg.MaxHistory {
		sess.messages = sess.messages[n-s.cfg.MaxHistory:]
	}
	if intent != "" {
		sess.currentIntent = intent
	}
	if !entities.IsZero() {
		sess.pending = sess.pending.Merge(entities)
	}
}

// PendingEntities implements domain.StorePort
func (s *Store) PendingEntities(userID int64) nlp.Entities {
	sess, ok := s.get(userID)
	if !ok {
		return nlp.Entities{}
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.pending
}

// ClearPending implements domain.StorePort
func (s *Store) ClearPending(userID int64) {
	sess, ok := s.get(userID)
	if !ok {
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.pending = nlp.Entities{}
}

// EnhanceFromContext implements domain.StorePort
func (s *Store) EnhanceFromContext(userID int64, intent nlp.Intent, entities nlp.Entities) nlp.Entities {
	if intent != nlp.IntentTransferFunds {
		return entities
	}
	sess, ok := s.get(userID)
	if !ok {
		return entities
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	recent := sess.messages
	if len(recent) > recentWindow {
		recent = recent[len(recent)-recentWindow:]
	}
	out := entities
	for i := len(recent) - 1; i >= 0 && out.Amount == nil; i-- {
		if a := recent[i].Entities.Amount; a != nil {
			out.Amount = a
		}
	}
	for i := len(recent) - 1; i >= 0 && out.Recipient == nil; i-- {
		if r := recent[i].Entities.Recipient; r != nil {
			out.Recipient = r
		}
	}
	return out
}

// SetLanguage implements domain.StorePort
func (s *Store) SetLanguage(userID int64, lang langdetect.Lang) {
	sess := s.getOrCreate(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.language = lang
}

// Snapshot implements domain.StorePort
func (s *Store) Snapshot(userID int64) (domain.Snapshot, bool) {
	sess, ok := s.get(userID)
	if !ok {
		return domain.Snapshot{}, false
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	msgs := make([]domain.Message, len(sess.messages))
	copy(msgs, sess.messages)
	return domain.Snapshot{
		UserID:        userID,
		Messages:      msgs,
		CurrentIntent: sess.currentIntent,
		Pending:       sess.pending,
		Language:      sess.language,
	}, true
}

// Clear implements domain.StorePort
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Sweep implements domain.StorePort. Sessions with no messages yet are
// kept; idleness is measured from the last message timestamp
func (s *Store) Sweep(now time.Time) int {
	cutoff := now.Add(-s.cfg.IdleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for userID, sess := range s.sessions {
		sess.mu.Lock()
		idle := len(sess.messages) > 0 && sess.messages[len(sess.messages)-1].Timestamp.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, userID)
			removed++
		}
	}
	return removed
}
