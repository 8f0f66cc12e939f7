package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/souqplus/api/internal/models"
)

// SessionService is the single source of truth for who is logged in. It
// is constructor-injected (no package-level state) and keeps its in-memory
// view strictly in step with durable storage: a login is only observable
// after the persistence write succeeds, and a restore never trusts a
// malformed record.
type SessionService struct {
	kv     models.KVStore
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*models.User
}

func NewSessionService(kv models.KVStore, logger *slog.Logger) *SessionService {
	return &SessionService{
		kv:       kv,
		logger:   logger,
		sessions: make(map[string]*models.User),
	}
}

func sessionKey(userID string) string {
	return models.UserDataKey + ":" + userID
}

// Login persists the user record, then flips the in-memory state. If the
// write fails the memory state is left untouched so memory and storage
// cannot diverge.
func (s *SessionService) Login(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user data: %v", err)
	}

	if err := s.kv.Set(ctx, sessionKey(user.ID.String()), string(data)); err != nil {
		return fmt.Errorf("failed to persist session: %v", err)
	}

	s.mu.Lock()
	s.sessions[user.ID.String()] = user
	s.mu.Unlock()
	return nil
}

// Restore loads the session for the given user, reading durable storage
// when the in-memory view has nothing (cold start). A storage failure or a
// malformed record yields (nil, false, err): the caller may log the error
// but the state falls back to unauthenticated, never the other way.
func (s *SessionService) Restore(ctx context.Context, userID string) (*models.User, bool, error) {
	s.mu.RLock()
	if user, ok := s.sessions[userID]; ok {
		s.mu.RUnlock()
		return user, true, nil
	}
	s.mu.RUnlock()

	raw, ok, err := s.kv.Get(ctx, sessionKey(userID))
	if err != nil {
		return nil, false, fmt.Errorf("failed to read session: %v", err)
	}
	if !ok {
		return nil, false, nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false, fmt.Errorf("malformed session record: %v", err)
	}

	s.mu.Lock()
	s.sessions[userID] = &user
	s.mu.Unlock()
	return &user, true, nil
}

// Logout always clears the in-memory state; a failed storage removal is
// reported but never leaves the session authenticated.
func (s *SessionService) Logout(ctx context.Context, userID string) error {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()

	if err := s.kv.Remove(ctx, sessionKey(userID)); err != nil {
		return fmt.Errorf("failed to remove persisted session: %v", err)
	}
	return nil
}

// IsAuthenticated reports the in-memory view only; it does not touch
// storage.
func (s *SessionService) IsAuthenticated(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[userID]
	return ok
}
