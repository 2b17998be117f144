package prefstore

import (
	"context"
	"sync"
	"time"

	"github.com/kzleague/league-site/internal/domain/preference"
)

type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string]preference.Stored
	now  func() time.Time
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]preference.Stored), now: time.Now}
}

func (s *MemoryStorage) Load(_ context.Context, visitorID string) (preference.Stored, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored, ok := s.data[visitorID]
	return stored, ok, nil
}

// Save merges value into the visitor's record; empty fields keep what was
// stored before.
func (s *MemoryStorage) Save(_ context.Context, visitorID string, value preference.Stored) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[visitorID] = merge(s.data[visitorID], value, s.now())
	return nil
}

func merge(current, update preference.Stored, now time.Time) preference.Stored {
	if update.Language != "" {
		current.Language = update.Language
	}
	if update.TournamentID != "" {
		current.TournamentID = update.TournamentID
	}
	current.UpdatedAt = update.UpdatedAt
	if current.UpdatedAt.IsZero() {
		current.UpdatedAt = now
	}
	return current
}
