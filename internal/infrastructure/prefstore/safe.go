package prefstore

import (
	"context"
	"strings"

	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/platform/logging"
)

// SafeStorage keeps storage failures away from the request path: failed
// loads read as "nothing stored", failed saves are logged and dropped.
type SafeStorage struct {
	inner  preference.Storage
	logger *logging.Logger
}

func NewSafeStorage(inner preference.Storage, logger *logging.Logger) *SafeStorage {
	if logger == nil {
		logger = logging.Default()
	}
	return &SafeStorage{inner: inner, logger: logger.Named("prefstore")}
}

func (s *SafeStorage) Load(ctx context.Context, visitorID string) (preference.Stored, bool, error) {
	visitorID = strings.TrimSpace(visitorID)
	if s.inner == nil || visitorID == "" {
		return preference.Stored{}, false, nil
	}

	stored, ok, err := s.inner.Load(ctx, visitorID)
	if err != nil {
		s.logger.WarnContext(ctx, "load visitor preferences failed", "visitor_id", visitorID, "error", err)
		return preference.Stored{}, false, nil
	}
	return stored, ok, nil
}

func (s *SafeStorage) Save(ctx context.Context, visitorID string, value preference.Stored) error {
	visitorID = strings.TrimSpace(visitorID)
	if s.inner == nil || visitorID == "" {
		return nil
	}

	if err := s.inner.Save(ctx, visitorID, value); err != nil {
		s.logger.WarnContext(ctx, "save visitor preferences failed", "visitor_id", visitorID, "error", err)
	}
	return nil
}
