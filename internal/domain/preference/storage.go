package preference

import (
	"context"
	"time"
)

// Stored is what durable storage remembers for one visitor.
type Stored struct {
	Language     string
	TournamentID string
	UpdatedAt    time.Time
}

// Storage persists visitor preferences across sessions.
type Storage interface {
	Load(ctx context.Context, visitorID string) (Stored, bool, error)
	Save(ctx context.Context, visitorID string, value Stored) error
}

// Ptr returns a candidate pointer for non-empty values.
func Ptr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
