package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/domain/tournament"
	"github.com/kzleague/league-site/internal/platform/logging"
)

// PreferenceInput is what the transport layer could read for one request.
// Every field is already sanitized; nil means the source had nothing.
type PreferenceInput struct {
	VisitorID         string
	CookieLanguage    *string
	CookieTournament  *string
	InitialLanguage   *string
	InitialTournament *string
}

type Preferences struct {
	Language   preference.LanguageResolution
	Tournament preference.TournamentResolution
}

type PreferenceService struct {
	registry *tournament.Registry
	storage  preference.Storage
	logger   *logging.Logger
	now      func() time.Time
}

func NewPreferenceService(registry *tournament.Registry, storage preference.Storage, logger *logging.Logger) *PreferenceService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PreferenceService{
		registry: registry,
		storage:  storage,
		logger:   logger,
		now:      time.Now,
	}
}

// Resolve never fails: storage problems degrade to "nothing stored".
func (s *PreferenceService) Resolve(ctx context.Context, in PreferenceInput) Preferences {
	ctx, span := startUsecaseSpan(ctx, "usecase.PreferenceService.Resolve")
	defer span.End()

	stored := s.loadStored(ctx, in.VisitorID)

	lang := preference.ResolveLanguage(preference.Candidates{
		Cookie:  in.CookieLanguage,
		Stored:  preference.Ptr(stored.Language),
		Initial: in.InitialLanguage,
	})
	active := preference.ResolveTournament(preference.Candidates{
		Cookie:  in.CookieTournament,
		Stored:  preference.Ptr(stored.TournamentID),
		Initial: in.InitialTournament,
	}, s.registry.Has, s.fallbackTournament())

	return Preferences{Language: lang, Tournament: active}
}

// fallbackTournament is the top flight while the pre-season override holds.
func (s *PreferenceService) fallbackTournament() string {
	if s.registry.PreSeason().State() == tournament.StatePreSeason && s.registry.TopFlightID() != "" {
		return s.registry.TopFlightID()
	}
	return s.registry.DefaultID()
}

func (s *PreferenceService) UpdateLanguage(ctx context.Context, visitorID, raw string) (preference.Language, error) {
	lang, ok := preference.NormalizeLanguage(raw)
	if !ok {
		return "", fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, strings.TrimSpace(raw))
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.PreferenceService.UpdateLanguage")
	defer span.End()

	s.save(ctx, visitorID, func(stored *preference.Stored) { stored.Language = lang.String() })
	return lang, nil
}

func (s *PreferenceService) UpdateTournament(ctx context.Context, visitorID, raw string) (string, error) {
	id, ok := preference.NormalizeTournamentID(raw, s.registry.Has)
	if !ok {
		return "", fmt.Errorf("%w: unknown tournament %q", ErrInvalidInput, strings.TrimSpace(raw))
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.PreferenceService.UpdateTournament")
	defer span.End()

	s.save(ctx, visitorID, func(stored *preference.Stored) { stored.TournamentID = id })
	return id, nil
}

func (s *PreferenceService) loadStored(ctx context.Context, visitorID string) preference.Stored {
	if s.storage == nil || strings.TrimSpace(visitorID) == "" {
		return preference.Stored{}
	}
	stored, ok, err := s.storage.Load(ctx, visitorID)
	if err != nil {
		s.logger.WarnContext(ctx, "load stored preferences failed", "visitor_id", visitorID, "error", err)
		return preference.Stored{}
	}
	if !ok {
		return preference.Stored{}
	}
	return stored
}

// save merges one field into the stored record. Durable storage is best
// effort; the cookie already carries the choice.
func (s *PreferenceService) save(ctx context.Context, visitorID string, apply func(*preference.Stored)) {
	if s.storage == nil || strings.TrimSpace(visitorID) == "" {
		return
	}
	stored := s.loadStored(ctx, visitorID)
	apply(&stored)
	stored.UpdatedAt = s.now().UTC()
	if err := s.storage.Save(ctx, visitorID, stored); err != nil {
		s.logger.WarnContext(ctx, "save preferences failed", "visitor_id", visitorID, "error", err)
	}
}
