package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/infrastructure/prefstore"
	"github.com/kzleague/league-site/internal/platform/logging"
	"github.com/kzleague/league-site/internal/usecase"
)

// LayoutObserver records layout build latency per route.
type LayoutObserver interface {
	ObserveLayout(route string, elapsed time.Duration)
}

type Handler struct {
	layoutService     *usecase.LayoutService
	preferenceService *usecase.PreferenceService
	resourceService   *usecase.ResourceService
	cookies           *prefstore.Cookies
	observer          LayoutObserver
	logger            *logging.Logger
	validator         *validator.Validate
}

type HandlerOption func(*Handler)

func WithLayoutObserver(observer LayoutObserver) HandlerOption {
	return func(h *Handler) { h.observer = observer }
}

func NewHandler(
	layoutService *usecase.LayoutService,
	preferenceService *usecase.PreferenceService,
	resourceService *usecase.ResourceService,
	cookies *prefstore.Cookies,
	logger *logging.Logger,
	opts ...HandlerOption,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if cookies == nil {
		cookies = prefstore.NewCookies(prefstore.CookieOptions{})
	}

	h := &Handler{
		layoutService:     layoutService,
		preferenceService: preferenceService,
		resourceService:   resourceService,
		cookies:           cookies,
		logger:            logger,
		validator:         validator.New(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// preferenceInput collects every preference candidate the request carries.
// visitorID is the already ensured visitor cookie value.
func (h *Handler) preferenceInput(r *http.Request, visitorID string) usecase.PreferenceInput {
	return usecase.PreferenceInput{
		VisitorID:         visitorID,
		CookieLanguage:    h.cookies.ReadLanguage(r),
		CookieTournament:  h.cookies.ReadTournament(r),
		InitialLanguage:   prefstore.InitialLanguage(r),
		InitialTournament: preference.Ptr(strings.TrimSpace(r.URL.Query().Get("tournament"))),
	}
}

// syncCookies writes back every preference the cookie did not already carry.
func (h *Handler) syncCookies(w http.ResponseWriter, prefs usecase.Preferences) {
	if prefs.Language.CookieStale() {
		h.cookies.WriteLanguage(w, prefs.Language.Language)
	}
	if prefs.Tournament.CookieStale() {
		h.cookies.WriteTournament(w, prefs.Tournament.TournamentID)
	}
}

// requestLanguage is the language of a resource request. An explicit ?lang=
// wins over the cookie so the cache key matches what the caller asked for.
func (h *Handler) requestLanguage(r *http.Request) preference.Language {
	if lang, ok := preference.NormalizeLanguage(r.URL.Query().Get("lang")); ok {
		return lang
	}
	return preference.ResolveLanguage(preference.Candidates{
		Cookie:  h.cookies.ReadLanguage(r),
		Initial: prefstore.InitialLanguage(r),
	}).Language
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

// queryID reads an optional positive id; absent means zero.
func queryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(name)))
	if err != nil {
		return 0
	}
	return v
}
