package httpapi

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/usecase"
)

type updateLanguageRequest struct {
	Language string `json:"language" validate:"required,max=16"`
}

type updateTournamentRequest struct {
	TournamentID string `json:"tournament_id" validate:"required,max=32"`
}

type preferencesDTO struct {
	Language         preference.Language `json:"language"`
	LanguageSource   preference.Source   `json:"language_source,omitempty"`
	TournamentID     string              `json:"tournament_id"`
	TournamentSource preference.Source   `json:"tournament_source,omitempty"`
}

func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPreferences")
	defer span.End()

	visitorID := h.cookies.EnsureVisitorID(w, r)
	prefs := h.preferenceService.Resolve(ctx, h.preferenceInput(r, visitorID))
	h.syncCookies(w, prefs)

	writeSuccess(ctx, w, http.StatusOK, preferencesDTO{
		Language:         prefs.Language.Language,
		LanguageSource:   prefs.Language.Source,
		TournamentID:     prefs.Tournament.TournamentID,
		TournamentSource: prefs.Tournament.Source,
	})
}

func (h *Handler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateLanguage")
	defer span.End()

	var req updateLanguageRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	visitorID := h.cookies.EnsureVisitorID(w, r)
	lang, err := h.preferenceService.UpdateLanguage(ctx, visitorID, req.Language)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.cookies.WriteLanguage(w, lang)
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"language": lang.String()})
}

func (h *Handler) UpdateTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateTournament")
	defer span.End()

	var req updateTournamentRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	visitorID := h.cookies.EnsureVisitorID(w, r)
	id, err := h.preferenceService.UpdateTournament(ctx, visitorID, req.TournamentID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.cookies.WriteTournament(w, id)
	writeSuccess(ctx, w, http.StatusOK, map[string]string{"tournament_id": id})
}
