package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kzleague/league-site/internal/domain/filters"
	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/domain/queryplan"
	"github.com/kzleague/league-site/internal/prefetch"
	"github.com/kzleague/league-site/internal/usecase"
)

// Resource endpoints serve the same values the layout prefetches, keyed the
// same way, so client hooks can refetch what the bridge seeded.

func serveResource[T any](h *Handler, w http.ResponseWriter, r *http.Request, span string, load func(ctx context.Context, lang preference.Language) (T, error)) {
	ctx, s := startSpan(r.Context(), span)
	defer s.End()

	value, err := load(ctx, h.requestLanguage(r))
	if err != nil {
		h.logger.WarnContext(ctx, "load resource failed", "path", r.URL.Path, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, value)
}

func (h *Handler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	serveResource(h, w, r, "httpapi.Handler.GetSeasons", h.resourceService.Seasons)
}

func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	serveResource(h, w, r, "httpapi.Handler.GetSeason", func(ctx context.Context, lang preference.Language) (any, error) {
		seasonID, err := pathID(r, "seasonID")
		if err != nil {
			return nil, err
		}
		return h.resourceService.Season(ctx, seasonID, lang)
	})
}

func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	serveResource(h, w, r, "httpapi.Handler.GetTable", func(ctx context.Context, lang preference.Language) (any, error) {
		seasonID, err := pathID(r, "seasonID")
		if err != nil {
			return nil, err
		}
		return h.resourceService.Table(ctx, seasonID, lang)
	})
}

// ListMatches reads a fixture plan back from the query, as produced by
// queryplan.Plan.Query.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	serveResource(h, w, r, "httpapi.Handler.ListMatches", func(ctx context.Context, lang preference.Language) (any, error) {
		plan, ok := queryplan.ParsePlan(r.URL.Query(), "lang")
		if !ok {
			return nil, fmt.Errorf("%w: incomplete fixture plan", usecase.ErrInvalidInput)
		}
		return h.resourceService.Matches(ctx, plan, lang)
	})
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	serveResource(h, w, r, "httpapi.Handler.GetMatch", func(ctx context.Context, lang preference.Language) (any, error) {
		matchID, err := pathID(r, "matchID")
		if err != nil {
			return nil, err
		}
		return h.resourceService.Match(ctx, matchID, lang)
	})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	serveResource(h, w, r, "httpapi.Handler.GetTeam", func(ctx context.Context, lang preference.Language) (any, error) {
		teamID, seasonID, err := entityAndSeason(r, "teamID")
		if err != nil {
			return nil, err
		}
		return h.resourceService.Team(ctx, teamID, seasonID, lang)
	})
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	serveResource(h, w, r, "httpapi.Handler.ListTeamPlayers", func(ctx context.Context, lang preference.Language) (any, error) {
		teamID, seasonID, err := entityAndSeason(r, "teamID")
		if err != nil {
			return nil, err
		}
		return h.resourceService.TeamPlayers(ctx, teamID, seasonID, lang)
	})
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	serveResource(h, w, r, "httpapi.Handler.GetPlayer", func(ctx context.Context, lang preference.Language) (any, error) {
		playerID, seasonID, err := entityAndSeason(r, "playerID")
		if err != nil {
			return nil, err
		}
		return h.resourceService.Player(ctx, playerID, seasonID, lang)
	})
}

func (h *Handler) ListPlayerStats(w http.ResponseWriter, r *http.Request) {
	serveResource(h, w, r, "httpapi.Handler.ListPlayerStats", func(ctx context.Context, lang preference.Language) (any, error) {
		seasonID, err := pathID(r, "seasonID")
		if err != nil {
			return nil, err
		}
		teamID, err := queryID(r, "team_id")
		if err != nil {
			return nil, err
		}
		query := prefetch.PlayerStatsQuery{
			Metric: r.URL.Query().Get("metric"),
			Limit:  queryInt(r, "limit"),
			TeamID: teamID,
		}
		return h.resourceService.PlayerStats(ctx, seasonID, query, lang)
	})
}

func (h *Handler) ListTeamStats(w http.ResponseWriter, r *http.Request) {
	serveResource(h, w, r, "httpapi.Handler.ListTeamStats", func(ctx context.Context, lang preference.Language) (any, error) {
		seasonID, err := pathID(r, "seasonID")
		if err != nil {
			return nil, err
		}
		return h.resourceService.TeamStats(ctx, seasonID, lang)
	})
}

func (h *Handler) ListNews(w http.ResponseWriter, r *http.Request) {
	serveResource(h, w, r, "httpapi.Handler.ListNews", func(ctx context.Context, lang preference.Language) (any, error) {
		news := filters.ParseNews(r.URL.Query())
		page := prefetch.Page{Number: queryInt(r, "page"), Size: queryInt(r, "page_size")}.Normalize()
		return h.resourceService.News(ctx, news, page, lang)
	})
}

func (h *Handler) GetArticle(w http.ResponseWriter, r *http.Request) {
	serveResource(h, w, r, "httpapi.Handler.GetArticle", func(ctx context.Context, lang preference.Language) (any, error) {
		articleID, err := pathID(r, "articleID")
		if err != nil {
			return nil, err
		}
		return h.resourceService.Article(ctx, articleID, lang)
	})
}

func (h *Handler) GetBracket(w http.ResponseWriter, r *http.Request) {
	serveResource(h, w, r, "httpapi.Handler.GetBracket", func(ctx context.Context, lang preference.Language) (any, error) {
		seasonID, err := pathID(r, "seasonID")
		if err != nil {
			return nil, err
		}
		return h.resourceService.Bracket(ctx, seasonID, lang)
	})
}

func entityAndSeason(r *http.Request, name string) (int64, int64, error) {
	id, err := pathID(r, name)
	if err != nil {
		return 0, 0, err
	}
	seasonID, err := queryID(r, "season_id")
	if err != nil {
		return 0, 0, err
	}
	return id, seasonID, nil
}
