package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kzleague/league-site/internal/usecase"
)

// GetLayout builds the hydration document of one page. Entity pages read
// their id from the query: team_id, player_id, match_id or article_id.
func (h *Handler) GetLayout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLayout")
	defer span.End()

	route, ok := usecase.ParseRoute(r.PathValue("route"))
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: unknown route %q", usecase.ErrInvalidInput, r.PathValue("route")))
		return
	}

	req := usecase.LayoutRequest{
		Route: route,
		Stage: r.URL.Query().Get("stage"),
		Query: r.URL.Query(),
	}
	if err := entityIDs(r, route, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	visitorID := h.cookies.EnsureVisitorID(w, r)
	req.Preferences = h.preferenceInput(r, visitorID)

	started := time.Now()
	layout, err := h.layoutService.Build(ctx, req)
	if h.observer != nil {
		h.observer.ObserveLayout(string(route), time.Since(started))
	}
	if err != nil {
		h.logger.WarnContext(ctx, "build layout failed", "route", route, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.syncCookies(w, layout.Preferences)
	writeSuccess(ctx, w, http.StatusOK, layout)
}

func entityIDs(r *http.Request, route usecase.Route, req *usecase.LayoutRequest) error {
	var (
		name   string
		target *int64
	)
	switch route {
	case usecase.RouteTeam:
		name, target = "team_id", &req.TeamID
	case usecase.RoutePlayer:
		name, target = "player_id", &req.PlayerID
	case usecase.RouteMatch:
		name, target = "match_id", &req.MatchID
	case usecase.RouteArticle:
		name, target = "article_id", &req.ArticleID
	default:
		return nil
	}

	id, err := queryID(r, name)
	if err != nil {
		return err
	}
	if id == 0 {
		return fmt.Errorf("%w: %s is required for route %s", usecase.ErrInvalidInput, name, route)
	}
	*target = id
	return nil
}
