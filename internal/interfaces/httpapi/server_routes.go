package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
}

func registerLayoutRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/layout/{route}", handler.GetLayout)
}

func registerPreferenceRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/preferences", handler.GetPreferences)
	mux.HandleFunc("PUT /v1/preferences/language", handler.UpdateLanguage)
	mux.HandleFunc("PUT /v1/preferences/tournament", handler.UpdateTournament)
}

func registerResourceRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/resources/seasons", handler.GetSeasons)
	mux.HandleFunc("GET /v1/resources/seasons/{seasonID}", handler.GetSeason)
	mux.HandleFunc("GET /v1/resources/seasons/{seasonID}/table", handler.GetTable)
	mux.HandleFunc("GET /v1/resources/seasons/{seasonID}/player-stats", handler.ListPlayerStats)
	mux.HandleFunc("GET /v1/resources/seasons/{seasonID}/team-stats", handler.ListTeamStats)
	mux.HandleFunc("GET /v1/resources/seasons/{seasonID}/bracket", handler.GetBracket)
	mux.HandleFunc("GET /v1/resources/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/resources/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/resources/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/resources/teams/{teamID}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /v1/resources/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/resources/news", handler.ListNews)
	mux.HandleFunc("GET /v1/resources/news/{articleID}", handler.GetArticle)
}
