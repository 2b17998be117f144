package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kzleague/league-site/internal/domain/league"
	"github.com/kzleague/league-site/internal/domain/preference"
	"github.com/kzleague/league-site/internal/domain/queryplan"
	"github.com/kzleague/league-site/internal/domain/tournament"
	"github.com/kzleague/league-site/internal/infrastructure/prefstore"
	usecasemock "github.com/kzleague/league-site/internal/mocks/usecase"
	"github.com/kzleague/league-site/internal/platform/cache"
	"github.com/kzleague/league-site/internal/platform/logging"
	"github.com/kzleague/league-site/internal/prefetch"
	"github.com/kzleague/league-site/internal/usecase"
)

type testServer struct {
	router  http.Handler
	api     *usecasemock.LeagueAPI
	storage *prefstore.MemoryStorage
}

func newTestServer(t *testing.T) testServer {
	t.Helper()

	registry, err := tournament.NewDefaultRegistry("", tournament.PreSeasonPolicy{})
	require.NoError(t, err)

	api := usecasemock.NewLeagueAPI(t)
	storage := prefstore.NewMemoryStorage()
	preferences := usecase.NewPreferenceService(registry, storage, logging.NewNop())
	resources := usecase.NewResourceService(api, cache.NewStore(cache.Policy{}))
	layouts := usecase.NewLayoutService(registry, preferences, resources, prefetch.NewGateway(logging.NewNop()))

	handler := NewHandler(layouts, preferences, resources, prefstore.NewCookies(prefstore.CookieOptions{}), logging.NewNop())
	return testServer{
		router:  NewRouter(handler, logging.NewNop(), RouterConfig{}),
		api:     api,
		storage: storage,
	}
}

func (s testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func responseCookies(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	out := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		out[c.Name] = c
	}
	return out
}

func TestGetLayout_TableRouteWritesBackPreferences(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.api.On("Seasons", mock.Anything, preference.LanguageRU).Return([]tournament.Championship{}, nil).Once()
	srv.api.On("Season", mock.Anything, int64(61), preference.LanguageRU).Return(league.SeasonInfo{ID: 61}, nil).Once()
	srv.api.On("Table", mock.Anything, int64(61), preference.LanguageRU).Return(league.Table{SeasonID: 61}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/layout/table", nil)
	req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9")
	rec := srv.do(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data struct {
			Language      string         `json:"language"`
			StatsSeasonID int64          `json:"statsSeasonId"`
			Bridge        map[string]any `json:"bridge"`
		} `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ru", body.Data.Language)
	assert.Equal(t, int64(61), body.Data.StatsSeasonID)
	assert.Contains(t, body.Data.Bridge, prefetch.TableKey(61, preference.LanguageRU).String())
	assert.Contains(t, body.Data.Bridge, prefetch.SeasonKey(61, preference.LanguageRU).String())

	cookies := responseCookies(rec)
	require.Contains(t, cookies, prefstore.LanguageCookie)
	assert.Equal(t, "ru", cookies[prefstore.LanguageCookie].Value)
	require.Contains(t, cookies, prefstore.TournamentCookie)
	assert.Equal(t, "pl", cookies[prefstore.TournamentCookie].Value)
	require.Contains(t, cookies, prefstore.VisitorCookie)
	assert.True(t, cookies[prefstore.VisitorCookie].HttpOnly)
}

func TestGetLayout_FreshCookiesAreNotRewritten(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.api.On("Seasons", mock.Anything, preference.LanguageKZ).Return([]tournament.Championship{}, nil).Once()
	srv.api.On("Season", mock.Anything, int64(71), preference.LanguageKZ).Return(league.SeasonInfo{ID: 71}, nil).Once()
	srv.api.On("Table", mock.Anything, int64(71), preference.LanguageKZ).Return(league.Table{SeasonID: 71}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/v1/layout/table", nil)
	req.AddCookie(&http.Cookie{Name: prefstore.LanguageCookie, Value: "kz"})
	req.AddCookie(&http.Cookie{Name: prefstore.TournamentCookie, Value: "cup"})
	req.AddCookie(&http.Cookie{Name: prefstore.VisitorCookie, Value: "9b2f3c1e-7d4a-4c8e-a1f0-0d6b5e2a7c11"})
	rec := srv.do(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	assert.Empty(t, responseCookies(rec))
}

func TestGetLayout_RejectsBadRequests(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	for _, target := range []string{"/v1/layout/fantasy", "/v1/layout/team", "/v1/layout/player?player_id=abc"} {
		rec := srv.do(httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestUpdateLanguage_SetsCookieAndPersists(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	const visitor = "9b2f3c1e-7d4a-4c8e-a1f0-0d6b5e2a7c11"

	req := httptest.NewRequest(http.MethodPut, "/v1/preferences/language", strings.NewReader(`{"language":" RU "}`))
	req.AddCookie(&http.Cookie{Name: prefstore.VisitorCookie, Value: visitor})
	rec := srv.do(req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "ru", responseCookies(rec)[prefstore.LanguageCookie].Value)

	stored, ok, err := srv.storage.Load(context.Background(), visitor)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ru", stored.Language)
}

func TestUpdatePreferences_InvalidPayloads(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	cases := []struct {
		path string
		body string
	}{
		{"/v1/preferences/language", `{"language":"en"}`},
		{"/v1/preferences/language", `{"language":"ru","extra":1}`},
		{"/v1/preferences/language", `{}`},
		{"/v1/preferences/tournament", `{"tournament_id":"bundesliga"}`},
		{"/v1/preferences/tournament", `not json`},
	}
	for _, tc := range cases {
		rec := srv.do(httptest.NewRequest(http.MethodPut, tc.path, strings.NewReader(tc.body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, tc.body)
		assert.NotContains(t, responseCookies(rec), prefstore.LanguageCookie)
		assert.NotContains(t, responseCookies(rec), prefstore.TournamentCookie)
	}
}

func TestListMatches_ReadsPlanFromQuery(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	plan := queryplan.TourPlan(61, 5)
	srv.api.On("Matches", mock.Anything, plan, preference.LanguageRU).Return(league.MatchList{Total: 6}, nil).Once()

	target := "/v1/resources/matches?" + plan.Query().Encode() + "&lang=ru"
	rec := srv.do(httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body struct {
		Data league.MatchList `json:"data"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 6, body.Data.Total)

	rec = srv.do(httptest.NewRequest(http.MethodGet, "/v1/resources/matches?season_id=61", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResourceErrorsMapToStatus(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	srv.api.On("Match", mock.Anything, int64(9), preference.LanguageKZ).Return(league.Match{}, usecase.ErrNotFound).Once()

	rec := srv.do(httptest.NewRequest(http.MethodGet, "/v1/resources/matches/9", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(httptest.NewRequest(http.MethodGet, "/v1/resources/matches/0", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
