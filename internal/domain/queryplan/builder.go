package queryplan

import (
	"strings"

	"github.com/kzleague/league-site/internal/domain/tournament"
)

// Tournaments whose live current round drifts near season end. For these the
// last tour is taken from the round count.
var lastTourTournaments = []string{tournament.FirstLeagueID, tournament.WomenLeagueID}

type Input struct {
	TournamentID string
	SeasonID     int64
	CurrentRound *int
	TotalRounds  *int
	// SeasonStarted nil means started unless the pre-season policy is enabled.
	SeasonStarted *bool
}

type Builder struct {
	topFlightID string
	policy      tournament.PreSeasonPolicy
	lastTour    map[string]struct{}
}

func NewBuilder(registry *tournament.Registry) *Builder {
	b := &Builder{
		topFlightID: registry.TopFlightID(),
		policy:      registry.PreSeason(),
		lastTour:    make(map[string]struct{}, len(lastTourTournaments)),
	}
	for _, id := range lastTourTournaments {
		b.lastTour[id] = struct{}{}
	}
	return b
}

// Build picks the fixture strategy. The rules are checked in order and the
// first match wins.
func (b *Builder) Build(in Input) Plan {
	id := strings.ToLower(strings.TrimSpace(in.TournamentID))

	if b.preSeasonApplies(id, in) {
		hidePast := false
		window := tournament.PreSeasonWindow()
		return MatchCenterPlan(MatchCenterQuery{
			SeasonID: in.SeasonID,
			DateFrom: window.From,
			DateTo:   window.To,
			HidePast: &hidePast,
			Limit:    PreSeasonLimit,
		})
	}

	if _, ok := b.lastTour[id]; ok {
		if total, ok := positive(in.TotalRounds); ok {
			return TourPlan(in.SeasonID, total)
		}
		if current, ok := positive(in.CurrentRound); ok {
			return TourPlan(in.SeasonID, current)
		}
	}

	if current, ok := positive(in.CurrentRound); ok {
		return TourPlan(in.SeasonID, current)
	}

	return MatchCenterPlan(MatchCenterQuery{
		SeasonID: in.SeasonID,
		GroupBy:  GroupByDate,
		Limit:    DefaultLimit,
	})
}

func (b *Builder) preSeasonApplies(id string, in Input) bool {
	if b.topFlightID == "" || id != b.topFlightID {
		return false
	}
	if b.policy.CurrentSeasonID <= 0 || in.SeasonID != b.policy.CurrentSeasonID {
		return false
	}
	started := !b.policy.Enabled
	if in.SeasonStarted != nil {
		started = *in.SeasonStarted
	}
	return !started
}

func positive(v *int) (int, bool) {
	if v == nil || *v <= 0 {
		return 0, false
	}
	return *v, true
}
