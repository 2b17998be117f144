package queryplan

import "github.com/kzleague/league-site/internal/domain/filters"

// FromMatchCenter turns visitor filters into a plan. Fields the plan owns
// (season, group, hide_past) are lifted out of Extra. Fixtures are grouped
// by day unless the visitor is looking at the final.
func FromMatchCenter(seasonID int64, mc filters.MatchCenter) Plan {
	if mc.SeasonID > 0 {
		seasonID = mc.SeasonID
	}

	extra := mc.Values()
	extra.Del(filters.KeySeasonID)
	extra.Del(filters.KeyGroup)
	extra.Del(filters.KeyHidePast)
	if len(extra) == 0 {
		extra = nil
	}

	var groupBy string
	if !mc.Final {
		groupBy = GroupByDate
	}
	return MatchCenterPlan(MatchCenterQuery{
		SeasonID: seasonID,
		HidePast: mc.HidePast,
		Limit:    DefaultLimit,
		Group:    mc.Group,
		GroupBy:  groupBy,
		Extra:    extra,
	})
}

// HasMatchCenterFilters reports whether the visitor narrowed the fixture list.
func HasMatchCenterFilters(mc filters.MatchCenter) bool {
	return len(mc.Values()) > 0
}
