package queryplan

import (
	"net/url"
	"strconv"
)

type Source string

const (
	SourceTour        Source = "tour"
	SourceMatchCenter Source = "matchCenter"
)

const (
	PreSeasonLimit = 40
	DefaultLimit   = 20
	// GroupByDate asks the match center to bucket fixtures by day. It travels
	// as group_by so it never collides with the group-stage filter.
	GroupByDate = "date"

	KeyGroupBy = "group_by"
)

// Plan is the fixture fetch strategy for one season. Tour is set for
// SourceTour, Filters for SourceMatchCenter.
type Plan struct {
	Source   Source            `json:"source"`
	SeasonID int64             `json:"seasonId"`
	Tour     int               `json:"tour,omitempty"`
	Filters  *MatchCenterQuery `json:"filters,omitempty"`
}

func TourPlan(seasonID int64, tour int) Plan {
	return Plan{Source: SourceTour, SeasonID: seasonID, Tour: tour}
}

func MatchCenterPlan(q MatchCenterQuery) Plan {
	return Plan{Source: SourceMatchCenter, SeasonID: q.SeasonID, Filters: &q}
}

// Values is the canonical parameter set of the plan. It feeds both the
// backend request and the prefetch key.
func (p Plan) Values() url.Values {
	if p.Source == SourceTour {
		values := url.Values{}
		values.Set("season_id", strconv.FormatInt(p.SeasonID, 10))
		values.Set("tour", strconv.Itoa(p.Tour))
		return values
	}
	if p.Filters == nil {
		return MatchCenterQuery{SeasonID: p.SeasonID}.Values()
	}
	return p.Filters.Values()
}

// MatchCenterQuery is the date-driven fixture query. Group is the visitor's
// group-stage filter; GroupBy controls bucketing of the reply.
type MatchCenterQuery struct {
	SeasonID int64  `json:"season_id"`
	DateFrom string `json:"date_from,omitempty"`
	DateTo   string `json:"date_to,omitempty"`
	HidePast *bool  `json:"hide_past,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Group    string `json:"group,omitempty"`
	GroupBy  string `json:"group_by,omitempty"`
	// Extra carries visitor-selected match-center filters.
	Extra url.Values `json:"extra,omitempty"`
}

func (q MatchCenterQuery) Values() url.Values {
	values := url.Values{}
	for key, list := range q.Extra {
		if len(list) > 0 && list[0] != "" {
			values.Set(key, list[0])
		}
	}
	if q.SeasonID > 0 {
		values.Set("season_id", strconv.FormatInt(q.SeasonID, 10))
	}
	if q.DateFrom != "" {
		values.Set("date_from", q.DateFrom)
	}
	if q.DateTo != "" {
		values.Set("date_to", q.DateTo)
	}
	if q.HidePast != nil {
		values.Set("hide_past", strconv.FormatBool(*q.HidePast))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Group != "" {
		values.Set("group", q.Group)
	}
	if q.GroupBy != "" {
		values.Set(KeyGroupBy, q.GroupBy)
	}
	return values
}

// ParsePlan reads a plan back from its parameters plus a "source" key. It
// is the inverse of Values for every plan the builder produces. Keys listed
// in ignore (e.g. "lang") are dropped.
func ParsePlan(values url.Values, ignore ...string) (Plan, bool) {
	seasonID, err := strconv.ParseInt(values.Get("season_id"), 10, 64)
	if err != nil || seasonID <= 0 {
		return Plan{}, false
	}

	switch Source(values.Get("source")) {
	case SourceTour:
		tour, err := strconv.Atoi(values.Get("tour"))
		if err != nil || tour <= 0 {
			return Plan{}, false
		}
		return TourPlan(seasonID, tour), true
	case SourceMatchCenter:
	default:
		return Plan{}, false
	}

	q := MatchCenterQuery{
		SeasonID: seasonID,
		DateFrom: values.Get("date_from"),
		DateTo:   values.Get("date_to"),
		Group:    values.Get("group"),
		GroupBy:  values.Get(KeyGroupBy),
	}
	if raw := values.Get("hide_past"); raw != "" {
		hide, err := strconv.ParseBool(raw)
		if err != nil {
			return Plan{}, false
		}
		q.HidePast = &hide
	}
	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return Plan{}, false
		}
		q.Limit = limit
	}

	skip := map[string]struct{}{
		"source": {}, "season_id": {}, "date_from": {}, "date_to": {},
		"hide_past": {}, "limit": {}, "group": {}, KeyGroupBy: {},
	}
	for _, key := range ignore {
		skip[key] = struct{}{}
	}
	for key, list := range values {
		if _, ok := skip[key]; ok || len(list) == 0 || list[0] == "" {
			continue
		}
		if q.Extra == nil {
			q.Extra = url.Values{}
		}
		q.Extra.Set(key, list[0])
	}
	return MatchCenterPlan(q), true
}

// Query is Values plus the source, the form ParsePlan reads.
func (p Plan) Query() url.Values {
	values := p.Values()
	values.Set("source", string(p.Source))
	return values
}
