package filters

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	KeySeasonID = "season_id"
	KeyGroup    = "group"
	KeyFinal    = "final"
	KeyTours    = "tours"
	KeyTeamIDs  = "team_ids"
	KeyMonth    = "month"
	KeyYear     = "year"
	KeyStatus   = "status"
	KeyHidePast = "hide_past"
)

type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusLive     Status = "live"
	StatusFinished Status = "finished"
)

func ParseStatus(raw string) Status {
	switch status := Status(strings.ToLower(strings.TrimSpace(raw))); status {
	case StatusUpcoming, StatusLive, StatusFinished:
		return status
	default:
		return ""
	}
}

// MatchCenter is the parsed match-center filter state. Zero fields are absent.
// Final and Group are mutually exclusive; Final wins.
type MatchCenter struct {
	SeasonID int64   `json:"season_id,omitempty"`
	Group    string  `json:"group,omitempty"`
	Final    bool    `json:"final,omitempty"`
	Tours    []int64 `json:"tours,omitempty"`
	TeamIDs  []int64 `json:"team_ids,omitempty"`
	Month    int     `json:"month,omitempty"`
	Year     int     `json:"year,omitempty"`
	Status   Status  `json:"status,omitempty"`
	HidePast *bool   `json:"hide_past,omitempty"`
}

type MatchCenterPatch struct {
	SeasonID Change[int64]
	Group    Change[string]
	Final    Change[bool]
	Tours    Change[[]int64]
	TeamIDs  Change[[]int64]
	Month    Change[int]
	Year     Change[int]
	Status   Change[Status]
	HidePast Change[bool]
}

const (
	minYear = 1900
	maxYear = 2100
)

func ParseMatchCenter(values url.Values) MatchCenter {
	out := MatchCenter{
		SeasonID: parsePositiveInt64(values.Get(KeySeasonID)),
		Group:    trimmed(values.Get(KeyGroup)),
		Final:    parseFinal(values.Get(KeyFinal)),
		Tours:    parseIntList(values.Get(KeyTours)),
		TeamIDs:  parseIntList(values.Get(KeyTeamIDs)),
		Month:    parseIntInRange(values.Get(KeyMonth), 1, 12),
		Year:     parseIntInRange(values.Get(KeyYear), minYear, maxYear),
		Status:   ParseStatus(values.Get(KeyStatus)),
		HidePast: parseHidePast(values.Get(KeyHidePast)),
	}
	if out.Final {
		out.Group = ""
	}
	return out
}

// Values serializes only the fields that are set.
func (m MatchCenter) Values() url.Values {
	values := url.Values{}
	setIf(values, KeySeasonID, formatPositiveInt64(m.SeasonID))
	if !m.Final {
		setIf(values, KeyGroup, m.Group)
	}
	setIf(values, KeyFinal, formatFinal(m.Final))
	setIf(values, KeyTours, formatIntList(m.Tours))
	setIf(values, KeyTeamIDs, formatIntList(m.TeamIDs))
	setIf(values, KeyMonth, formatIntInRange(m.Month, 1, 12))
	setIf(values, KeyYear, formatIntInRange(m.Year, minYear, maxYear))
	setIf(values, KeyStatus, string(m.Status))
	if m.HidePast != nil {
		values.Set(KeyHidePast, strconv.FormatBool(*m.HidePast))
	}
	return values
}

// BuildMatchCenter merges patch into a copy of current. Keys the patch does
// not touch are kept as they are.
func BuildMatchCenter(current url.Values, patch MatchCenterPatch) url.Values {
	out := cloneValues(current)
	// A group shadowed by final is never observable, so it is not carried.
	if parseFinal(out.Get(KeyFinal)) {
		out.Del(KeyGroup)
	}

	patchField(out, KeySeasonID, patch.SeasonID, formatPositiveInt64)
	patchField(out, KeyGroup, patch.Group, trimmed)
	patchField(out, KeyFinal, patch.Final, formatFinal)
	patchField(out, KeyTours, patch.Tours, formatIDs)
	patchField(out, KeyTeamIDs, patch.TeamIDs, formatIDs)
	patchField(out, KeyMonth, patch.Month, formatMonth)
	patchField(out, KeyYear, patch.Year, formatYear)
	patchField(out, KeyStatus, patch.Status, formatStatus)
	patchField(out, KeyHidePast, patch.HidePast, strconv.FormatBool)

	if parseFinal(out.Get(KeyFinal)) {
		out.Del(KeyGroup)
	}
	return out
}

// ApplyMatchCenter is BuildMatchCenter on parsed state.
func ApplyMatchCenter(current MatchCenter, patch MatchCenterPatch) MatchCenter {
	out := current
	out.SeasonID = applyField(out.SeasonID, patch.SeasonID, formatPositiveInt64, parsePositiveInt64)
	out.Group = applyField(out.Group, patch.Group, trimmed, trimmed)
	out.Final = applyField(out.Final, patch.Final, formatFinal, parseFinal)
	out.Tours = applyField(out.Tours, patch.Tours, formatIDs, parseIntList)
	out.TeamIDs = applyField(out.TeamIDs, patch.TeamIDs, formatIDs, parseIntList)
	out.Month = applyField(out.Month, patch.Month, formatMonth, func(raw string) int { return parseIntInRange(raw, 1, 12) })
	out.Year = applyField(out.Year, patch.Year, formatYear, func(raw string) int { return parseIntInRange(raw, minYear, maxYear) })
	out.Status = applyField(out.Status, patch.Status, formatStatus, ParseStatus)
	if patch.HidePast.Touched() {
		if v, ok := patch.HidePast.Value(); ok {
			out.HidePast = &v
		} else {
			out.HidePast = nil
		}
	}
	if out.Final {
		out.Group = ""
	}
	return out
}

func parseFinal(raw string) bool {
	v, ok := parseBool(raw)
	return ok && v
}

// formatFinal encodes false as absent.
func formatFinal(v bool) string {
	if !v {
		return ""
	}
	return "true"
}

func parseHidePast(raw string) *bool {
	v, ok := parseBool(raw)
	if !ok {
		return nil
	}
	return &v
}

func formatIDs(list []int64) string {
	return formatIntList(normalizeIntList(list))
}

func formatMonth(v int) string { return formatIntInRange(v, 1, 12) }

func formatYear(v int) string { return formatIntInRange(v, minYear, maxYear) }

func formatStatus(v Status) string { return string(ParseStatus(string(v))) }

func setIf(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}
