package tournament

import (
	"fmt"
	"sort"
	"strings"
)

// Registry is the immutable tournament catalog. Build it once at startup.
type Registry struct {
	byID           map[string]Tournament
	ordered        []Tournament
	defaultID      string
	topFlightID    string
	secondLeagueID string
	stages         map[SecondLeagueStage]int64
	preSeason      PreSeasonPolicy
}

type RegistryConfig struct {
	Tournaments        []Tournament
	DefaultID          string
	TopFlightID        string
	SecondLeagueID     string
	SecondLeagueStages map[SecondLeagueStage]int64
	PreSeason          PreSeasonPolicy
}

// NewDefaultRegistry builds the registry from the static catalog.
func NewDefaultRegistry(defaultID string, policy PreSeasonPolicy) (*Registry, error) {
	if strings.TrimSpace(defaultID) == "" {
		defaultID = DefaultID
	}
	return NewRegistry(RegistryConfig{
		Tournaments:        Catalog(),
		DefaultID:          defaultID,
		TopFlightID:        PremierLeagueID,
		SecondLeagueID:     SecondLeagueID,
		SecondLeagueStages: SecondLeagueStages(),
		PreSeason:          policy,
	})
}

func NewRegistry(cfg RegistryConfig) (*Registry, error) {
	r := &Registry{
		byID:           make(map[string]Tournament, len(cfg.Tournaments)),
		ordered:        make([]Tournament, 0, len(cfg.Tournaments)),
		defaultID:      normalizeID(cfg.DefaultID),
		topFlightID:    normalizeID(cfg.TopFlightID),
		secondLeagueID: normalizeID(cfg.SecondLeagueID),
		stages:         make(map[SecondLeagueStage]int64, len(cfg.SecondLeagueStages)),
		preSeason:      cfg.PreSeason,
	}

	for _, item := range cfg.Tournaments {
		item = item.clone()
		item.ID = normalizeID(item.ID)
		if item.ID == "" {
			return nil, fmt.Errorf("tournament id is required")
		}
		if item.SeasonID <= 0 {
			return nil, fmt.Errorf("tournament %s: season id must be > 0", item.ID)
		}
		if _, exists := r.byID[item.ID]; exists {
			return nil, fmt.Errorf("duplicate tournament id %s", item.ID)
		}
		r.byID[item.ID] = item
		r.ordered = append(r.ordered, item)
	}
	sort.SliceStable(r.ordered, func(i, j int) bool { return r.ordered[i].Order < r.ordered[j].Order })

	if _, ok := r.byID[r.defaultID]; !ok {
		return nil, fmt.Errorf("default tournament %q is not in the catalog", cfg.DefaultID)
	}
	if r.topFlightID != "" {
		if _, ok := r.byID[r.topFlightID]; !ok {
			return nil, fmt.Errorf("top flight tournament %q is not in the catalog", cfg.TopFlightID)
		}
	}
	for stage, seasonID := range cfg.SecondLeagueStages {
		if seasonID <= 0 {
			return nil, fmt.Errorf("second league stage %s: season id must be > 0", stage)
		}
		r.stages[stage] = seasonID
	}
	if cfg.PreSeason.Enabled && (cfg.PreSeason.CurrentSeasonID <= 0 || cfg.PreSeason.PreviousSeasonID <= 0) {
		return nil, fmt.Errorf("pre-season policy requires current and previous season ids")
	}

	return r, nil
}

func (r *Registry) Lookup(id string) (Tournament, bool) {
	item, ok := r.byID[normalizeID(id)]
	if !ok {
		return Tournament{}, false
	}
	return item.clone(), true
}

func (r *Registry) Has(id string) bool {
	_, ok := r.byID[normalizeID(id)]
	return ok
}

func (r *Registry) DefaultID() string {
	return r.defaultID
}

func (r *Registry) Default() Tournament {
	return r.byID[r.defaultID].clone()
}

func (r *Registry) TopFlightID() string {
	return r.topFlightID
}

func (r *Registry) IsTopFlight(id string) bool {
	return r.topFlightID != "" && normalizeID(id) == r.topFlightID
}

func (r *Registry) PreSeason() PreSeasonPolicy {
	return r.preSeason
}

// ResolveID returns id when known and the default id otherwise.
func (r *Registry) ResolveID(id string) string {
	id = normalizeID(id)
	if _, ok := r.byID[id]; ok {
		return id
	}
	return r.defaultID
}

// All returns the tournaments ordered for display.
func (r *Registry) All() []Tournament {
	out := make([]Tournament, 0, len(r.ordered))
	for _, item := range r.ordered {
		out = append(out, item.clone())
	}
	return out
}

func (r *Registry) SecondLeagueSeason(stage SecondLeagueStage) (int64, bool) {
	seasonID, ok := r.stages[stage]
	return seasonID, ok
}

// SeasonFor is the catalog season of id, with the stage override applied
// only to the second league. Unknown ids resolve against the default.
func (r *Registry) SeasonFor(id string, stage SecondLeagueStage) int64 {
	id = r.ResolveID(id)
	if id == r.secondLeagueID && stage != "" {
		if seasonID, ok := r.stages[stage]; ok {
			return seasonID
		}
	}
	return r.byID[id].SeasonID
}

// StatsSeason resolves the season statistics pages read. During pre-season
// the top flight reads the previous season.
func (r *Registry) StatsSeason(id string, stage SecondLeagueStage) SeasonResolution {
	id = r.ResolveID(id)
	out := SeasonResolution{
		TournamentID: id,
		SeasonID:     r.SeasonFor(id, stage),
		State:        r.preSeason.State(),
	}
	if out.State == StatePreSeason && r.IsTopFlight(id) {
		out.SeasonID = r.preSeason.PreviousSeasonID
	}
	return out
}

// MatchesSeason resolves the season fixture pages read. During pre-season
// the top flight reads the configured current season through the fixed
// date window.
func (r *Registry) MatchesSeason(id string, stage SecondLeagueStage) SeasonResolution {
	id = r.ResolveID(id)
	out := SeasonResolution{
		TournamentID: id,
		SeasonID:     r.SeasonFor(id, stage),
		State:        r.preSeason.State(),
	}
	if out.State == StatePreSeason && r.IsTopFlight(id) {
		out.SeasonID = r.preSeason.CurrentSeasonID
		window := PreSeasonWindow()
		out.DateWindow = &window
	}
	return out
}

func normalizeID(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
