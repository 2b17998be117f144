package tournament

// SeasonState is the pre-season override state.
type SeasonState string

const (
	StatePreSeason SeasonState = "pre_season"
	StateInSeason  SeasonState = "in_season"
)

// Fixed match window used for the top flight while no rounds exist yet.
const (
	PreSeasonDateFrom = "2026-03-01"
	PreSeasonDateTo   = "2026-03-15"
)

// PreSeasonPolicy switches the top flight onto a not-yet-started season.
// Statistics keep reading PreviousSeasonID; fixtures read CurrentSeasonID
// through the fixed date window.
type PreSeasonPolicy struct {
	Enabled          bool
	CurrentSeasonID  int64
	PreviousSeasonID int64
}

func (p PreSeasonPolicy) State() SeasonState {
	if p.Enabled && p.CurrentSeasonID > 0 {
		return StatePreSeason
	}
	return StateInSeason
}

// DateWindow is an inclusive ISO date range.
type DateWindow struct {
	From string
	To   string
}

func PreSeasonWindow() DateWindow {
	return DateWindow{From: PreSeasonDateFrom, To: PreSeasonDateTo}
}

// SeasonResolution is the effective season for one feature of a tournament.
type SeasonResolution struct {
	TournamentID string
	SeasonID     int64
	State        SeasonState
	// DateWindow is set when fixtures must be queried by date instead of round.
	DateWindow *DateWindow
}
