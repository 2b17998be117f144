package tournament

import "github.com/kzleague/league-site/internal/domain/preference"

type Type string

const (
	TypeLeague   Type = "league"
	TypeCup      Type = "cup"
	TypeSupercup Type = "supercup"
)

// LocalizedName holds a display name per supported language.
type LocalizedName struct {
	KZ string
	RU string
}

func (n LocalizedName) In(lang preference.Language) string {
	if lang == preference.LanguageRU && n.RU != "" {
		return n.RU
	}
	if n.KZ != "" {
		return n.KZ
	}
	return n.RU
}

// Tournament is one of the league's competitions.
type Tournament struct {
	ID           string
	SeasonID     int64
	Type         Type
	Format       string
	Name         LocalizedName
	Order        int
	HasTable     bool
	HasBracket   bool
	CurrentRound *int
	TotalRounds  *int
}

func (t Tournament) clone() Tournament {
	out := t
	out.CurrentRound = cloneInt(t.CurrentRound)
	out.TotalRounds = cloneInt(t.TotalRounds)
	return out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

// SecondLeagueStage is one of the second league's concurrent sub-competitions.
type SecondLeagueStage string

const (
	StageA     SecondLeagueStage = "a"
	StageB     SecondLeagueStage = "b"
	StageFinal SecondLeagueStage = "final"
)

func ParseSecondLeagueStage(raw string) (SecondLeagueStage, bool) {
	switch stage := SecondLeagueStage(normalizeID(raw)); stage {
	case StageA, StageB, StageFinal:
		return stage, true
	default:
		return "", false
	}
}
