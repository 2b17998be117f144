package tournament

const (
	PremierLeagueID = "pl"
	FirstLeagueID   = "1l"
	CupID           = "cup"
	SecondLeagueID  = "2l"
	WomenLeagueID   = "wl"
	SupercupID      = "supercup"

	DefaultID = PremierLeagueID
)

func intPtr(v int) *int { return &v }

// Catalog returns the static tournament list the site ships with.
func Catalog() []Tournament {
	return []Tournament{
		{
			ID:          PremierLeagueID,
			SeasonID:    61,
			Type:        TypeLeague,
			Format:      "round_robin",
			Name:        LocalizedName{KZ: "Премьер-Лига", RU: "Премьер-Лига"},
			Order:       1,
			HasTable:    true,
			TotalRounds: intPtr(26),
		},
		{
			ID:          FirstLeagueID,
			SeasonID:    85,
			Type:        TypeLeague,
			Format:      "round_robin",
			Name:        LocalizedName{KZ: "Бірінші Лига", RU: "Первая Лига"},
			Order:       2,
			HasTable:    true,
			TotalRounds: intPtr(30),
		},
		{
			ID:         CupID,
			SeasonID:   71,
			Type:       TypeCup,
			Format:     "knockout",
			Name:       LocalizedName{KZ: "Қазақстан Кубогы", RU: "Кубок Казахстана"},
			Order:      3,
			HasBracket: true,
		},
		{
			ID:       SecondLeagueID,
			SeasonID: 80,
			Type:     TypeLeague,
			Format:   "groups",
			Name:     LocalizedName{KZ: "Екінші Лига", RU: "Вторая Лига"},
			Order:    4,
			HasTable: true,
		},
		{
			ID:          WomenLeagueID,
			SeasonID:    84,
			Type:        TypeLeague,
			Format:      "round_robin",
			Name:        LocalizedName{KZ: "Әйелдер Лигасы", RU: "Женская Лига"},
			Order:       5,
			HasTable:    true,
			TotalRounds: intPtr(21),
		},
		{
			ID:       SupercupID,
			SeasonID: 90,
			Type:     TypeSupercup,
			Format:   "single_match",
			Name:     LocalizedName{KZ: "Суперкубок", RU: "Суперкубок"},
			Order:    6,
		},
	}
}

// SecondLeagueStages maps each second league stage to its own season.
func SecondLeagueStages() map[SecondLeagueStage]int64 {
	return map[SecondLeagueStage]int64{
		StageA:     80,
		StageB:     81,
		StageFinal: 157,
	}
}
