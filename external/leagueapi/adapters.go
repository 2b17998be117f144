package leagueapi

import (
	"strings"

	"github.com/kzleague/league-site/internal/domain/league"
	"github.com/kzleague/league-site/internal/domain/tournament"
)

func mapChampionships(items []championshipItem) []tournament.Championship {
	out := make([]tournament.Championship, 0, len(items))
	for _, item := range items {
		champ := tournament.Championship{
			ID:          item.ID.Int64(),
			Name:        item.Name,
			Tournaments: make([]tournament.ChampionshipTournament, 0, len(item.Tournaments)),
		}
		for _, t := range item.Tournaments {
			entry := tournament.ChampionshipTournament{
				ID:      t.ID.Int64(),
				Name:    t.Name,
				Seasons: make([]tournament.Season, 0, len(t.Seasons)),
			}
			for _, s := range t.Seasons {
				entry.Seasons = append(entry.Seasons, tournament.Season{
					ID:        s.ID.Int64(),
					Name:      s.Name,
					StartDate: s.StartDate,
				})
			}
			champ.Tournaments = append(champ.Tournaments, entry)
		}
		out = append(out, champ)
	}
	return out
}

func mapSeasonInfo(item seasonItem) league.SeasonInfo {
	return league.SeasonInfo{
		ID:           item.ID.Int64(),
		Name:         item.Name,
		StartDate:    item.StartDate,
		CurrentRound: item.CurrentRound.Ptr(),
		TotalRounds:  item.TotalRounds.Ptr(),
		Started:      item.Started.Ptr(),
	}
}

func mapTeamRef(item teamRefItem) league.TeamRef {
	return league.TeamRef{ID: item.ID.Int64(), Name: item.Name, Logo: item.Logo}
}

func mapStandings(items []standingItem) []league.StandingRow {
	out := make([]league.StandingRow, 0, len(items))
	for _, item := range items {
		out = append(out, league.StandingRow{
			Position:     item.Position,
			Team:         mapTeamRef(item.Team),
			Played:       item.Played,
			Won:          item.Won,
			Drawn:        item.Drawn,
			Lost:         item.Lost,
			GoalsFor:     item.GoalsFor,
			GoalsAgainst: item.GoalsAgainst,
			Points:       item.Points,
			Form:         item.Form,
		})
	}
	return out
}

func mapMatch(item matchItem) league.Match {
	return league.Match{
		ID:        item.ID.Int64(),
		SeasonID:  item.SeasonID.Int64(),
		Tour:      item.Tour.Value,
		Group:     item.Group,
		Date:      item.Date,
		Status:    item.Status,
		Home:      mapTeamRef(item.Home),
		Away:      mapTeamRef(item.Away),
		HomeScore: item.HomeScore.Ptr(),
		AwayScore: item.AwayScore.Ptr(),
		Stadium:   item.Stadium,
	}
}

func mapMatches(items []matchItem) []league.Match {
	out := make([]league.Match, 0, len(items))
	for _, item := range items {
		out = append(out, mapMatch(item))
	}
	return out
}

// groupByDate buckets matches by calendar day, keeping backend order.
func groupByDate(matches []league.Match) []league.MatchDay {
	days := make([]league.MatchDay, 0)
	index := make(map[string]int)
	for _, m := range matches {
		day := m.Date
		if len(day) > len("2006-01-02") {
			day = day[:len("2006-01-02")]
		}
		i, ok := index[day]
		if !ok {
			i = len(days)
			index[day] = i
			days = append(days, league.MatchDay{Date: day})
		}
		days[i].Matches = append(days[i].Matches, m)
	}
	return days
}

func mapTeam(item teamItem, seasonID int64) league.Team {
	return league.Team{
		ID:       item.ID.Int64(),
		SeasonID: seasonID,
		Name:     item.Name,
		City:     item.City,
		Logo:     item.Logo,
		Stadium:  item.Stadium,
	}
}

func mapPlayer(item playerItem, seasonID int64) league.Player {
	return league.Player{
		ID:        item.ID.Int64(),
		SeasonID:  seasonID,
		FirstName: strings.TrimSpace(item.FirstName),
		LastName:  strings.TrimSpace(item.LastName),
		Number:    item.Number.Value,
		Position:  item.Position,
		Team:      mapTeamRef(item.Team),
		Country:   item.Country,
		BirthDate: item.BirthDate,
	}
}

func mapArticle(item articleItem) league.Article {
	return league.Article{
		ID:               item.ID.Int64(),
		Title:            item.Title,
		Excerpt:          item.Excerpt,
		Body:             item.Body,
		Type:             item.Type,
		ChampionshipCode: item.ChampionshipCode,
		ImageURL:         item.ImageURL,
		PublishedAt:      item.PublishedAt,
	}
}
