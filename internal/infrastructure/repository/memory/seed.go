package memory

import (
	"time"

	"github.com/hoopqueens/boxscore/internal/domain/game"
	"github.com/hoopqueens/boxscore/internal/domain/player"
	"github.com/hoopqueens/boxscore/internal/domain/team"
)

// SeedTeams returns a two-team reference set for tests and local runs.
func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID:             1,
			Name:           "Metro Hawks",
			Abbreviation:   "MH",
			Coach:          "Dana Whitfield",
			GeneralManager: "Iris Kato",
		},
		{
			ID:             2,
			Name:           "Bay Flames",
			Abbreviation:   "BF",
			Coach:          "Ruth Okafor",
			GeneralManager: "Mei Tanaka",
		},
	}
}

// SeedPlayers returns six players per seeded team. Media names follow
// the "LastInitial. FirstName" form box-score documents print.
func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 101, TeamID: 1, FirstName: "Chelsea", LastName: "Vaughn", MediaName: "V. Chelsea", JerseyNumber: 4, Position: "G"},
		{ID: 102, TeamID: 1, FirstName: "Amara", LastName: "Diallo", MediaName: "D. Amara", JerseyNumber: 7, Position: "G"},
		{ID: 103, TeamID: 1, FirstName: "Noor", LastName: "Haddad", MediaName: "H. Noor", JerseyNumber: 11, Position: "F"},
		{ID: 104, TeamID: 1, FirstName: "Priya", LastName: "Raman", MediaName: "R. Priya", JerseyNumber: 15, Position: "F"},
		{ID: 105, TeamID: 1, FirstName: "Sofia", LastName: "Ionescu", MediaName: "I. Sofia", JerseyNumber: 21, Position: "C"},
		{ID: 106, TeamID: 1, FirstName: "Wren", LastName: "Ashby", MediaName: "A. Wren", JerseyNumber: 23, Position: "F"},

		{ID: 201, TeamID: 2, FirstName: "Lena", LastName: "Fischer", MediaName: "F. Lena", JerseyNumber: 3, Position: "G"},
		{ID: 202, TeamID: 2, FirstName: "Tola", LastName: "Adeyemi", MediaName: "A. Tola", JerseyNumber: 8, Position: "G"},
		{ID: 203, TeamID: 2, FirstName: "Hana", LastName: "Suzuki", MediaName: "S. Hana", JerseyNumber: 10, Position: "F"},
		{ID: 204, TeamID: 2, FirstName: "Greta", LastName: "Lindqvist", MediaName: "L. Greta", JerseyNumber: 14, Position: "F"},
		{ID: 205, TeamID: 2, FirstName: "Bisa", LastName: "Mensah", MediaName: "M. Bisa", JerseyNumber: 20, Position: "C"},
		{ID: 206, TeamID: 2, FirstName: "Rosa", LastName: "Delgado", MediaName: "D. Rosa", JerseyNumber: 33, Position: "C"},
	}
}

// SeedGames returns three fixtures between the seeded teams.
func SeedGames() []game.Game {
	date := func(day int) time.Time {
		return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC)
	}

	return []game.Game{
		{ID: 1, GameNumber: 1, Date: date(7), StartTime: date(7).Add(19 * time.Hour), Location: "Metro Arena", HomeTeam: "Metro Hawks", AwayTeam: "Bay Flames", Attendance: 2400},
		{ID: 2, GameNumber: 2, Date: date(14), StartTime: date(14).Add(19 * time.Hour), Location: "Bayside Dome", HomeTeam: "Bay Flames", AwayTeam: "Metro Hawks", Attendance: 1900},
		{ID: 3, GameNumber: 3, Date: date(21), StartTime: date(21).Add(17 * time.Hour), Location: "Metro Arena", HomeTeam: "Metro Hawks", AwayTeam: "Bay Flames", Attendance: 2750},
	}
}

// SeedTeamNames maps seeded team IDs to display names.
func SeedTeamNames() map[int64]string {
	names := make(map[int64]string)
	for _, t := range SeedTeams() {
		names[t.ID] = t.Name
	}
	return names
}
