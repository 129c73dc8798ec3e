package sqlite

import "github.com/hoopqueens/boxscore/internal/domain/player"

type playerTableModel struct {
	ID           int64  `db:"id"`
	TeamID       int64  `db:"team_id"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	MediaName    string `db:"media_name"`
	JerseyNumber int    `db:"jersey_number"`
	Position     string `db:"position"`
	School       string `db:"school"`
	BirthDate    string `db:"birth_date"`
	Nationality  string `db:"nationality"`
}

type playerWithTeamModel struct {
	playerTableModel
	TeamName string `db:"team_name"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:           m.ID,
		TeamID:       m.TeamID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		MediaName:    m.MediaName,
		JerseyNumber: m.JerseyNumber,
		Position:     m.Position,
		School:       m.School,
		BirthDate:    m.BirthDate,
		Nationality:  m.Nationality,
	}
}
