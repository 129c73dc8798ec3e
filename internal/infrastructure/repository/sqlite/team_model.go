package sqlite

import "github.com/hoopqueens/boxscore/internal/domain/team"

type teamTableModel struct {
	ID                int64  `db:"id"`
	Name              string `db:"name"`
	Abbreviation      string `db:"abbreviation"`
	Bio               string `db:"bio"`
	Coach             string `db:"coach"`
	CoachBio          string `db:"coach_bio"`
	GeneralManager    string `db:"general_manager"`
	GeneralManagerBio string `db:"general_manager_bio"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:                m.ID,
		Name:              m.Name,
		Abbreviation:      m.Abbreviation,
		Bio:               m.Bio,
		Coach:             m.Coach,
		CoachBio:          m.CoachBio,
		GeneralManager:    m.GeneralManager,
		GeneralManagerBio: m.GeneralManagerBio,
	}
}
