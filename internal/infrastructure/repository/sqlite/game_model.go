package sqlite

import (
	"fmt"
	"time"

	"github.com/hoopqueens/boxscore/internal/domain/game"
)

// Dates travel as RFC 3339 text; sqlite has no native date type.
type gameTableModel struct {
	ID         int64  `db:"id"`
	GameNumber int    `db:"game_number"`
	Date       string `db:"date"`
	StartTime  string `db:"start_time"`
	Location   string `db:"location"`
	HomeTeam   string `db:"home_team"`
	AwayTeam   string `db:"away_team"`
	Attendance int    `db:"attendance"`
}

func (m gameTableModel) toDomain() (game.Game, error) {
	date, err := time.Parse(time.RFC3339, m.Date)
	if err != nil {
		return game.Game{}, fmt.Errorf("parse game %d date %q: %w", m.ID, m.Date, err)
	}

	var startTime time.Time
	if m.StartTime != "" {
		startTime, err = time.Parse(time.RFC3339, m.StartTime)
		if err != nil {
			return game.Game{}, fmt.Errorf("parse game %d start time %q: %w", m.ID, m.StartTime, err)
		}
	}

	return game.Game{
		ID:         m.ID,
		GameNumber: m.GameNumber,
		Date:       date,
		StartTime:  startTime,
		Location:   m.Location,
		HomeTeam:   m.HomeTeam,
		AwayTeam:   m.AwayTeam,
		Attendance: m.Attendance,
	}, nil
}
