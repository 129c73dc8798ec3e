package game

import (
	"fmt"
	"time"
)

// Game is one scheduled or completed fixture in the season.
type Game struct {
	ID         int64
	GameNumber int
	Date       time.Time
	StartTime  time.Time
	Location   string
	HomeTeam   string
	AwayTeam   string
	Attendance int
}

func (g Game) Validate() error {
	if g.ID <= 0 {
		return fmt.Errorf("game id must be greater than zero")
	}
	if g.GameNumber <= 0 {
		return fmt.Errorf("game number must be greater than zero")
	}
	if g.Date.IsZero() {
		return fmt.Errorf("game date is required")
	}

	return nil
}
