package player

import "fmt"

// Player is an athlete on a team roster. MediaName is the canonical
// "LastInitial. FirstName" short form box-score documents print, and is
// the key used to match a person across documents and the reference set.
type Player struct {
	ID           int64
	TeamID       int64
	FirstName    string
	LastName     string
	MediaName    string
	JerseyNumber int
	Position     string
	School       string
	BirthDate    string
	Nationality  string
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id must be greater than zero")
	}
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("player first and last name are required")
	}
	if p.MediaName == "" {
		return fmt.Errorf("player media name is required")
	}

	return nil
}

// WithTeamName pairs a player with the display name of its team for
// prompt rendering and listings.
type WithTeamName struct {
	Player
	TeamName string
}
