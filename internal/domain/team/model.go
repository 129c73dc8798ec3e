package team

import "fmt"

// Team is a club in the league reference set.
type Team struct {
	ID                int64
	Name              string
	Abbreviation      string
	Bio               string
	Coach             string
	CoachBio          string
	GeneralManager    string
	GeneralManagerBio string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id must be greater than zero")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Abbreviation == "" {
		return fmt.Errorf("team abbreviation is required")
	}

	return nil
}
