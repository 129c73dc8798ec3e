package httpapi

import (
	"time"

	"github.com/hoopqueens/boxscore/internal/domain/boxscore"
	"github.com/hoopqueens/boxscore/internal/domain/game"
	"github.com/hoopqueens/boxscore/internal/domain/player"
	"github.com/hoopqueens/boxscore/internal/domain/team"
	"github.com/hoopqueens/boxscore/internal/usecase"
)

type teamDTO struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Abbreviation      string `json:"abbreviation"`
	Bio               string `json:"bio,omitempty"`
	Coach             string `json:"coach,omitempty"`
	CoachBio          string `json:"coach_bio,omitempty"`
	GeneralManager    string `json:"general_manager,omitempty"`
	GeneralManagerBio string `json:"general_manager_bio,omitempty"`
}

func toTeamDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:                t.ID,
		Name:              t.Name,
		Abbreviation:      t.Abbreviation,
		Bio:               t.Bio,
		Coach:             t.Coach,
		CoachBio:          t.CoachBio,
		GeneralManager:    t.GeneralManager,
		GeneralManagerBio: t.GeneralManagerBio,
	}
}

type playerDTO struct {
	ID           int64  `json:"id"`
	TeamID       int64  `json:"team_id"`
	TeamName     string `json:"team_name,omitempty"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	MediaName    string `json:"media_name"`
	JerseyNumber int    `json:"jersey_number"`
	Position     string `json:"position,omitempty"`
	School       string `json:"school,omitempty"`
	BirthDate    string `json:"birth_date,omitempty"`
	Nationality  string `json:"nationality,omitempty"`
}

func toPlayerDTO(p player.Player, teamName string) playerDTO {
	return playerDTO{
		ID:           p.ID,
		TeamID:       p.TeamID,
		TeamName:     teamName,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		MediaName:    p.MediaName,
		JerseyNumber: p.JerseyNumber,
		Position:     p.Position,
		School:       p.School,
		BirthDate:    p.BirthDate,
		Nationality:  p.Nationality,
	}
}

type gameDTO struct {
	ID         int64     `json:"id"`
	GameNumber int       `json:"game_number"`
	Date       time.Time `json:"date"`
	StartTime  time.Time `json:"start_time"`
	Location   string    `json:"location,omitempty"`
	HomeTeam   string    `json:"home_team,omitempty"`
	AwayTeam   string    `json:"away_team,omitempty"`
	Attendance int       `json:"attendance,omitempty"`
}

func toGameDTO(g game.Game) gameDTO {
	return gameDTO{
		ID:         g.ID,
		GameNumber: g.GameNumber,
		Date:       g.Date,
		StartTime:  g.StartTime,
		Location:   g.Location,
		HomeTeam:   g.HomeTeam,
		AwayTeam:   g.AwayTeam,
		Attendance: g.Attendance,
	}
}

type gameBoxScoresDTO struct {
	Game       gameDTO                `json:"game"`
	TeamRows   []boxscore.TeamEntry   `json:"team_box_scores"`
	PlayerRows []boxscore.PlayerEntry `json:"player_box_scores"`
}

type saveResultDTO struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	SnapshotPath string `json:"snapshot_path,omitempty"`
}

func toSaveResultDTO(result usecase.SaveResult) saveResultDTO {
	return saveResultDTO{
		Status:       string(result.Status),
		Message:      result.Message,
		SnapshotPath: result.SnapshotPath,
	}
}

type deleteResultDTO struct {
	TeamRowsDeleted   int    `json:"team_rows_deleted"`
	PlayerRowsDeleted int    `json:"player_rows_deleted"`
	SnapshotPath      string `json:"snapshot_path,omitempty"`
}

type parseResultDTO struct {
	GameData boxscore.GameData `json:"game_data"`
	Warnings []string          `json:"warnings"`
	Issues   []string          `json:"issues"`
}

func toParseResultDTO(result usecase.ParseResult) parseResultDTO {
	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	issues := result.Issues
	if issues == nil {
		issues = []string{}
	}

	return parseResultDTO{GameData: result.Data, Warnings: warnings, Issues: issues}
}
