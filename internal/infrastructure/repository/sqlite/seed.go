package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hoopqueens/boxscore/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the reference set into an empty store. A store
// with any team already present is left alone.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM teams`); err != nil {
		return fmt.Errorf("count teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (id, name, abbreviation, bio, coach, coach_bio, general_manager, general_manager_bio)
VALUES (:id, :name, :abbreviation, :bio, :coach, :coach_bio, :general_manager, :general_manager_bio)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":                  t.ID,
			"name":                t.Name,
			"abbreviation":        t.Abbreviation,
			"bio":                 t.Bio,
			"coach":               t.Coach,
			"coach_bio":           t.CoachBio,
			"general_manager":     t.GeneralManager,
			"general_manager_bio": t.GeneralManagerBio,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %d query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %d: %w", t.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (id, team_id, first_name, last_name, media_name, jersey_number, position, school, birth_date, nationality)
VALUES (:id, :team_id, :first_name, :last_name, :media_name, :jersey_number, :position, :school, :birth_date, :nationality)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":            p.ID,
			"team_id":       p.TeamID,
			"first_name":    p.FirstName,
			"last_name":     p.LastName,
			"media_name":    p.MediaName,
			"jersey_number": p.JerseyNumber,
			"position":      p.Position,
			"school":        p.School,
			"birth_date":    p.BirthDate,
			"nationality":   p.Nationality,
		})
		if err != nil {
			return fmt.Errorf("bind seed player %d query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %d: %w", p.ID, err)
		}
	}

	for _, g := range memory.SeedGames() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO games (id, game_number, date, start_time, location, home_team, away_team, attendance)
VALUES (:id, :game_number, :date, :start_time, :location, :home_team, :away_team, :attendance)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":          g.ID,
			"game_number": g.GameNumber,
			"date":        g.Date.Format(time.RFC3339),
			"start_time":  g.StartTime.Format(time.RFC3339),
			"location":    g.Location,
			"home_team":   g.HomeTeam,
			"away_team":   g.AwayTeam,
			"attendance":  g.Attendance,
		})
		if err != nil {
			return fmt.Errorf("bind seed game %d query: %w", g.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed game %d: %w", g.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bootstrap seed: %w", err)
	}

	return nil
}
