package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/hoopqueens/boxscore/internal/domain/boxscore"
)

var teamBoxScoreColumns = []string{
	"game_id", "team_id", "team_name", "team_abbreviation", "final_score",
	"field_goals_made", "field_goals_attempted", "field_goal_percentage",
	"three_pointers_made", "three_pointers_attempted", "three_pointer_percentage",
	"free_throws_made", "free_throws_attempted", "free_throw_percentage",
	"offensive_rebounds", "defensive_rebounds", "total_rebounds",
	"assists", "turnovers", "steals", "blocks", "fouls", "fouls_drawn",
	"plus_minus", "efficiency",
	"points_from_turnovers", "biggest_lead", "biggest_run",
	"points_in_paint", "field_goal_in_paint_made", "field_goal_in_paint_attempted",
	"points_in_paint_percentage", "second_chance_points", "points_per_possession",
	"fast_break_points", "fast_break_points_from_turnovers", "bench_points",
	"lead_changes", "times_tied", "time_with_lead",
}

var playerBoxScoreColumns = []string{
	"game_id", "player_id", "team_id", "media_name", "jersey_number", "minutes",
	"field_goals_made", "field_goals_attempted", "field_goal_percentage",
	"three_pointers_made", "three_pointers_attempted", "three_pointer_percentage",
	"free_throws_made", "free_throws_attempted", "free_throw_percentage",
	"offensive_rebounds", "defensive_rebounds", "total_rebounds",
	"assists", "turnovers", "steals", "blocks", "fouls", "fouls_drawn",
	"plus_minus", "efficiency", "points",
}

var (
	insertTeamBoxScoreQuery   = insertQuery("team_box_scores", teamBoxScoreColumns)
	insertPlayerBoxScoreQuery = insertQuery("player_box_scores", playerBoxScoreColumns)
)

func insertQuery(table string, columns []string) string {
	named := make([]string, len(columns))
	for i, column := range columns {
		named[i] = ":" + column
	}

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(named, ", "),
	)
}

type BoxScoreRepository struct {
	db *sqlx.DB
}

func NewBoxScoreRepository(db *sqlx.DB) *BoxScoreRepository {
	return &BoxScoreRepository{db: db}
}

func (r *BoxScoreRepository) ListTeamEntries(ctx context.Context) ([]boxscore.TeamEntry, error) {
	var rows []boxscore.TeamEntry
	err := r.db.SelectContext(ctx, &rows, `SELECT * FROM team_box_scores ORDER BY game_id, team_id`)
	if err != nil {
		return nil, fmt.Errorf("select team box scores: %w", err)
	}

	return rows, nil
}

func (r *BoxScoreRepository) ListPlayerEntries(ctx context.Context) ([]boxscore.PlayerEntry, error) {
	var rows []boxscore.PlayerEntry
	err := r.db.SelectContext(ctx, &rows, `SELECT * FROM player_box_scores ORDER BY game_id, player_id`)
	if err != nil {
		return nil, fmt.Errorf("select player box scores: %w", err)
	}

	return rows, nil
}

func (r *BoxScoreRepository) ListTeamEntriesByGame(ctx context.Context, gameID int64) ([]boxscore.TeamEntry, error) {
	var rows []boxscore.TeamEntry
	err := r.db.SelectContext(ctx, &rows, `SELECT * FROM team_box_scores WHERE game_id = ? ORDER BY team_id`, gameID)
	if err != nil {
		return nil, fmt.Errorf("select team box scores by game: %w", err)
	}

	return rows, nil
}

func (r *BoxScoreRepository) ListPlayerEntriesByGame(ctx context.Context, gameID int64) ([]boxscore.PlayerEntry, error) {
	var rows []boxscore.PlayerEntry
	err := r.db.SelectContext(ctx, &rows, `SELECT * FROM player_box_scores WHERE game_id = ? ORDER BY player_id`, gameID)
	if err != nil {
		return nil, fmt.Errorf("select player box scores by game: %w", err)
	}

	return rows, nil
}

func (r *BoxScoreRepository) GameHasStats(ctx context.Context, gameID int64) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
SELECT (SELECT COUNT(1) FROM team_box_scores WHERE game_id = ?)
     + (SELECT COUNT(1) FROM player_box_scores WHERE game_id = ?)`, gameID, gameID)
	if err != nil {
		return false, fmt.Errorf("count box scores for game: %w", err)
	}

	return count > 0, nil
}

// InsertGameStats writes every row of the package in one transaction.
// The UNIQUE(game_id, team_id) constraint makes a concurrent double
// save fail here instead of producing duplicate rows.
func (r *BoxScoreRepository) InsertGameStats(ctx context.Context, gameID int64, data boxscore.GameData) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert game stats tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, rec := range data.TeamRecords {
		entry := boxscore.TeamEntry{GameID: gameID, TeamRecord: rec}
		if _, err := tx.NamedExecContext(ctx, insertTeamBoxScoreQuery, entry); err != nil {
			return fmt.Errorf("insert team box score (game=%d team=%d): %w", gameID, rec.TeamID, err)
		}
	}

	for _, rec := range data.PlayerRecords {
		entry := boxscore.PlayerEntry{GameID: gameID, PlayerRecord: rec}
		if _, err := tx.NamedExecContext(ctx, insertPlayerBoxScoreQuery, entry); err != nil {
			return fmt.Errorf("insert player box score (game=%d player=%d): %w", gameID, rec.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit game stats: %w", err)
	}

	return nil
}

func (r *BoxScoreRepository) DeleteGameStats(ctx context.Context, gameID int64) (int, int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("begin delete game stats tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	teamResult, err := tx.ExecContext(ctx, `DELETE FROM team_box_scores WHERE game_id = ?`, gameID)
	if err != nil {
		return 0, 0, fmt.Errorf("delete team box scores: %w", err)
	}
	teamRows, err := teamResult.RowsAffected()
	if err != nil {
		return 0, 0, fmt.Errorf("count deleted team box scores: %w", err)
	}

	playerResult, err := tx.ExecContext(ctx, `DELETE FROM player_box_scores WHERE game_id = ?`, gameID)
	if err != nil {
		return 0, 0, fmt.Errorf("delete player box scores: %w", err)
	}
	playerRows, err := playerResult.RowsAffected()
	if err != nil {
		return 0, 0, fmt.Errorf("count deleted player box scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit delete game stats: %w", err)
	}

	return int(teamRows), int(playerRows), nil
}
