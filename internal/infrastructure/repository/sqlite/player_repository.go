package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/hoopqueens/boxscore/internal/domain/player"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, teamIDs []int64) ([]player.WithTeamName, error) {
	query := `
SELECT p.*, t.name AS team_name
FROM players p
JOIN teams t ON t.id = p.team_id`
	var args []any

	if len(teamIDs) > 0 {
		placeholders := make([]string, len(teamIDs))
		for i, id := range teamIDs {
			placeholders[i] = "?"
			args = append(args, id)
		}
		query += ` WHERE p.team_id IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY p.id`

	var rows []playerWithTeamModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.WithTeamName, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.WithTeamName{Player: row.toDomain(), TeamName: row.TeamName})
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	var row playerTableModel
	err := r.db.GetContext(ctx, &row, `SELECT * FROM players WHERE id = ?`, playerID)
	if isNotFound(err) {
		return player.Player{}, false, nil
	}
	if err != nil {
		return player.Player{}, false, fmt.Errorf("select player by id: %w", err)
	}

	return row.toDomain(), true, nil
}
