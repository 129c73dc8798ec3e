package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/hoopqueens/boxscore/internal/domain/team"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context, teamIDs []int64) ([]team.Team, error) {
	query := `SELECT * FROM teams`
	var args []any

	if len(teamIDs) > 0 {
		placeholders := make([]string, len(teamIDs))
		for i, id := range teamIDs {
			placeholders[i] = "?"
			args = append(args, id)
		}
		query += ` WHERE id IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY id`

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID int64) (team.Team, bool, error) {
	var row teamTableModel
	err := r.db.GetContext(ctx, &row, `SELECT * FROM teams WHERE id = ?`, teamID)
	if isNotFound(err) {
		return team.Team{}, false, nil
	}
	if err != nil {
		return team.Team{}, false, fmt.Errorf("select team by id: %w", err)
	}

	return row.toDomain(), true, nil
}
