package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hoopqueens/boxscore/internal/domain/game"
)

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) List(ctx context.Context) ([]game.Game, error) {
	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM games ORDER BY id`); err != nil {
		return nil, fmt.Errorf("select games: %w", err)
	}

	return toDomainGames(rows)
}

func (r *GameRepository) GetByID(ctx context.Context, gameID int64) (game.Game, bool, error) {
	var row gameTableModel
	err := r.db.GetContext(ctx, &row, `SELECT * FROM games WHERE id = ?`, gameID)
	if isNotFound(err) {
		return game.Game{}, false, nil
	}
	if err != nil {
		return game.Game{}, false, fmt.Errorf("select game by id: %w", err)
	}

	out, err := row.toDomain()
	if err != nil {
		return game.Game{}, false, err
	}

	return out, true, nil
}

func (r *GameRepository) ListWithoutStats(ctx context.Context) ([]game.Game, error) {
	var rows []gameTableModel
	err := r.db.SelectContext(ctx, &rows, `
SELECT g.* FROM games g
WHERE NOT EXISTS (SELECT 1 FROM team_box_scores b WHERE b.game_id = g.id)
  AND NOT EXISTS (SELECT 1 FROM player_box_scores b WHERE b.game_id = g.id)
ORDER BY g.id`)
	if err != nil {
		return nil, fmt.Errorf("select games without stats: %w", err)
	}

	return toDomainGames(rows)
}

func (r *GameRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM games`); err != nil {
		return 0, fmt.Errorf("count games: %w", err)
	}

	return count, nil
}

func (r *GameRepository) CountWithStats(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
SELECT COUNT(1) FROM games g
WHERE EXISTS (SELECT 1 FROM team_box_scores b WHERE b.game_id = g.id)
   OR EXISTS (SELECT 1 FROM player_box_scores b WHERE b.game_id = g.id)`)
	if err != nil {
		return 0, fmt.Errorf("count games with stats: %w", err)
	}

	return count, nil
}

func toDomainGames(rows []gameTableModel) ([]game.Game, error) {
	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}
