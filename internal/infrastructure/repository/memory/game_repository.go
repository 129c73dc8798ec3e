package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hoopqueens/boxscore/internal/domain/game"
)

// statsChecker is what a game repository needs from the box-score side
// to answer "which games still lack stats".
type statsChecker interface {
	GameHasStats(ctx context.Context, gameID int64) (bool, error)
}

type GameRepository struct {
	mu    sync.RWMutex
	games map[int64]game.Game
	stats statsChecker
}

func NewGameRepository(games []game.Game, stats statsChecker) *GameRepository {
	byID := make(map[int64]game.Game, len(games))
	for _, item := range games {
		byID[item.ID] = item
	}

	return &GameRepository{games: byID, stats: stats}
}

func (r *GameRepository) List(_ context.Context) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, len(r.games))
	for _, item := range r.games {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *GameRepository) GetByID(_ context.Context, gameID int64) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.games[gameID]
	return item, ok, nil
}

func (r *GameRepository) ListWithoutStats(ctx context.Context) ([]game.Game, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]game.Game, 0, len(all))
	for _, item := range all {
		has, err := r.stats.GameHasStats(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		if !has {
			out = append(out, item)
		}
	}

	return out, nil
}

func (r *GameRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.games), nil
}

func (r *GameRepository) CountWithStats(ctx context.Context) (int, error) {
	all, err := r.List(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, item := range all {
		has, err := r.stats.GameHasStats(ctx, item.ID)
		if err != nil {
			return 0, err
		}
		if has {
			count++
		}
	}

	return count, nil
}
