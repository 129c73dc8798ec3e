package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hoopqueens/boxscore/internal/domain/player"
)

type PlayerRepository struct {
	mu        sync.RWMutex
	players   map[int64]player.Player
	teamNames map[int64]string
}

func NewPlayerRepository(players []player.Player, teamNames map[int64]string) *PlayerRepository {
	byID := make(map[int64]player.Player, len(players))
	for _, item := range players {
		byID[item.ID] = item
	}
	if teamNames == nil {
		teamNames = map[int64]string{}
	}

	return &PlayerRepository{players: byID, teamNames: teamNames}
}

func (r *PlayerRepository) List(_ context.Context, teamIDs []int64) ([]player.WithTeamName, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var filter map[int64]struct{}
	if len(teamIDs) > 0 {
		filter = make(map[int64]struct{}, len(teamIDs))
		for _, id := range teamIDs {
			filter[id] = struct{}{}
		}
	}

	out := make([]player.WithTeamName, 0, len(r.players))
	for _, item := range r.players {
		if filter != nil {
			if _, ok := filter[item.TeamID]; !ok {
				continue
			}
		}
		out = append(out, player.WithTeamName{Player: item, TeamName: r.teamNames[item.TeamID]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.players[playerID]
	return item, ok, nil
}
