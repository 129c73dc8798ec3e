package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hoopqueens/boxscore/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams map[int64]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	byID := make(map[int64]team.Team, len(teams))
	for _, item := range teams {
		byID[item.ID] = item
	}

	return &TeamRepository{teams: byID}
}

func (r *TeamRepository) List(_ context.Context, teamIDs []int64) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var filter map[int64]struct{}
	if len(teamIDs) > 0 {
		filter = make(map[int64]struct{}, len(teamIDs))
		for _, id := range teamIDs {
			filter[id] = struct{}{}
		}
	}

	out := make([]team.Team, 0, len(r.teams))
	for _, item := range r.teams {
		if filter != nil {
			if _, ok := filter[item.ID]; !ok {
				continue
			}
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.teams[teamID]
	return item, ok, nil
}
