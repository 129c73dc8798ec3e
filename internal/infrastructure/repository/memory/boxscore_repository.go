package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hoopqueens/boxscore/internal/domain/boxscore"
)

type BoxScoreRepository struct {
	mu          sync.RWMutex
	teamRows    map[int64][]boxscore.TeamEntry
	playerRows  map[int64][]boxscore.PlayerEntry
	gamesSorted []int64
}

func NewBoxScoreRepository() *BoxScoreRepository {
	return &BoxScoreRepository{
		teamRows:   make(map[int64][]boxscore.TeamEntry),
		playerRows: make(map[int64][]boxscore.PlayerEntry),
	}
}

func (r *BoxScoreRepository) ListTeamEntries(_ context.Context) ([]boxscore.TeamEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []boxscore.TeamEntry
	for _, gameID := range r.gamesSorted {
		out = append(out, r.teamRows[gameID]...)
	}

	return out, nil
}

func (r *BoxScoreRepository) ListPlayerEntries(_ context.Context) ([]boxscore.PlayerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []boxscore.PlayerEntry
	for _, gameID := range r.gamesSorted {
		out = append(out, r.playerRows[gameID]...)
	}

	return out, nil
}

func (r *BoxScoreRepository) ListTeamEntriesByGame(_ context.Context, gameID int64) ([]boxscore.TeamEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.teamRows[gameID]
	out := make([]boxscore.TeamEntry, 0, len(rows))
	out = append(out, rows...)

	return out, nil
}

func (r *BoxScoreRepository) ListPlayerEntriesByGame(_ context.Context, gameID int64) ([]boxscore.PlayerEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.playerRows[gameID]
	out := make([]boxscore.PlayerEntry, 0, len(rows))
	out = append(out, rows...)

	return out, nil
}

func (r *BoxScoreRepository) GameHasStats(_ context.Context, gameID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.teamRows[gameID]) > 0 || len(r.playerRows[gameID]) > 0, nil
}

func (r *BoxScoreRepository) InsertGameStats(_ context.Context, gameID int64, data boxscore.GameData) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	teamRows := make([]boxscore.TeamEntry, 0, len(data.TeamRecords))
	for _, rec := range data.TeamRecords {
		teamRows = append(teamRows, boxscore.TeamEntry{GameID: gameID, TeamRecord: rec})
	}
	playerRows := make([]boxscore.PlayerEntry, 0, len(data.PlayerRecords))
	for _, rec := range data.PlayerRecords {
		playerRows = append(playerRows, boxscore.PlayerEntry{GameID: gameID, PlayerRecord: rec})
	}

	if _, exists := r.teamRows[gameID]; !exists {
		if _, hasPlayers := r.playerRows[gameID]; !hasPlayers {
			r.gamesSorted = append(r.gamesSorted, gameID)
			sort.Slice(r.gamesSorted, func(i, j int) bool { return r.gamesSorted[i] < r.gamesSorted[j] })
		}
	}
	r.teamRows[gameID] = teamRows
	r.playerRows[gameID] = playerRows

	return nil
}

func (r *BoxScoreRepository) DeleteGameStats(_ context.Context, gameID int64) (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	teamRows := len(r.teamRows[gameID])
	playerRows := len(r.playerRows[gameID])
	delete(r.teamRows, gameID)
	delete(r.playerRows, gameID)

	for i, id := range r.gamesSorted {
		if id == gameID {
			r.gamesSorted = append(r.gamesSorted[:i], r.gamesSorted[i+1:]...)
			break
		}
	}

	return teamRows, playerRows, nil
}
