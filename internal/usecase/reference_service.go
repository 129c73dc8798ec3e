package usecase

import (
	"context"
	"fmt"

	"github.com/hoopqueens/boxscore/internal/domain/player"
	"github.com/hoopqueens/boxscore/internal/domain/team"
)

// PlayerRef is the slice of a player the reconciler needs: who the
// document should call them and which side they play for.
type PlayerRef struct {
	MediaName string
	TeamID    int64
}

// Reference is the known universe of teams and players loaded fresh for
// each extraction, so a roster edit is picked up on the next upload.
type Reference struct {
	Teams   []team.Team
	Players []player.WithTeamName

	TeamIDs   map[int64]struct{}
	PlayerRef map[int64]PlayerRef
}

type ReferenceService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewReferenceService(teamRepo team.Repository, playerRepo player.Repository) *ReferenceService {
	return &ReferenceService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

// Load pulls the full reference set. An empty reference database cannot
// anchor an extraction, so it is reported as a configuration problem.
func (s *ReferenceService) Load(ctx context.Context) (Reference, error) {
	ctx, span := startUsecaseSpan(ctx, "ReferenceService.Load")
	defer span.End()

	teams, err := s.teamRepo.List(ctx, nil)
	if err != nil {
		return Reference{}, fmt.Errorf("list teams: %w", err)
	}
	if len(teams) == 0 {
		return Reference{}, fmt.Errorf("%w: reference database has no teams", ErrConfiguration)
	}

	players, err := s.playerRepo.List(ctx, nil)
	if err != nil {
		return Reference{}, fmt.Errorf("list players: %w", err)
	}
	if len(players) == 0 {
		return Reference{}, fmt.Errorf("%w: reference database has no players", ErrConfiguration)
	}

	ref := Reference{
		Teams:     teams,
		Players:   players,
		TeamIDs:   make(map[int64]struct{}, len(teams)),
		PlayerRef: make(map[int64]PlayerRef, len(players)),
	}
	for _, t := range teams {
		ref.TeamIDs[t.ID] = struct{}{}
	}
	for _, p := range players {
		ref.PlayerRef[p.ID] = PlayerRef{MediaName: p.MediaName, TeamID: p.TeamID}
	}

	return ref, nil
}
