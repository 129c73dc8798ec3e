package usecase

import (
	"context"
	"fmt"

	"github.com/hoopqueens/boxscore/internal/domain/boxscore"
	"github.com/hoopqueens/boxscore/internal/domain/game"
	"github.com/hoopqueens/boxscore/internal/domain/player"
	"github.com/hoopqueens/boxscore/internal/domain/team"
)

// DirectoryService serves the read side of the league database: teams,
// players, games and persisted box-score rows.
type DirectoryService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	gameRepo   game.Repository
	boxRepo    boxscore.Repository
}

func NewDirectoryService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	gameRepo game.Repository,
	boxRepo boxscore.Repository,
) *DirectoryService {
	return &DirectoryService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		boxRepo:    boxRepo,
	}
}

// ListTeams returns teams, optionally filtered to the given IDs.
func (s *DirectoryService) ListTeams(ctx context.Context, teamIDs []int64) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "DirectoryService.ListTeams")
	defer span.End()

	for _, id := range teamIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
		}
	}

	teams, err := s.teamRepo.List(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return teams, nil
}

func (s *DirectoryService) GetTeam(ctx context.Context, teamID int64) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "DirectoryService.GetTeam")
	defer span.End()

	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	return t, nil
}

// ListPlayers returns players with team names, optionally filtered by team.
func (s *DirectoryService) ListPlayers(ctx context.Context, teamIDs []int64) ([]player.WithTeamName, error) {
	ctx, span := startUsecaseSpan(ctx, "DirectoryService.ListPlayers")
	defer span.End()

	for _, id := range teamIDs {
		if id <= 0 {
			return nil, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
		}
	}

	players, err := s.playerRepo.List(ctx, teamIDs)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

func (s *DirectoryService) GetPlayer(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "DirectoryService.GetPlayer")
	defer span.End()

	if playerID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id must be greater than zero", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	return p, nil
}

func (s *DirectoryService) ListGames(ctx context.Context) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "DirectoryService.ListGames")
	defer span.End()

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	return games, nil
}

func (s *DirectoryService) GetGame(ctx context.Context, gameID int64) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "DirectoryService.GetGame")
	defer span.End()

	if gameID <= 0 {
		return game.Game{}, fmt.Errorf("%w: game id must be greater than zero", ErrInvalidInput)
	}

	g, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game=%d", ErrNotFound, gameID)
	}

	return g, nil
}

// ListGamesWithoutStats returns games still waiting for a box score.
func (s *DirectoryService) ListGamesWithoutStats(ctx context.Context) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "DirectoryService.ListGamesWithoutStats")
	defer span.End()

	games, err := s.gameRepo.ListWithoutStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games without stats: %w", err)
	}

	return games, nil
}

func (s *DirectoryService) ListTeamBoxScores(ctx context.Context) ([]boxscore.TeamEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "DirectoryService.ListTeamBoxScores")
	defer span.End()

	entries, err := s.boxRepo.ListTeamEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team box scores: %w", err)
	}

	return entries, nil
}

func (s *DirectoryService) ListPlayerBoxScores(ctx context.Context) ([]boxscore.PlayerEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "DirectoryService.ListPlayerBoxScores")
	defer span.End()

	entries, err := s.boxRepo.ListPlayerEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list player box scores: %w", err)
	}

	return entries, nil
}

// GameBoxScores bundles both sides of one game's persisted stats.
type GameBoxScores struct {
	Game       game.Game
	TeamRows   []boxscore.TeamEntry
	PlayerRows []boxscore.PlayerEntry
}

func (s *DirectoryService) GetGameBoxScores(ctx context.Context, gameID int64) (GameBoxScores, error) {
	ctx, span := startUsecaseSpan(ctx, "DirectoryService.GetGameBoxScores")
	defer span.End()

	g, err := s.GetGame(ctx, gameID)
	if err != nil {
		return GameBoxScores{}, err
	}

	teamRows, err := s.boxRepo.ListTeamEntriesByGame(ctx, gameID)
	if err != nil {
		return GameBoxScores{}, fmt.Errorf("list team box scores by game: %w", err)
	}

	playerRows, err := s.boxRepo.ListPlayerEntriesByGame(ctx, gameID)
	if err != nil {
		return GameBoxScores{}, fmt.Errorf("list player box scores by game: %w", err)
	}

	return GameBoxScores{Game: g, TeamRows: teamRows, PlayerRows: playerRows}, nil
}
