package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/hoopqueens/boxscore/internal/domain/boxscore"
	"github.com/hoopqueens/boxscore/internal/domain/game"
	"github.com/hoopqueens/boxscore/internal/domain/player"
	"github.com/hoopqueens/boxscore/internal/domain/team"
)

const (
	defaultLeaderboardLimit = 10
	maxLeaderboardLimit     = 100
	teamLeadersPerCategory  = 5
	defaultRecentGames      = 3
)

// StandingRow is one line of the league table.
type StandingRow struct {
	TeamID           int64   `json:"team_id"`
	TeamName         string  `json:"team_name"`
	GamesPlayed      int     `json:"games_played"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	WinPercentage    float64 `json:"win_percentage"`
	PointsFor        int     `json:"points_for"`
	PointsAgainst    int     `json:"points_against"`
	PointsPerGame    float64 `json:"points_per_game"`
	OppPointsPerGame float64 `json:"opponent_points_per_game"`
	Differential     int     `json:"differential"`
}

// LeaderboardEntry ranks one player on a single statistic.
type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	PlayerID    int64   `json:"player_id"`
	MediaName   string  `json:"media_name"`
	TeamID      int64   `json:"team_id"`
	TeamName    string  `json:"team_name"`
	GamesPlayed int     `json:"games_played"`
	Total       float64 `json:"total"`
	Average     float64 `json:"average"`
}

// CategoryLeaders is a team's top players for one statistic.
type CategoryLeaders struct {
	Stat    boxscore.StatKey   `json:"stat"`
	Leaders []LeaderboardEntry `json:"leaders"`
}

// TeamLeadersReport bundles a team's per-category leaders.
type TeamLeadersReport struct {
	TeamID     int64             `json:"team_id"`
	TeamName   string            `json:"team_name"`
	Categories []CategoryLeaders `json:"categories"`
}

// GameResult is one completed game with final scores.
type GameResult struct {
	GameID     int64     `json:"game_id"`
	GameNumber int       `json:"game_number"`
	Date       time.Time `json:"date"`
	Location   string    `json:"location"`
	WinnerName string    `json:"winner_name"`
	Teams      []GameResultSide `json:"teams"`
}

// GameResultSide is one team's line in a game result.
type GameResultSide struct {
	TeamID     int64  `json:"team_id"`
	TeamName   string `json:"team_name"`
	FinalScore int    `json:"final_score"`
}

// Performance is one player line from a recent game.
type Performance struct {
	GameID        int64     `json:"game_id"`
	GameNumber    int       `json:"game_number"`
	Date          time.Time `json:"date"`
	PlayerID      int64     `json:"player_id"`
	MediaName     string    `json:"media_name"`
	TeamID        int64     `json:"team_id"`
	TeamName      string    `json:"team_name"`
	Points        int       `json:"points"`
	TotalRebounds int       `json:"total_rebounds"`
	Assists       int       `json:"assists"`
	Minutes       float64   `json:"minutes"`
	Efficiency    int       `json:"efficiency"`
}

// Summary is the at-a-glance state of the whole database.
type Summary struct {
	Teams             int `json:"teams"`
	Players           int `json:"players"`
	Games             int `json:"games"`
	GamesWithStats    int `json:"games_with_stats"`
	GamesWithoutStats int `json:"games_without_stats"`
	TeamBoxScores     int `json:"team_box_scores"`
	PlayerBoxScores   int `json:"player_box_scores"`
}

// ReportService derives league tables and leaderboards from persisted
// box-score rows. Everything is computed on read; row counts stay small
// enough that precomputation would buy nothing.
type ReportService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	gameRepo   game.Repository
	boxRepo    boxscore.Repository
}

func NewReportService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	gameRepo game.Repository,
	boxRepo boxscore.Repository,
) *ReportService {
	return &ReportService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		boxRepo:    boxRepo,
	}
}

// Standings builds the league table from team entries. Only games with
// both sides recorded count; a half-recorded game would skew every
// column. Sorted by win percentage, then point differential.
func (s *ReportService) Standings(ctx context.Context) ([]StandingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "ReportService.Standings")
	defer span.End()

	entries, err := s.boxRepo.ListTeamEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team box scores: %w", err)
	}

	byGame := make(map[int64][]boxscore.TeamEntry)
	for _, entry := range entries {
		byGame[entry.GameID] = append(byGame[entry.GameID], entry)
	}

	rows := make(map[int64]*StandingRow)
	for _, sides := range byGame {
		if len(sides) != 2 {
			continue
		}
		for i, side := range sides {
			opp := sides[1-i]
			row, ok := rows[side.TeamID]
			if !ok {
				row = &StandingRow{TeamID: side.TeamID, TeamName: side.TeamName}
				rows[side.TeamID] = row
			}
			row.GamesPlayed++
			row.PointsFor += side.FinalScore
			row.PointsAgainst += opp.FinalScore
			if side.FinalScore > opp.FinalScore {
				row.Wins++
			} else {
				row.Losses++
			}
		}
	}

	out := make([]StandingRow, 0, len(rows))
	for _, row := range rows {
		if row.GamesPlayed > 0 {
			row.WinPercentage = float64(row.Wins) / float64(row.GamesPlayed)
			row.PointsPerGame = float64(row.PointsFor) / float64(row.GamesPlayed)
			row.OppPointsPerGame = float64(row.PointsAgainst) / float64(row.GamesPlayed)
		}
		row.Differential = row.PointsFor - row.PointsAgainst
		out = append(out, *row)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].WinPercentage != out[j].WinPercentage {
			return out[i].WinPercentage > out[j].WinPercentage
		}
		if out[i].Differential != out[j].Differential {
			return out[i].Differential > out[j].Differential
		}
		return out[i].TeamName < out[j].TeamName
	})

	return out, nil
}

// Leaderboard ranks players by per-game average of one statistic.
// minGames excludes small samples; zero means no minimum.
func (s *ReportService) Leaderboard(ctx context.Context, stat boxscore.StatKey, minGames, limit int) ([]LeaderboardEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "ReportService.Leaderboard")
	defer span.End()

	if !stat.Valid() {
		return nil, fmt.Errorf("%w: unknown stat %q, valid stats are %v", ErrInvalidInput, stat, boxscore.StatKeys())
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	entries, err := s.boxRepo.ListPlayerEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list player box scores: %w", err)
	}

	teamNames, err := s.teamNames(ctx)
	if err != nil {
		return nil, err
	}

	board := rankPlayers(entries, stat, teamNames)
	if minGames > 0 {
		filtered := board[:0]
		for _, entry := range board {
			if entry.GamesPlayed >= minGames {
				filtered = append(filtered, entry)
			}
		}
		board = filtered
		for i := range board {
			board[i].Rank = i + 1
		}
	}
	if len(board) > limit {
		board = board[:limit]
	}

	return board, nil
}

// TeamLeaders reports a team's top five players in the headline
// categories.
func (s *ReportService) TeamLeaders(ctx context.Context, teamID int64) (TeamLeadersReport, error) {
	ctx, span := startUsecaseSpan(ctx, "ReportService.TeamLeaders")
	defer span.End()

	if teamID <= 0 {
		return TeamLeadersReport{}, fmt.Errorf("%w: team id must be greater than zero", ErrInvalidInput)
	}

	t, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return TeamLeadersReport{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return TeamLeadersReport{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	entries, err := s.boxRepo.ListPlayerEntries(ctx)
	if err != nil {
		return TeamLeadersReport{}, fmt.Errorf("list player box scores: %w", err)
	}

	var teamEntries []boxscore.PlayerEntry
	for _, entry := range entries {
		if entry.TeamID == teamID {
			teamEntries = append(teamEntries, entry)
		}
	}

	names := map[int64]string{teamID: t.Name}
	categories := []boxscore.StatKey{
		boxscore.StatPoints,
		boxscore.StatTotalRebounds,
		boxscore.StatAssists,
		boxscore.StatSteals,
		boxscore.StatBlocks,
	}

	report := TeamLeadersReport{TeamID: teamID, TeamName: t.Name}
	for _, stat := range categories {
		board := rankPlayers(teamEntries, stat, names)
		if len(board) > teamLeadersPerCategory {
			board = board[:teamLeadersPerCategory]
		}
		report.Categories = append(report.Categories, CategoryLeaders{Stat: stat, Leaders: board})
	}

	return report, nil
}

// GameResults lists completed games newest first.
func (s *ReportService) GameResults(ctx context.Context) ([]GameResult, error) {
	ctx, span := startUsecaseSpan(ctx, "ReportService.GameResults")
	defer span.End()

	games, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	entries, err := s.boxRepo.ListTeamEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list team box scores: %w", err)
	}

	byGame := make(map[int64][]boxscore.TeamEntry)
	for _, entry := range entries {
		byGame[entry.GameID] = append(byGame[entry.GameID], entry)
	}

	var results []GameResult
	for _, g := range games {
		sides := byGame[g.ID]
		if len(sides) != 2 {
			continue
		}

		result := GameResult{
			GameID:     g.ID,
			GameNumber: g.GameNumber,
			Date:       g.Date,
			Location:   g.Location,
		}
		winner := sides[0]
		for _, side := range sides {
			result.Teams = append(result.Teams, GameResultSide{
				TeamID:     side.TeamID,
				TeamName:   side.TeamName,
				FinalScore: side.FinalScore,
			})
			if side.FinalScore > winner.FinalScore {
				winner = side
			}
		}
		result.WinnerName = winner.TeamName
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		if !results[i].Date.Equal(results[j].Date) {
			return results[i].Date.After(results[j].Date)
		}
		return results[i].GameNumber > results[j].GameNumber
	})

	return results, nil
}

// RecentPerformances flattens the player lines from the most recent
// completed games, best scorers first within each game.
func (s *ReportService) RecentPerformances(ctx context.Context, gameCount int) ([]Performance, error) {
	ctx, span := startUsecaseSpan(ctx, "ReportService.RecentPerformances")
	defer span.End()

	if gameCount <= 0 {
		gameCount = defaultRecentGames
	}

	results, err := s.GameResults(ctx)
	if err != nil {
		return nil, err
	}
	if len(results) > gameCount {
		results = results[:gameCount]
	}

	teamNames, err := s.teamNames(ctx)
	if err != nil {
		return nil, err
	}

	var performances []Performance
	for _, result := range results {
		entries, err := s.boxRepo.ListPlayerEntriesByGame(ctx, result.GameID)
		if err != nil {
			return nil, fmt.Errorf("list player box scores by game: %w", err)
		}

		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Points != entries[j].Points {
				return entries[i].Points > entries[j].Points
			}
			return entries[i].PlayerID < entries[j].PlayerID
		})

		for _, entry := range entries {
			if entry.Minutes <= 0 {
				continue
			}
			performances = append(performances, Performance{
				GameID:        result.GameID,
				GameNumber:    result.GameNumber,
				Date:          result.Date,
				PlayerID:      entry.PlayerID,
				MediaName:     entry.MediaName,
				TeamID:        entry.TeamID,
				TeamName:      teamNames[entry.TeamID],
				Points:        entry.Points,
				TotalRebounds: entry.TotalRebounds,
				Assists:       entry.Assists,
				Minutes:       entry.Minutes,
				Efficiency:    entry.Efficiency,
			})
		}
	}

	return performances, nil
}

// Summarize gathers database counts, fanning the independent reads out
// concurrently.
func (s *ReportService) Summarize(ctx context.Context) (Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "ReportService.Summarize")
	defer span.End()

	var summary Summary

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		teams, err := s.teamRepo.List(ctx, nil)
		if err != nil {
			return fmt.Errorf("list teams: %w", err)
		}
		summary.Teams = len(teams)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		players, err := s.playerRepo.List(ctx, nil)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		summary.Players = len(players)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		games, err := s.gameRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count games: %w", err)
		}
		withStats, err := s.gameRepo.CountWithStats(ctx)
		if err != nil {
			return fmt.Errorf("count games with stats: %w", err)
		}
		summary.Games = games
		summary.GamesWithStats = withStats
		summary.GamesWithoutStats = games - withStats
		return nil
	})
	p.Go(func(ctx context.Context) error {
		entries, err := s.boxRepo.ListTeamEntries(ctx)
		if err != nil {
			return fmt.Errorf("list team box scores: %w", err)
		}
		summary.TeamBoxScores = len(entries)
		return nil
	})
	p.Go(func(ctx context.Context) error {
		entries, err := s.boxRepo.ListPlayerEntries(ctx)
		if err != nil {
			return fmt.Errorf("list player box scores: %w", err)
		}
		summary.PlayerBoxScores = len(entries)
		return nil
	})

	if err := p.Wait(); err != nil {
		return Summary{}, err
	}

	return summary, nil
}

func (s *ReportService) teamNames(ctx context.Context) (map[int64]string, error) {
	teams, err := s.teamRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	names := make(map[int64]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}

	return names, nil
}

func rankPlayers(entries []boxscore.PlayerEntry, stat boxscore.StatKey, teamNames map[int64]string) []LeaderboardEntry {
	type aggregate struct {
		entry LeaderboardEntry
	}

	byPlayer := make(map[int64]*aggregate)
	for _, e := range entries {
		agg, ok := byPlayer[e.PlayerID]
		if !ok {
			agg = &aggregate{entry: LeaderboardEntry{
				PlayerID:  e.PlayerID,
				MediaName: e.MediaName,
				TeamID:    e.TeamID,
				TeamName:  teamNames[e.TeamID],
			}}
			byPlayer[e.PlayerID] = agg
		}
		agg.entry.GamesPlayed++
		agg.entry.Total += stat.Value(e.PlayerRecord)
	}

	board := make([]LeaderboardEntry, 0, len(byPlayer))
	for _, agg := range byPlayer {
		if agg.entry.GamesPlayed > 0 {
			agg.entry.Average = agg.entry.Total / float64(agg.entry.GamesPlayed)
		}
		board = append(board, agg.entry)
	}

	sort.Slice(board, func(i, j int) bool {
		if board[i].Average != board[j].Average {
			return board[i].Average > board[j].Average
		}
		if board[i].Total != board[j].Total {
			return board[i].Total > board[j].Total
		}
		return board[i].PlayerID < board[j].PlayerID
	})

	for i := range board {
		board[i].Rank = i + 1
	}

	return board
}
