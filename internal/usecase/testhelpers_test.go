package usecase

import (
	"context"

	"github.com/hoopqueens/boxscore/internal/domain/boxscore"
	"github.com/hoopqueens/boxscore/internal/infrastructure/repository/memory"
	"github.com/hoopqueens/boxscore/internal/platform/logging"
)

type testRepos struct {
	teams    *memory.TeamRepository
	players  *memory.PlayerRepository
	games    *memory.GameRepository
	box      *memory.BoxScoreRepository
	refSvc   *ReferenceService
	snapshot *fakeSnapshotter
}

func newTestRepos() *testRepos {
	box := memory.NewBoxScoreRepository()
	repos := &testRepos{
		teams:    memory.NewTeamRepository(memory.SeedTeams()),
		players:  memory.NewPlayerRepository(memory.SeedPlayers(), memory.SeedTeamNames()),
		games:    memory.NewGameRepository(memory.SeedGames(), box),
		box:      box,
		snapshot: &fakeSnapshotter{path: "snapshots/test.db"},
	}
	repos.refSvc = NewReferenceService(repos.teams, repos.players)
	return repos
}

func (r *testRepos) statsEntry() *StatsEntryService {
	return NewStatsEntryService(r.games, r.box, r.refSvc, r.snapshot, logging.NewNop())
}

func (r *testRepos) reports() *ReportService {
	return NewReportService(r.teams, r.players, r.games, r.box)
}

func (r *testRepos) directory() *DirectoryService {
	return NewDirectoryService(r.teams, r.players, r.games, r.box)
}

type fakeSnapshotter struct {
	path  string
	calls int
	err   error
}

func (f *fakeSnapshotter) Take(context.Context) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.path, nil
}

// sampleGameData builds a consistent two-sided package: player points
// sum to the team final scores and every ID matches the seed.
func sampleGameData() boxscore.GameData {
	return boxscore.GameData{
		TeamRecords: []boxscore.TeamRecord{
			{
				TeamID: 1, TeamName: "Metro Hawks", TeamAbbreviation: "MH", FinalScore: 81,
				FieldGoalPercentage: 0.473, ThreePointerPercentage: 0.355, FreeThrowPercentage: 0.81,
				TotalRebounds: 38, Assists: 19, Turnovers: 12, Steals: 7, Blocks: 4,
			},
			{
				TeamID: 2, TeamName: "Bay Flames", TeamAbbreviation: "BF", FinalScore: 77,
				FieldGoalPercentage: 0.441, ThreePointerPercentage: 0.298, FreeThrowPercentage: 0.74,
				TotalRebounds: 35, Assists: 17, Turnovers: 14, Steals: 5, Blocks: 6,
			},
		},
		PlayerRecords: []boxscore.PlayerRecord{
			{PlayerID: 101, TeamID: 1, MediaName: "V. Chelsea", Minutes: 34.5, Points: 24, TotalRebounds: 6, Assists: 7, Efficiency: 28, FieldGoalPercentage: 0.52},
			{PlayerID: 102, TeamID: 1, MediaName: "D. Amara", Minutes: 31.0, Points: 18, TotalRebounds: 4, Assists: 5, Efficiency: 19, FieldGoalPercentage: 0.47},
			{PlayerID: 103, TeamID: 1, MediaName: "H. Noor", Minutes: 28.5, Points: 15, TotalRebounds: 8, Assists: 2, Efficiency: 17, FieldGoalPercentage: 0.44},
			{PlayerID: 104, TeamID: 1, MediaName: "R. Priya", Minutes: 26.0, Points: 14, TotalRebounds: 9, Assists: 1, Efficiency: 16, FieldGoalPercentage: 0.5},
			{PlayerID: 105, TeamID: 1, MediaName: "I. Sofia", Minutes: 24.0, Points: 10, TotalRebounds: 11, Assists: 1, Efficiency: 15, FieldGoalPercentage: 0.45, PlusMinus: -3},
			{PlayerID: 201, TeamID: 2, MediaName: "F. Lena", Minutes: 35.0, Points: 20, TotalRebounds: 3, Assists: 6, Efficiency: 21, FieldGoalPercentage: 0.48},
			{PlayerID: 202, TeamID: 2, MediaName: "A. Tola", Minutes: 33.0, Points: 19, TotalRebounds: 5, Assists: 4, Efficiency: 18, FieldGoalPercentage: 0.46},
			{PlayerID: 203, TeamID: 2, MediaName: "S. Hana", Minutes: 27.5, Points: 14, TotalRebounds: 7, Assists: 3, Efficiency: 14, FieldGoalPercentage: 0.42},
			{PlayerID: 204, TeamID: 2, MediaName: "L. Greta", Minutes: 25.0, Points: 13, TotalRebounds: 6, Assists: 2, Efficiency: 12, FieldGoalPercentage: 0.41},
			{PlayerID: 205, TeamID: 2, MediaName: "M. Bisa", Minutes: 22.0, Points: 11, TotalRebounds: 10, Assists: 1, Efficiency: 16, FieldGoalPercentage: 0.55, PlusMinus: -5},
		},
	}
}
