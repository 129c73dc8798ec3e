package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopqueens/boxscore/internal/domain/boxscore"
)

// secondGameData is the rematch: Bay Flames win 88-70.
func secondGameData() boxscore.GameData {
	data := sampleGameData()
	data.TeamRecords[0].FinalScore = 70
	data.TeamRecords[1].FinalScore = 88

	scores := map[int64]int{
		101: 14, 102: 16, 103: 13, 104: 12, 105: 15,
		201: 24, 202: 21, 203: 16, 204: 15, 205: 12,
	}
	for i := range data.PlayerRecords {
		data.PlayerRecords[i].Points = scores[data.PlayerRecords[i].PlayerID]
	}

	return data
}

func seedTwoGames(t *testing.T) *testRepos {
	t.Helper()

	repos := newTestRepos()
	svc := repos.statsEntry()

	_, err := svc.Save(context.Background(), 1, sampleGameData())
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), 2, secondGameData())
	require.NoError(t, err)

	return repos
}

func TestReportService_Standings(t *testing.T) {
	repos := seedTwoGames(t)

	rows, err := repos.reports().Standings(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	for _, row := range rows {
		assert.Equal(t, 2, row.GamesPlayed)
		assert.Equal(t, 1, row.Wins)
		assert.Equal(t, 1, row.Losses)
		assert.InDelta(t, 0.5, row.WinPercentage, 1e-9)
		assert.Equal(t, row.PointsFor-row.PointsAgainst, row.Differential)
	}

	// Tied on percentage, so differential decides the order.
	assert.GreaterOrEqual(t, rows[0].Differential, rows[1].Differential)
}

func TestReportService_StandingsIgnoresHalfRecordedGames(t *testing.T) {
	repos := newTestRepos()

	one := sampleGameData()
	err := repos.box.InsertGameStats(context.Background(), 3, boxscore.GameData{
		TeamRecords:   one.TeamRecords[:1],
		PlayerRecords: one.PlayerRecords[:5],
	})
	require.NoError(t, err)

	rows, err := repos.reports().Standings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReportService_Leaderboard(t *testing.T) {
	repos := seedTwoGames(t)
	svc := repos.reports()

	t.Run("ranks by per-game average", func(t *testing.T) {
		board, err := svc.Leaderboard(context.Background(), boxscore.StatPoints, 0, 5)
		require.NoError(t, err)
		require.Len(t, board, 5)

		assert.Equal(t, 1, board[0].Rank)
		for i := 1; i < len(board); i++ {
			assert.GreaterOrEqual(t, board[i-1].Average, board[i].Average)
		}
		assert.Equal(t, 2, board[0].GamesPlayed)
		assert.NotEmpty(t, board[0].TeamName)
	})

	t.Run("supports every stat key", func(t *testing.T) {
		for _, key := range boxscore.StatKeys() {
			_, err := svc.Leaderboard(context.Background(), key, 0, 3)
			require.NoError(t, err, "stat %s", key)
		}
	})

	t.Run("rejects unknown stat", func(t *testing.T) {
		_, err := svc.Leaderboard(context.Background(), "dunks", 0, 5)
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "points")
	})

	t.Run("defaults the limit", func(t *testing.T) {
		board, err := svc.Leaderboard(context.Background(), boxscore.StatAssists, 0, 0)
		require.NoError(t, err)
		assert.Len(t, board, 10)
	})

	t.Run("min games filters small samples", func(t *testing.T) {
		board, err := svc.Leaderboard(context.Background(), boxscore.StatPoints, 2, 100)
		require.NoError(t, err)
		require.NotEmpty(t, board)
		for i, entry := range board {
			assert.GreaterOrEqual(t, entry.GamesPlayed, 2)
			assert.Equal(t, i+1, entry.Rank)
		}

		board, err = svc.Leaderboard(context.Background(), boxscore.StatPoints, 3, 100)
		require.NoError(t, err)
		assert.Empty(t, board)
	})
}

func TestReportService_TeamLeaders(t *testing.T) {
	repos := seedTwoGames(t)
	svc := repos.reports()

	report, err := svc.TeamLeaders(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Metro Hawks", report.TeamName)
	require.Len(t, report.Categories, 5)

	for _, category := range report.Categories {
		assert.LessOrEqual(t, len(category.Leaders), 5)
		for _, leader := range category.Leaders {
			assert.Equal(t, int64(1), leader.TeamID)
		}
	}
	assert.Equal(t, boxscore.StatPoints, report.Categories[0].Stat)

	_, err = svc.TeamLeaders(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReportService_GameResults(t *testing.T) {
	repos := seedTwoGames(t)

	results, err := repos.reports().GameResults(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Newest first.
	assert.Equal(t, int64(2), results[0].GameID)
	assert.Equal(t, "Bay Flames", results[0].WinnerName)
	assert.Equal(t, int64(1), results[1].GameID)
	assert.Equal(t, "Metro Hawks", results[1].WinnerName)
	require.Len(t, results[0].Teams, 2)
}

func TestReportService_RecentPerformances(t *testing.T) {
	repos := seedTwoGames(t)

	performances, err := repos.reports().RecentPerformances(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, performances, 10)

	// Only the latest game, top scorer first.
	for _, p := range performances {
		assert.Equal(t, int64(2), p.GameID)
	}
	assert.GreaterOrEqual(t, performances[0].Points, performances[1].Points)
	assert.NotEmpty(t, performances[0].TeamName)
}

func TestReportService_Summarize(t *testing.T) {
	repos := seedTwoGames(t)

	summary, err := repos.reports().Summarize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Summary{
		Teams:             2,
		Players:           12,
		Games:             3,
		GamesWithStats:    2,
		GamesWithoutStats: 1,
		TeamBoxScores:     4,
		PlayerBoxScores:   20,
	}, summary)
}
