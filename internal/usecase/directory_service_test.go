package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryService_Teams(t *testing.T) {
	svc := newTestRepos().directory()

	t.Run("lists all teams", func(t *testing.T) {
		teams, err := svc.ListTeams(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, teams, 2)
		assert.Equal(t, "Metro Hawks", teams[0].Name)
	})

	t.Run("filters by id", func(t *testing.T) {
		teams, err := svc.ListTeams(context.Background(), []int64{2})
		require.NoError(t, err)
		require.Len(t, teams, 1)
		assert.Equal(t, "Bay Flames", teams[0].Name)
	})

	t.Run("rejects non-positive filter id", func(t *testing.T) {
		_, err := svc.ListTeams(context.Background(), []int64{0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("get by id", func(t *testing.T) {
		team, err := svc.GetTeam(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "MH", team.Abbreviation)

		_, err = svc.GetTeam(context.Background(), 404)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDirectoryService_Players(t *testing.T) {
	svc := newTestRepos().directory()

	t.Run("lists players with team names", func(t *testing.T) {
		players, err := svc.ListPlayers(context.Background(), nil)
		require.NoError(t, err)
		require.Len(t, players, 12)
		assert.Equal(t, "Metro Hawks", players[0].TeamName)
	})

	t.Run("filters by team", func(t *testing.T) {
		players, err := svc.ListPlayers(context.Background(), []int64{2})
		require.NoError(t, err)
		require.Len(t, players, 6)
		for _, p := range players {
			assert.Equal(t, int64(2), p.TeamID)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		p, err := svc.GetPlayer(context.Background(), 203)
		require.NoError(t, err)
		assert.Equal(t, "S. Hana", p.MediaName)

		_, err = svc.GetPlayer(context.Background(), 404)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDirectoryService_Games(t *testing.T) {
	repos := newTestRepos()
	svc := repos.directory()

	t.Run("lists games", func(t *testing.T) {
		games, err := svc.ListGames(context.Background())
		require.NoError(t, err)
		assert.Len(t, games, 3)
	})

	t.Run("games without stats shrink as stats land", func(t *testing.T) {
		pending, err := svc.ListGamesWithoutStats(context.Background())
		require.NoError(t, err)
		assert.Len(t, pending, 3)

		_, err = repos.statsEntry().Save(context.Background(), 2, sampleGameData())
		require.NoError(t, err)

		pending, err = svc.ListGamesWithoutStats(context.Background())
		require.NoError(t, err)
		require.Len(t, pending, 2)
		for _, g := range pending {
			assert.NotEqual(t, int64(2), g.ID)
		}
	})
}

func TestDirectoryService_GameBoxScores(t *testing.T) {
	repos := newTestRepos()
	svc := repos.directory()

	_, err := repos.statsEntry().Save(context.Background(), 1, sampleGameData())
	require.NoError(t, err)

	bundle, err := svc.GetGameBoxScores(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bundle.Game.ID)
	assert.Len(t, bundle.TeamRows, 2)
	assert.Len(t, bundle.PlayerRows, 10)

	empty, err := svc.GetGameBoxScores(context.Background(), 3)
	require.NoError(t, err)
	assert.Empty(t, empty.TeamRows)

	_, err = svc.GetGameBoxScores(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
