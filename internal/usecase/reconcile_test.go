package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoopqueens/boxscore/internal/domain/boxscore"
)

func loadReference(t *testing.T) Reference {
	t.Helper()

	ref, err := newTestRepos().refSvc.Load(context.Background())
	require.NoError(t, err)
	return ref
}

func TestReconcile(t *testing.T) {
	t.Run("clean data passes untouched", func(t *testing.T) {
		ref := loadReference(t)
		data := sampleGameData()

		warnings, err := Reconcile(&data, ref)
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, sampleGameData(), data)
	})

	t.Run("repairs drifted media name and team assignment", func(t *testing.T) {
		ref := loadReference(t)
		data := sampleGameData()
		data.PlayerRecords[0].MediaName = "Vaughn C."
		data.PlayerRecords[0].TeamID = 2

		warnings, err := Reconcile(&data, ref)
		require.NoError(t, err)
		assert.Len(t, warnings, 2)
		assert.Equal(t, "V. Chelsea", data.PlayerRecords[0].MediaName)
		assert.Equal(t, int64(1), data.PlayerRecords[0].TeamID)
	})

	t.Run("repairs drifted team name", func(t *testing.T) {
		ref := loadReference(t)
		data := sampleGameData()
		data.TeamRecords[0].TeamName = "METRO HAWKS"

		warnings, err := Reconcile(&data, ref)
		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Equal(t, "Metro Hawks", data.TeamRecords[0].TeamName)
	})

	t.Run("rejects unknown player id", func(t *testing.T) {
		ref := loadReference(t)
		data := sampleGameData()
		data.PlayerRecords[3].PlayerID = 999

		_, err := Reconcile(&data, ref)
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "unknown player_id 999")
	})

	t.Run("rejects unknown team id", func(t *testing.T) {
		ref := loadReference(t)
		data := sampleGameData()
		data.TeamRecords[1].TeamID = 42

		_, err := Reconcile(&data, ref)
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "unknown team_id 42")
	})

	t.Run("collects every unknown id in one error", func(t *testing.T) {
		ref := loadReference(t)
		data := sampleGameData()
		data.PlayerRecords[0].PlayerID = 900
		data.PlayerRecords[1].PlayerID = 901

		_, err := Reconcile(&data, ref)
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "900")
		assert.Contains(t, err.Error(), "901")
	})

	t.Run("is idempotent", func(t *testing.T) {
		ref := loadReference(t)
		data := sampleGameData()
		data.PlayerRecords[0].MediaName = "wrong"

		first, err := Reconcile(&data, ref)
		require.NoError(t, err)
		require.Len(t, first, 1)

		second, err := Reconcile(&data, ref)
		require.NoError(t, err)
		assert.Empty(t, second)
	})
}

func TestCheck(t *testing.T) {
	t.Run("consistent package has no issues", func(t *testing.T) {
		assert.Empty(t, Check(sampleGameData()))
	})

	t.Run("flags wrong team count", func(t *testing.T) {
		data := sampleGameData()
		data.TeamRecords = data.TeamRecords[:1]

		issues := Check(data)
		assert.Contains(t, issues, "expected 2 team box scores, got 1")
	})

	t.Run("flags short roster", func(t *testing.T) {
		data := sampleGameData()
		data.PlayerRecords = data.PlayerRecords[:7]
		// Team 2 final score no longer matches its remaining players.
		data.TeamRecords[1].FinalScore = 39

		issues := Check(data)
		assert.Contains(t, issues, "team 2 has only 2 player box scores, expected at least 5")
	})

	t.Run("flags percentage outside unit range without clamping", func(t *testing.T) {
		data := sampleGameData()
		data.PlayerRecords[0].FieldGoalPercentage = 45.5

		issues := Check(data)
		require.NotEmpty(t, issues)
		assert.Contains(t, issues[0], "field_goal_percentage 45.500 is outside [0, 1]")
		assert.Equal(t, 45.5, data.PlayerRecords[0].FieldGoalPercentage)
	})

	t.Run("flags score drift from player points", func(t *testing.T) {
		data := sampleGameData()
		data.TeamRecords[0].FinalScore = 90

		issues := Check(data)
		assert.Contains(t, issues, "team 1: player points sum to 81 but final score is 90")
	})
}

func TestStatKeys(t *testing.T) {
	keys := boxscore.StatKeys()
	assert.Contains(t, keys, boxscore.StatPoints)
	assert.Contains(t, keys, boxscore.StatEfficiency)
	for _, key := range keys {
		assert.True(t, key.Valid())
	}
	assert.False(t, boxscore.StatKey("dunks").Valid())
}
