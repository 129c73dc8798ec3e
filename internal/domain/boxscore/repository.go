package boxscore

import "context"

// Repository describes box-score persistence needs from use cases.
// InsertGameStats writes all rows of one GameData package in a single
// transaction; partial writes must never become visible.
type Repository interface {
	ListTeamEntries(ctx context.Context) ([]TeamEntry, error)
	ListPlayerEntries(ctx context.Context) ([]PlayerEntry, error)
	ListTeamEntriesByGame(ctx context.Context, gameID int64) ([]TeamEntry, error)
	ListPlayerEntriesByGame(ctx context.Context, gameID int64) ([]PlayerEntry, error)
	GameHasStats(ctx context.Context, gameID int64) (bool, error)
	InsertGameStats(ctx context.Context, gameID int64, data GameData) error
	DeleteGameStats(ctx context.Context, gameID int64) (teamRows, playerRows int, err error)
}
