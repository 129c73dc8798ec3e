package game

import "context"

// Repository describes game persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Game, error)
	GetByID(ctx context.Context, gameID int64) (Game, bool, error)
	ListWithoutStats(ctx context.Context) ([]Game, error)
	Count(ctx context.Context) (int, error)
	CountWithStats(ctx context.Context) (int, error)
}
