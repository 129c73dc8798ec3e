package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, teamIDs []int64) ([]WithTeamName, error)
	GetByID(ctx context.Context, playerID int64) (Player, bool, error)
}
