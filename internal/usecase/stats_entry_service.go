package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/hoopqueens/boxscore/internal/domain/boxscore"
	"github.com/hoopqueens/boxscore/internal/domain/game"
	"github.com/hoopqueens/boxscore/internal/platform/logging"
)

// Snapshotter copies the store aside before a mutation. A blank path
// means the store is not file-backed and nothing was copied.
type Snapshotter interface {
	Take(ctx context.Context) (string, error)
}

type SaveStatus string

const (
	StatusSaved         SaveStatus = "saved"
	StatusAlreadyExists SaveStatus = "already_exists"
)

// SaveResult reports the outcome of a stats write. AlreadyExists is a
// normal outcome, not an error: the caller decides whether to overwrite
// through Update.
type SaveResult struct {
	Status       SaveStatus
	Message      string
	SnapshotPath string
}

// DeleteResult reports how many rows a stats removal touched.
type DeleteResult struct {
	TeamRows     int
	PlayerRows   int
	SnapshotPath string
}

type StatsEntryService struct {
	gameRepo   game.Repository
	boxRepo    boxscore.Repository
	refService *ReferenceService
	snapshots  Snapshotter
	validate   *validator.Validate
	logger     *logging.Logger
}

func NewStatsEntryService(
	gameRepo game.Repository,
	boxRepo boxscore.Repository,
	refService *ReferenceService,
	snapshots Snapshotter,
	logger *logging.Logger,
) *StatsEntryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatsEntryService{
		gameRepo:   gameRepo,
		boxRepo:    boxRepo,
		refService: refService,
		snapshots:  snapshots,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     logger,
	}
}

// Save persists a full game package under gameID. The store file is
// snapshotted before anything is written. A game that already has stats
// is left untouched and reported as AlreadyExists. All rows land in one
// transaction; a failed insert leaves no partial stats behind.
func (s *StatsEntryService) Save(ctx context.Context, gameID int64, data boxscore.GameData) (SaveResult, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsEntryService.Save")
	defer span.End()

	if err := s.prepare(ctx, gameID, &data); err != nil {
		return SaveResult{}, err
	}

	snapshotPath, err := s.snapshots.Take(ctx)
	if err != nil {
		return SaveResult{}, fmt.Errorf("snapshot store before save: %w", err)
	}

	exists, err := s.boxRepo.GameHasStats(ctx, gameID)
	if err != nil {
		return SaveResult{}, fmt.Errorf("check existing stats: %w", err)
	}
	if exists {
		return SaveResult{
			Status:       StatusAlreadyExists,
			Message:      fmt.Sprintf("game %d already has box scores; use update to overwrite", gameID),
			SnapshotPath: snapshotPath,
		}, nil
	}

	if err := s.boxRepo.InsertGameStats(ctx, gameID, data); err != nil {
		return SaveResult{}, fmt.Errorf("insert game stats (store snapshot at %q): %w", snapshotPath, err)
	}

	s.logger.InfoContext(ctx, "game stats saved",
		"game_id", gameID,
		"team_rows", len(data.TeamRecords),
		"player_rows", len(data.PlayerRecords),
	)

	return SaveResult{
		Status:       StatusSaved,
		Message:      fmt.Sprintf("saved %d team and %d player box scores for game %d", len(data.TeamRecords), len(data.PlayerRecords), gameID),
		SnapshotPath: snapshotPath,
	}, nil
}

// Update replaces a game's stats with delete-then-insert under a single
// pre-mutation snapshot. The game does not need existing stats; updating
// an empty game behaves like a save.
func (s *StatsEntryService) Update(ctx context.Context, gameID int64, data boxscore.GameData) (SaveResult, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsEntryService.Update")
	defer span.End()

	if err := s.prepare(ctx, gameID, &data); err != nil {
		return SaveResult{}, err
	}

	snapshotPath, err := s.snapshots.Take(ctx)
	if err != nil {
		return SaveResult{}, fmt.Errorf("snapshot store before update: %w", err)
	}

	teamRows, playerRows, err := s.boxRepo.DeleteGameStats(ctx, gameID)
	if err != nil {
		return SaveResult{}, fmt.Errorf("delete existing stats (store snapshot at %q): %w", snapshotPath, err)
	}

	if err := s.boxRepo.InsertGameStats(ctx, gameID, data); err != nil {
		return SaveResult{}, fmt.Errorf("insert replacement stats (store snapshot at %q): %w", snapshotPath, err)
	}

	s.logger.InfoContext(ctx, "game stats replaced",
		"game_id", gameID,
		"removed_team_rows", teamRows,
		"removed_player_rows", playerRows,
	)

	return SaveResult{
		Status:       StatusSaved,
		Message:      fmt.Sprintf("replaced box scores for game %d (%d team, %d player rows removed)", gameID, teamRows, playerRows),
		SnapshotPath: snapshotPath,
	}, nil
}

// Delete removes all stats for a game after a snapshot. Deleting a game
// without stats is not an error; the result reports zero rows.
func (s *StatsEntryService) Delete(ctx context.Context, gameID int64) (DeleteResult, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsEntryService.Delete")
	defer span.End()

	if err := s.requireGame(ctx, gameID); err != nil {
		return DeleteResult{}, err
	}

	snapshotPath, err := s.snapshots.Take(ctx)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("snapshot store before delete: %w", err)
	}

	teamRows, playerRows, err := s.boxRepo.DeleteGameStats(ctx, gameID)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("delete game stats (store snapshot at %q): %w", snapshotPath, err)
	}

	s.logger.InfoContext(ctx, "game stats deleted",
		"game_id", gameID,
		"team_rows", teamRows,
		"player_rows", playerRows,
	)

	return DeleteResult{
		TeamRows:     teamRows,
		PlayerRows:   playerRows,
		SnapshotPath: snapshotPath,
	}, nil
}

// GameHasStats reports whether a game already has persisted box scores.
func (s *StatsEntryService) GameHasStats(ctx context.Context, gameID int64) (bool, error) {
	if gameID <= 0 {
		return false, fmt.Errorf("%w: game id must be greater than zero", ErrInvalidInput)
	}
	return s.boxRepo.GameHasStats(ctx, gameID)
}

// prepare runs every pre-write gate: the game must exist, the package
// must satisfy the structural constraints, and every ID must reconcile
// against the reference set. Advisory findings never stop a write.
func (s *StatsEntryService) prepare(ctx context.Context, gameID int64, data *boxscore.GameData) error {
	if err := s.requireGame(ctx, gameID); err != nil {
		return err
	}

	if err := s.validate.Struct(*data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ref, err := s.refService.Load(ctx)
	if err != nil {
		return fmt.Errorf("load reference: %w", err)
	}

	warnings, err := Reconcile(data, ref)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		s.logger.WarnContext(ctx, "stats entry repaired", "game_id", gameID, "detail", warning)
	}
	for _, issue := range Check(*data) {
		s.logger.WarnContext(ctx, "stats entry advisory", "game_id", gameID, "detail", issue)
	}

	return nil
}

func (s *StatsEntryService) requireGame(ctx context.Context, gameID int64) error {
	if gameID <= 0 {
		return fmt.Errorf("%w: game id must be greater than zero", ErrInvalidInput)
	}

	_, exists, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return fmt.Errorf("get game: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: game=%d", ErrNotFound, gameID)
	}

	return nil
}
