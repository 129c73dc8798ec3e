package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/hoopqueens/boxscore/external/openai"
	"github.com/hoopqueens/boxscore/internal/domain/boxscore"
	"github.com/hoopqueens/boxscore/internal/platform/logging"
)

// Extractor turns a box-score document into structured game data.
type Extractor interface {
	ExtractGameData(ctx context.Context, doc openai.Document, instructions string) (boxscore.GameData, error)
}

// ParseResult is an extraction outcome ready for operator review. The
// data has already been reconciled; Warnings lists the silent repairs
// made during reconciliation and Issues the advisory findings. Neither
// list blocks a save.
type ParseResult struct {
	Data     boxscore.GameData
	Warnings []string
	Issues   []string
}

type ExtractionService struct {
	refService *ReferenceService
	extractor  Extractor
	validate   *validator.Validate
	logger     *logging.Logger
}

func NewExtractionService(refService *ReferenceService, extractor Extractor, logger *logging.Logger) *ExtractionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ExtractionService{
		refService: refService,
		extractor:  extractor,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     logger,
	}
}

// Parse runs the full document pipeline: load the reference set, call
// the extraction model with reference-aware instructions, enforce the
// structural constraints, reconcile IDs and names, and gather the
// advisory review. The result is never persisted here; saving is a
// separate decision.
func (s *ExtractionService) Parse(ctx context.Context, doc openai.Document) (ParseResult, error) {
	ctx, span := startUsecaseSpan(ctx, "ExtractionService.Parse")
	defer span.End()

	ref, err := s.refService.Load(ctx)
	if err != nil {
		return ParseResult{}, fmt.Errorf("load reference: %w", err)
	}

	data, err := s.extractor.ExtractGameData(ctx, doc, BuildInstructions(ref))
	if err != nil {
		return ParseResult{}, fmt.Errorf("extract document %q: %w", doc.Name, err)
	}

	if err := s.validate.Struct(data); err != nil {
		return ParseResult{}, fmt.Errorf("%w: extracted data failed validation: %v", ErrInvalidInput, err)
	}

	warnings, err := Reconcile(&data, ref)
	if err != nil {
		return ParseResult{}, fmt.Errorf("reconcile document %q: %w", doc.Name, err)
	}
	for _, warning := range warnings {
		s.logger.WarnContext(ctx, "extraction repaired", "document", doc.Name, "detail", warning)
	}

	return ParseResult{
		Data:     data,
		Warnings: warnings,
		Issues:   Check(data),
	}, nil
}

// Review validates and reconciles a game package supplied directly by a
// caller, without touching the extraction model. Used for manual entry
// and for re-checking edited extraction output.
func (s *ExtractionService) Review(ctx context.Context, data boxscore.GameData) (ParseResult, error) {
	ctx, span := startUsecaseSpan(ctx, "ExtractionService.Review")
	defer span.End()

	if err := s.validate.Struct(data); err != nil {
		return ParseResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ref, err := s.refService.Load(ctx)
	if err != nil {
		return ParseResult{}, fmt.Errorf("load reference: %w", err)
	}

	warnings, err := Reconcile(&data, ref)
	if err != nil {
		return ParseResult{}, err
	}

	return ParseResult{
		Data:     data,
		Warnings: warnings,
		Issues:   Check(data),
	}, nil
}
