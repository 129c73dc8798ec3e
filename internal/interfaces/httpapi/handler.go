package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/hoopqueens/boxscore/internal/platform/logging"
	"github.com/hoopqueens/boxscore/internal/usecase"
)

type Handler struct {
	directoryService  *usecase.DirectoryService
	statsEntryService *usecase.StatsEntryService
	extractionService *usecase.ExtractionService
	reportService     *usecase.ReportService
	maxUploadBytes    int64
	logger            *logging.Logger
}

func NewHandler(
	directoryService *usecase.DirectoryService,
	statsEntryService *usecase.StatsEntryService,
	extractionService *usecase.ExtractionService,
	reportService *usecase.ReportService,
	maxUploadBytes int64,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if maxUploadBytes <= 0 {
		maxUploadBytes = 20 << 20
	}

	return &Handler{
		directoryService:  directoryService,
		statsEntryService: statsEntryService,
		extractionService: extractionService,
		reportService:     reportService,
		maxUploadBytes:    maxUploadBytes,
		logger:            logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}

	return id, nil
}

// queryTeamIDs reads the optional team_id filter, accepting repeats and
// comma-separated values.
func queryTeamIDs(r *http.Request) ([]int64, error) {
	var out []int64
	for _, value := range r.URL.Query()["team_id"] {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: team_id must be a positive integer, got %q", usecase.ErrInvalidInput, part)
			}
			out = append(out, id)
		}
	}

	return out, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}

	return value, nil
}
