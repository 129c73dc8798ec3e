package httpapi

import (
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/hoopqueens/boxscore/external/openai"
	"github.com/hoopqueens/boxscore/internal/domain/boxscore"
	"github.com/hoopqueens/boxscore/internal/usecase"
)

func decodeGameData(r *http.Request) (boxscore.GameData, error) {
	var data boxscore.GameData
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&data); err != nil {
		return boxscore.GameData{}, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err)
	}

	return data, nil
}

func (h *Handler) SaveGameStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveGameStats")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	data, err := decodeGameData(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.statsEntryService.Save(ctx, gameID, data)
	if err != nil {
		h.logger.ErrorContext(ctx, "save game stats failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusCreated
	if result.Status == usecase.StatusAlreadyExists {
		status = http.StatusConflict
	}

	writeSuccess(ctx, w, status, toSaveResultDTO(result))
}

func (h *Handler) UpdateGameStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGameStats")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	data, err := decodeGameData(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.statsEntryService.Update(ctx, gameID, data)
	if err != nil {
		h.logger.ErrorContext(ctx, "update game stats failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toSaveResultDTO(result))
}

func (h *Handler) DeleteGameStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGameStats")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.statsEntryService.Delete(ctx, gameID)
	if err != nil {
		h.logger.ErrorContext(ctx, "delete game stats failed", "game_id", gameID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deleteResultDTO{
		TeamRowsDeleted:   result.TeamRows,
		PlayerRowsDeleted: result.PlayerRows,
		SnapshotPath:      result.SnapshotPath,
	})
}

// ExtractDocument accepts a multipart upload (field "document") and runs
// the extraction pipeline without saving anything.
func (h *Handler) ExtractDocument(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExtractDocument")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: parse multipart upload: %v", usecase.ErrInvalidInput, err))
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: missing document file field", usecase.ErrInvalidInput))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	content, err := io.ReadAll(file)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: read uploaded document: %v", usecase.ErrInvalidInput, err))
		return
	}

	result, err := h.extractionService.Parse(ctx, openai.Document{Name: header.Filename, Bytes: content})
	if err != nil {
		h.logger.ErrorContext(ctx, "extract document failed", "document", header.Filename, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toParseResultDTO(result))
}

// CheckStats reviews a caller-supplied game package: structural
// validation, reconciliation and the advisory findings, with no write.
func (h *Handler) CheckStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckStats")
	defer span.End()

	data, err := decodeGameData(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.extractionService.Review(ctx, data)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toParseResultDTO(result))
}
