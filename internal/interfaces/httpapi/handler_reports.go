package httpapi

import (
	"net/http"
	"strings"

	"github.com/hoopqueens/boxscore/internal/domain/boxscore"
)

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	rows, err := h.reportService.Standings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rows)
}

func (h *Handler) GetGameResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameResults")
	defer span.End()

	results, err := h.reportService.GameResults(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "game results failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, results)
}

func (h *Handler) GetRecentPerformances(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRecentPerformances")
	defer span.End()

	games, err := queryInt(r, "games", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	performances, err := h.reportService.RecentPerformances(ctx, games)
	if err != nil {
		h.logger.ErrorContext(ctx, "recent performances failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, performances)
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	stat := boxscore.StatKey(strings.TrimSpace(r.URL.Query().Get("stat")))
	if stat == "" {
		stat = boxscore.StatPoints
	}

	minGames, err := queryInt(r, "min_games", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.reportService.Leaderboard(ctx, stat, minGames, limit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, board)
}

func (h *Handler) GetTeamLeaders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamLeaders")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.reportService.TeamLeaders(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, report)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSummary")
	defer span.End()

	summary, err := h.reportService.Summarize(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "summary failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}
