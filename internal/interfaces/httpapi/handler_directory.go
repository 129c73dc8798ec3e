package httpapi

import "net/http"

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teamIDs, err := queryTeamIDs(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teams, err := h.directoryService.ListTeams(ctx, teamIDs)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		out = append(out, toTeamDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	t, err := h.directoryService.GetTeam(ctx, teamID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamDTO(t))
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	teamIDs, err := queryTeamIDs(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.directoryService.ListPlayers(ctx, teamIDs)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, toPlayerDTO(p.Player, p.TeamName))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	p, err := h.directoryService.GetPlayer(ctx, playerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toPlayerDTO(p, ""))
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGames")
	defer span.End()

	var games []gameDTO
	if r.URL.Query().Get("without_stats") == "true" {
		pending, err := h.directoryService.ListGamesWithoutStats(ctx)
		if err != nil {
			h.logger.ErrorContext(ctx, "list games without stats failed", "error", err)
			writeError(ctx, w, err)
			return
		}
		for _, g := range pending {
			games = append(games, toGameDTO(g))
		}
	} else {
		all, err := h.directoryService.ListGames(ctx)
		if err != nil {
			h.logger.ErrorContext(ctx, "list games failed", "error", err)
			writeError(ctx, w, err)
			return
		}
		for _, g := range all {
			games = append(games, toGameDTO(g))
		}
	}

	if games == nil {
		games = []gameDTO{}
	}

	writeSuccess(ctx, w, http.StatusOK, games)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGame")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	g, err := h.directoryService.GetGame(ctx, gameID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toGameDTO(g))
}

func (h *Handler) ListTeamBoxScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamBoxScores")
	defer span.End()

	entries, err := h.directoryService.ListTeamBoxScores(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list team box scores failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entries)
}

func (h *Handler) ListPlayerBoxScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerBoxScores")
	defer span.End()

	entries, err := h.directoryService.ListPlayerBoxScores(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list player box scores failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entries)
}

func (h *Handler) GetGameBoxScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetGameBoxScores")
	defer span.End()

	gameID, err := pathID(r, "gameID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	bundle, err := h.directoryService.GetGameBoxScores(ctx, gameID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameBoxScoresDTO{
		Game:       toGameDTO(bundle.Game),
		TeamRows:   bundle.TeamRows,
		PlayerRows: bundle.PlayerRows,
	})
}
