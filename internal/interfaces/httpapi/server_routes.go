package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/summary", handler.GetSummary)
}

func registerDirectoryRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/games", handler.ListGames)
	mux.HandleFunc("GET /v1/games/{gameID}", handler.GetGame)
	mux.HandleFunc("GET /v1/team-box-scores", handler.ListTeamBoxScores)
	mux.HandleFunc("GET /v1/player-box-scores", handler.ListPlayerBoxScores)
	mux.HandleFunc("GET /v1/games/{gameID}/box-scores", handler.GetGameBoxScores)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/games/{gameID}/stats", handler.SaveGameStats)
	mux.HandleFunc("PUT /v1/games/{gameID}/stats", handler.UpdateGameStats)
	mux.HandleFunc("DELETE /v1/games/{gameID}/stats", handler.DeleteGameStats)
	mux.HandleFunc("POST /v1/extract", handler.ExtractDocument)
	mux.HandleFunc("POST /v1/stats/check", handler.CheckStats)
}

func registerReportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/reports/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/reports/games", handler.GetGameResults)
	mux.HandleFunc("GET /v1/reports/performances", handler.GetRecentPerformances)
	mux.HandleFunc("GET /v1/reports/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/teams/{teamID}/leaders", handler.GetTeamLeaders)
}
