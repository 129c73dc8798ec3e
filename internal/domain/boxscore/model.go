package boxscore

// TeamRecord is one team's statistical line for a single game. The same
// shape travels on the wire (extraction output, HTTP payloads) and into
// the store, so the json tags are the canonical field names.
type TeamRecord struct {
	TeamID           int64  `json:"team_id" db:"team_id" validate:"gt=0"`
	TeamName         string `json:"team_name" db:"team_name" validate:"required"`
	TeamAbbreviation string `json:"team_abbreviation" db:"team_abbreviation"`
	FinalScore       int    `json:"final_score" db:"final_score" validate:"gte=0"`

	// Shooting
	FieldGoalsMade         int     `json:"field_goals_made" db:"field_goals_made"`
	FieldGoalsAttempted    int     `json:"field_goals_attempted" db:"field_goals_attempted"`
	FieldGoalPercentage    float64 `json:"field_goal_percentage" db:"field_goal_percentage"`
	ThreePointersMade      int     `json:"three_pointers_made" db:"three_pointers_made"`
	ThreePointersAttempted int     `json:"three_pointers_attempted" db:"three_pointers_attempted"`
	ThreePointerPercentage float64 `json:"three_pointer_percentage" db:"three_pointer_percentage"`
	FreeThrowsMade         int     `json:"free_throws_made" db:"free_throws_made"`
	FreeThrowsAttempted    int     `json:"free_throws_attempted" db:"free_throws_attempted"`
	FreeThrowPercentage    float64 `json:"free_throw_percentage" db:"free_throw_percentage"`

	// Rebounding
	OffensiveRebounds int `json:"offensive_rebounds" db:"offensive_rebounds"`
	DefensiveRebounds int `json:"defensive_rebounds" db:"defensive_rebounds"`
	TotalRebounds     int `json:"total_rebounds" db:"total_rebounds"`

	// General
	Assists    int `json:"assists" db:"assists"`
	Turnovers  int `json:"turnovers" db:"turnovers"`
	Steals     int `json:"steals" db:"steals"`
	Blocks     int `json:"blocks" db:"blocks"`
	Fouls      int `json:"fouls" db:"fouls"`
	FoulsDrawn int `json:"fouls_drawn" db:"fouls_drawn"`
	PlusMinus  int `json:"plus_minus" db:"plus_minus"`
	Efficiency int `json:"efficiency" db:"efficiency"`

	// Advanced
	PointsFromTurnovers         int     `json:"points_from_turnovers" db:"points_from_turnovers"`
	BiggestLead                 string  `json:"biggest_lead" db:"biggest_lead"`
	BiggestRun                  string  `json:"biggest_run" db:"biggest_run"`
	PointsInPaint               int     `json:"points_in_paint" db:"points_in_paint"`
	FieldGoalInPaintMade        int     `json:"field_goal_in_paint_made" db:"field_goal_in_paint_made"`
	FieldGoalInPaintAttempted   int     `json:"field_goal_in_paint_attempted" db:"field_goal_in_paint_attempted"`
	PointsInPaintPercentage     float64 `json:"points_in_paint_percentage" db:"points_in_paint_percentage"`
	SecondChancePoints          int     `json:"second_chance_points" db:"second_chance_points"`
	PointsPerPossession         float64 `json:"points_per_possession" db:"points_per_possession"`
	FastBreakPoints             int     `json:"fast_break_points" db:"fast_break_points"`
	FastBreakPointsFromTurnover int     `json:"fast_break_points_from_turnovers" db:"fast_break_points_from_turnovers"`
	BenchPoints                 int     `json:"bench_points" db:"bench_points"`
	LeadChanges                 int     `json:"lead_changes" db:"lead_changes"`
	TimesTied                   int     `json:"times_tied" db:"times_tied"`
	TimeWithLead                string  `json:"time_with_lead" db:"time_with_lead"`
}

// PlayerRecord is one player's statistical line for a single game.
type PlayerRecord struct {
	PlayerID     int64   `json:"player_id" db:"player_id" validate:"gt=0"`
	TeamID       int64   `json:"team_id" db:"team_id" validate:"gt=0"`
	MediaName    string  `json:"media_name" db:"media_name" validate:"required"`
	JerseyNumber int     `json:"jersey_number" db:"jersey_number"`
	Minutes      float64 `json:"minutes" db:"minutes" validate:"gte=0"`

	FieldGoalsMade         int     `json:"field_goals_made" db:"field_goals_made"`
	FieldGoalsAttempted    int     `json:"field_goals_attempted" db:"field_goals_attempted"`
	FieldGoalPercentage    float64 `json:"field_goal_percentage" db:"field_goal_percentage"`
	ThreePointersMade      int     `json:"three_pointers_made" db:"three_pointers_made"`
	ThreePointersAttempted int     `json:"three_pointers_attempted" db:"three_pointers_attempted"`
	ThreePointerPercentage float64 `json:"three_pointer_percentage" db:"three_pointer_percentage"`
	FreeThrowsMade         int     `json:"free_throws_made" db:"free_throws_made"`
	FreeThrowsAttempted    int     `json:"free_throws_attempted" db:"free_throws_attempted"`
	FreeThrowPercentage    float64 `json:"free_throw_percentage" db:"free_throw_percentage"`

	OffensiveRebounds int `json:"offensive_rebounds" db:"offensive_rebounds"`
	DefensiveRebounds int `json:"defensive_rebounds" db:"defensive_rebounds"`
	TotalRebounds     int `json:"total_rebounds" db:"total_rebounds"`

	Assists    int `json:"assists" db:"assists"`
	Turnovers  int `json:"turnovers" db:"turnovers"`
	Steals     int `json:"steals" db:"steals"`
	Blocks     int `json:"blocks" db:"blocks"`
	Fouls      int `json:"fouls" db:"fouls"`
	FoulsDrawn int `json:"fouls_drawn" db:"fouls_drawn"`
	PlusMinus  int `json:"plus_minus" db:"plus_minus"`
	Efficiency int `json:"efficiency" db:"efficiency"`
	Points     int `json:"points" db:"points"`
}

// GameData is the transport package produced by extraction and consumed
// by the persistence gateway. It is validated as a unit before any write.
type GameData struct {
	TeamRecords   []TeamRecord   `json:"team_box_scores" validate:"len=2,dive"`
	PlayerRecords []PlayerRecord `json:"player_box_scores" validate:"required,min=1,dive"`
}

// PlayerCountByTeam tallies player records per side.
func (d GameData) PlayerCountByTeam() map[int64]int {
	counts := make(map[int64]int, len(d.TeamRecords))
	for _, rec := range d.PlayerRecords {
		counts[rec.TeamID]++
	}
	return counts
}

// PointsByTeam sums player points per side.
func (d GameData) PointsByTeam() map[int64]int {
	points := make(map[int64]int, len(d.TeamRecords))
	for _, rec := range d.PlayerRecords {
		points[rec.TeamID] += rec.Points
	}
	return points
}

// TeamEntry is a persisted team box score row.
type TeamEntry struct {
	GameID int64 `json:"game_id" db:"game_id"`
	TeamRecord
}

// PlayerEntry is a persisted player box score row.
type PlayerEntry struct {
	GameID int64 `json:"game_id" db:"game_id"`
	PlayerRecord
}
