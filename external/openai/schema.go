package openai

// The Responses API strict mode requires every property to be listed in
// both properties and required, with additionalProperties disabled. The
// property names below mirror the json tags on the box-score records.

var teamRecordIntFields = []string{
	"final_score",
	"field_goals_made", "field_goals_attempted",
	"three_pointers_made", "three_pointers_attempted",
	"free_throws_made", "free_throws_attempted",
	"offensive_rebounds", "defensive_rebounds", "total_rebounds",
	"assists", "turnovers", "steals", "blocks", "fouls", "fouls_drawn",
	"plus_minus", "efficiency",
	"points_from_turnovers", "points_in_paint",
	"field_goal_in_paint_made", "field_goal_in_paint_attempted",
	"second_chance_points", "fast_break_points",
	"fast_break_points_from_turnovers", "bench_points",
	"lead_changes", "times_tied",
}

var teamRecordNumberFields = []string{
	"field_goal_percentage", "three_pointer_percentage", "free_throw_percentage",
	"points_in_paint_percentage", "points_per_possession",
}

var teamRecordStringFields = []string{
	"team_name", "team_abbreviation",
	"biggest_lead", "biggest_run", "time_with_lead",
}

var playerRecordIntFields = []string{
	"jersey_number",
	"field_goals_made", "field_goals_attempted",
	"three_pointers_made", "three_pointers_attempted",
	"free_throws_made", "free_throws_attempted",
	"offensive_rebounds", "defensive_rebounds", "total_rebounds",
	"assists", "turnovers", "steals", "blocks", "fouls", "fouls_drawn",
	"plus_minus", "efficiency", "points",
}

var playerRecordNumberFields = []string{
	"minutes",
	"field_goal_percentage", "three_pointer_percentage", "free_throw_percentage",
}

func gameDataSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"team_box_scores": map[string]any{
				"type":  "array",
				"items": teamRecordSchema(),
			},
			"player_box_scores": map[string]any{
				"type":  "array",
				"items": playerRecordSchema(),
			},
		},
		"required":             []string{"team_box_scores", "player_box_scores"},
		"additionalProperties": false,
	}
}

func teamRecordSchema() map[string]any {
	props := map[string]any{
		"team_id": map[string]any{"type": "integer"},
	}
	required := []string{"team_id"}
	required = addFields(props, required, teamRecordStringFields, "string")
	required = addFields(props, required, teamRecordIntFields, "integer")
	required = addFields(props, required, teamRecordNumberFields, "number")

	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func playerRecordSchema() map[string]any {
	props := map[string]any{
		"player_id":  map[string]any{"type": "integer"},
		"team_id":    map[string]any{"type": "integer"},
		"media_name": map[string]any{"type": "string"},
	}
	required := []string{"player_id", "team_id", "media_name"}
	required = addFields(props, required, playerRecordIntFields, "integer")
	required = addFields(props, required, playerRecordNumberFields, "number")

	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func addFields(props map[string]any, required []string, names []string, kind string) []string {
	for _, name := range names {
		props[name] = map[string]any{"type": kind}
		required = append(required, name)
	}
	return required
}
