package usecase

import (
	"fmt"
	"strings"

	"github.com/hoopqueens/boxscore/internal/domain/boxscore"
)

// Reconcile verifies every extracted record against the reference set
// and repairs drifted display fields in place. Unknown IDs are fatal:
// the model was told which IDs exist, so an unknown one means the
// extraction cannot be trusted. Wrong names or team assignments on a
// known ID are repaired from the reference and reported as warnings.
func Reconcile(data *boxscore.GameData, ref Reference) ([]string, error) {
	var problems []string
	var warnings []string

	for i := range data.TeamRecords {
		rec := &data.TeamRecords[i]
		if _, ok := ref.TeamIDs[rec.TeamID]; !ok {
			problems = append(problems, fmt.Sprintf("team record %d: unknown team_id %d", i, rec.TeamID))
			continue
		}
		for _, t := range ref.Teams {
			if t.ID != rec.TeamID {
				continue
			}
			if rec.TeamName != t.Name {
				warnings = append(warnings, fmt.Sprintf("team %d: corrected team_name %q to %q", rec.TeamID, rec.TeamName, t.Name))
				rec.TeamName = t.Name
			}
			if rec.TeamAbbreviation != t.Abbreviation {
				warnings = append(warnings, fmt.Sprintf("team %d: corrected team_abbreviation %q to %q", rec.TeamID, rec.TeamAbbreviation, t.Abbreviation))
				rec.TeamAbbreviation = t.Abbreviation
			}
		}
	}

	for i := range data.PlayerRecords {
		rec := &data.PlayerRecords[i]
		known, ok := ref.PlayerRef[rec.PlayerID]
		if !ok {
			problems = append(problems, fmt.Sprintf("player record %d: unknown player_id %d", i, rec.PlayerID))
			continue
		}
		if rec.MediaName != known.MediaName {
			warnings = append(warnings, fmt.Sprintf("player %d: corrected media_name %q to %q", rec.PlayerID, rec.MediaName, known.MediaName))
			rec.MediaName = known.MediaName
		}
		if rec.TeamID != known.TeamID {
			warnings = append(warnings, fmt.Sprintf("player %d: corrected team_id %d to %d", rec.PlayerID, rec.TeamID, known.TeamID))
			rec.TeamID = known.TeamID
		}
	}

	if len(problems) > 0 {
		return warnings, fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, "; "))
	}

	return warnings, nil
}

// Check runs the advisory plausibility review on a game package. Issues
// flag suspicious extractions for a human eye; none of them block a
// save, and no value is ever clamped.
func Check(data boxscore.GameData) []string {
	var issues []string

	if got := len(data.TeamRecords); got != 2 {
		issues = append(issues, fmt.Sprintf("expected 2 team box scores, got %d", got))
	}

	counts := data.PlayerCountByTeam()
	for _, rec := range data.TeamRecords {
		if counts[rec.TeamID] < 5 {
			issues = append(issues, fmt.Sprintf("team %d has only %d player box scores, expected at least 5", rec.TeamID, counts[rec.TeamID]))
		}
	}

	for _, rec := range data.TeamRecords {
		issues = appendPercentageIssues(issues, fmt.Sprintf("team %d", rec.TeamID), map[string]float64{
			"field_goal_percentage":    rec.FieldGoalPercentage,
			"three_pointer_percentage": rec.ThreePointerPercentage,
			"free_throw_percentage":    rec.FreeThrowPercentage,
		})
	}
	for _, rec := range data.PlayerRecords {
		issues = appendPercentageIssues(issues, fmt.Sprintf("player %d", rec.PlayerID), map[string]float64{
			"field_goal_percentage":    rec.FieldGoalPercentage,
			"three_pointer_percentage": rec.ThreePointerPercentage,
			"free_throw_percentage":    rec.FreeThrowPercentage,
		})
	}

	points := data.PointsByTeam()
	for _, rec := range data.TeamRecords {
		if sum := points[rec.TeamID]; sum != rec.FinalScore {
			issues = append(issues, fmt.Sprintf("team %d: player points sum to %d but final score is %d", rec.TeamID, sum, rec.FinalScore))
		}
	}

	return issues
}

var percentageFieldOrder = []string{
	"field_goal_percentage",
	"three_pointer_percentage",
	"free_throw_percentage",
}

func appendPercentageIssues(issues []string, subject string, values map[string]float64) []string {
	for _, field := range percentageFieldOrder {
		if v := values[field]; v < 0 || v > 1 {
			issues = append(issues, fmt.Sprintf("%s: %s %.3f is outside [0, 1]", subject, field, v))
		}
	}
	return issues
}
