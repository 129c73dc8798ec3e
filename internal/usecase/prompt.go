package usecase

import (
	"fmt"
	"sort"
	"strings"
)

// BuildInstructions renders the extraction system prompt from the
// reference set. Output is deterministic for a given reference: teams
// sorted by id, players grouped under their team in id order. Prompt
// drift between identical uploads would make extraction results harder
// to compare, so nothing here depends on map iteration order.
func BuildInstructions(ref Reference) string {
	var b strings.Builder

	b.WriteString("You are a basketball box score extraction assistant.\n")
	b.WriteString("Read the attached box score document and return team and player statistics as structured data.\n\n")

	b.WriteString("RULES:\n")
	b.WriteString("- Use ONLY team IDs and player IDs from the lists below. Never invent IDs.\n")
	b.WriteString("- media_name must match the player list EXACTLY, in 'LastInitial. FirstName' form.\n")
	b.WriteString("- Percentages are fractions between 0 and 1 (e.g. 45.5% becomes 0.455).\n")
	b.WriteString("- Minutes are decimal (e.g. 31:30 becomes 31.5).\n")
	b.WriteString("- plus_minus may be negative.\n")
	b.WriteString("- A value missing from the document is 0 for numbers and an empty string for text.\n\n")

	teams := make([]int, 0, len(ref.Teams))
	teamName := make(map[int64]string, len(ref.Teams))
	teamAbbrev := make(map[int64]string, len(ref.Teams))
	for _, t := range ref.Teams {
		teams = append(teams, int(t.ID))
		teamName[t.ID] = t.Name
		teamAbbrev[t.ID] = t.Abbreviation
	}
	sort.Ints(teams)

	b.WriteString("TEAMS:\n")
	for _, id := range teams {
		teamID := int64(id)
		fmt.Fprintf(&b, "- id=%d name=%q abbreviation=%q\n", teamID, teamName[teamID], teamAbbrev[teamID])
	}
	b.WriteString("\n")

	byTeam := make(map[int64][]int, len(ref.Teams))
	mediaName := make(map[int64]string, len(ref.Players))
	jersey := make(map[int64]int, len(ref.Players))
	for _, p := range ref.Players {
		byTeam[p.TeamID] = append(byTeam[p.TeamID], int(p.ID))
		mediaName[p.ID] = p.MediaName
		jersey[p.ID] = p.JerseyNumber
	}

	b.WriteString("PLAYERS BY TEAM:\n")
	for _, id := range teams {
		teamID := int64(id)
		fmt.Fprintf(&b, "%s (team_id=%d):\n", teamName[teamID], teamID)

		roster := byTeam[teamID]
		sort.Ints(roster)
		for _, pid := range roster {
			playerID := int64(pid)
			fmt.Fprintf(&b, "- id=%d media_name=%q jersey=%d\n", playerID, mediaName[playerID], jersey[playerID])
		}
	}

	return b.String()
}
