package boxscore

import "sort"

// StatKey names a player statistic that reports can rank by. The set is
// closed: every key maps to a typed accessor, so an unknown key is a
// caller error rather than a runtime field lookup.
type StatKey string

const (
	StatPoints          StatKey = "points"
	StatAssists         StatKey = "assists"
	StatTotalRebounds   StatKey = "total_rebounds"
	StatSteals          StatKey = "steals"
	StatBlocks          StatKey = "blocks"
	StatTurnovers       StatKey = "turnovers"
	StatMinutes         StatKey = "minutes"
	StatFieldGoalPct    StatKey = "field_goal_percentage"
	StatThreePointerPct StatKey = "three_pointer_percentage"
	StatFreeThrowPct    StatKey = "free_throw_percentage"
	StatPlusMinus       StatKey = "plus_minus"
	StatEfficiency      StatKey = "efficiency"
)

var playerStatAccessors = map[StatKey]func(PlayerRecord) float64{
	StatPoints:          func(r PlayerRecord) float64 { return float64(r.Points) },
	StatAssists:         func(r PlayerRecord) float64 { return float64(r.Assists) },
	StatTotalRebounds:   func(r PlayerRecord) float64 { return float64(r.TotalRebounds) },
	StatSteals:          func(r PlayerRecord) float64 { return float64(r.Steals) },
	StatBlocks:          func(r PlayerRecord) float64 { return float64(r.Blocks) },
	StatTurnovers:       func(r PlayerRecord) float64 { return float64(r.Turnovers) },
	StatMinutes:         func(r PlayerRecord) float64 { return r.Minutes },
	StatFieldGoalPct:    func(r PlayerRecord) float64 { return r.FieldGoalPercentage },
	StatThreePointerPct: func(r PlayerRecord) float64 { return r.ThreePointerPercentage },
	StatFreeThrowPct:    func(r PlayerRecord) float64 { return r.FreeThrowPercentage },
	StatPlusMinus:       func(r PlayerRecord) float64 { return float64(r.PlusMinus) },
	StatEfficiency:      func(r PlayerRecord) float64 { return float64(r.Efficiency) },
}

func (k StatKey) Valid() bool {
	_, ok := playerStatAccessors[k]
	return ok
}

// Value reads the statistic from a player record. Unknown keys read zero;
// callers are expected to check Valid first.
func (k StatKey) Value(rec PlayerRecord) float64 {
	accessor, ok := playerStatAccessors[k]
	if !ok {
		return 0
	}
	return accessor(rec)
}

// IsPercentage reports whether the key averages to a 0-1 fraction.
func (k StatKey) IsPercentage() bool {
	switch k {
	case StatFieldGoalPct, StatThreePointerPct, StatFreeThrowPct:
		return true
	default:
		return false
	}
}

// StatKeys returns the supported keys in stable order.
func StatKeys() []StatKey {
	out := make([]StatKey, 0, len(playerStatAccessors))
	for key := range playerStatAccessors {
		out = append(out, key)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
