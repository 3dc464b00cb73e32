package roster

import (
	"fmt"
	"sort"
)

// StatField identifies a sortable numeric stat.
type StatField string

const (
	FieldHomeRuns    StatField = "hr"
	FieldHits        StatField = "hits"
	FieldAVG         StatField = "avg"
	FieldRBI         StatField = "rbi"
	FieldStolenBases StatField = "sb"
)

func statValue(p Player, field StatField) float64 {
	switch field {
	case FieldHomeRuns:
		return float64(p.HomeRuns)
	case FieldHits:
		return float64(p.Hits)
	case FieldAVG:
		return p.AVG
	case FieldRBI:
		return float64(p.RBI)
	case FieldStolenBases:
		return float64(p.StolenBases)
	default:
		return 0
	}
}

// ParseStatField maps a query value onto a StatField.
func ParseStatField(s string) (StatField, error) {
	switch StatField(s) {
	case FieldHomeRuns, FieldHits, FieldAVG, FieldRBI, FieldStolenBases:
		return StatField(s), nil
	}
	return "", fmt.Errorf("unknown stat field: %q", s)
}

// SortByField returns a new slice sorted by the given stat, descending.
// The input is left untouched and ties keep their upstream order.
func SortByField(players []Player, field StatField) []Player {
	sorted := make([]Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return statValue(sorted[i], field) > statValue(sorted[j], field)
	})
	return sorted
}

// Leaders holds the top player per headline stat.
type Leaders struct {
	Batting Player `json:"batting"`
	RBI     Player `json:"rbi"`
	Hits    Player `json:"hits"`
	Steals  Player `json:"steals"`
}

// ComputeLeaders picks the leader for each headline category. Returns nil
// for an empty roster.
func ComputeLeaders(players []Player) *Leaders {
	if len(players) == 0 {
		return nil
	}
	return &Leaders{
		Batting: SortByField(players, FieldAVG)[0],
		RBI:     SortByField(players, FieldRBI)[0],
		Hits:    SortByField(players, FieldHits)[0],
		Steals:  SortByField(players, FieldStolenBases)[0],
	}
}

// FindByName returns the player whose name matches exactly, or nil.
func FindByName(players []Player, name string) *Player {
	for i := range players {
		if players[i].Name == name {
			return &players[i]
		}
	}
	return nil
}
