// Package roster fetches and serves baseball player career statistics from
// the upstream stats API.
package roster

// Player mirrors one record of the upstream payload. The json tags follow
// the upstream field names exactly, quirks included ("third baseman" is the
// triples column, "a walk" is walks).
type Player struct {
	Name           string  `json:"Player name"`
	Position       string  `json:"position"`
	Games          int     `json:"Games"`
	AtBats         int     `json:"At-bat"`
	Runs           int     `json:"Runs"`
	Hits           int     `json:"Hits"`
	Doubles        int     `json:"Double (2B)"`
	Triples        int     `json:"third baseman"`
	HomeRuns       int     `json:"home run"`
	RBI            int     `json:"run batted in"`
	Walks          int     `json:"a walk"`
	Strikeouts     int     `json:"Strikeouts"`
	StolenBases    int     `json:"stolen base"`
	CaughtStealing int     `json:"Caught stealing"`
	AVG            float64 `json:"AVG"`
	OBP            float64 `json:"On-base Percentage"`
	SLG            float64 `json:"Slugging Percentage"`
	OPS            float64 `json:"On-base Plus Slugging"`
}

// Logger is the minimal logging contract required by the roster domain.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
