package scout

import (
	"context"
	"fmt"
	"math"
	"strings"

	"dugout-server-go/internal/domain/roster"
)

func init() {
	Register("static", NewStaticProvider)
}

// staticProvider renders descriptions from career stats alone, with no
// external calls. It backs the "static" provider name and doubles as the
// fallback for every other provider.
type staticProvider struct{}

// NewStaticProvider returns the deterministic description provider.
func NewStaticProvider(_ *Config) (Provider, error) {
	return &staticProvider{}, nil
}

func (s *staticProvider) Describe(_ context.Context, player roster.Player) (string, error) {
	return FallbackDescription(player), nil
}

// FallbackDescription builds a deterministic career summary from the
// player's stat line. Milestone thresholds decide which accolades the
// opening sentence mentions.
func FallbackDescription(p roster.Player) string {
	var achievements []string
	if p.HomeRuns > 500 {
		achievements = append(achievements, "home run powerhouse")
	}
	if p.Hits > 3000 {
		achievements = append(achievements, "hitting legend")
	}
	if p.AVG > 0.3 {
		achievements = append(achievements, "consistent high-average batter")
	}
	if p.OBP > 0.4 {
		achievements = append(achievements, "on-base machine")
	}
	if p.SLG > 0.55 {
		achievements = append(achievements, "slugging specialist")
	}

	var opening string
	if len(achievements) > 0 {
		opening = fmt.Sprintf("Known as a %s.", strings.Join(achievements, " and "))
	} else {
		opening = fmt.Sprintf("A solid contributor at the %s position.", p.Position)
	}

	avg := int(math.Round(p.AVG * 1000))
	return fmt.Sprintf(
		"%s %s played %d games as a %s, collecting %d hits and %d home runs with a .%03d batting average. Career stats include %d RBIs and an OPS of %.3f.",
		opening, p.Name, p.Games, p.Position, p.Hits, p.HomeRuns, avg, p.RBI, p.OPS,
	)
}
