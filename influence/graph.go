// Package influence models how sectors trading above their starting quote
// nudge the drift of related sectors.
package influence

import (
	"fmt"
	"math"

	"github.com/rustyeddy/sectorsim/market"
)

// Step is the score contributed per unit of direction by one elevated
// related sector.
const Step = 0.02

// Graph maps a sector to the sectors it is sensitive to, each with a signed
// direction (usually +1 or -1).
type Graph map[string]map[string]float64

// Related returns the relations registered for sector.
func (g Graph) Related(sector string) map[string]float64 {
	return g[sector]
}

// Score sums direction*Step over every related sector that is live and
// priced strictly above market.BaselinePrice. Related sectors missing from
// live contribute nothing.
func (g Graph) Score(sector string, live map[string]market.Price) float64 {
	rel := g[sector]
	if len(rel) == 0 {
		return 0
	}

	score := 0.0
	// fixed order keeps float sums reproducible
	for _, name := range market.SortedKeys(rel) {
		p, ok := live[name]
		if !ok || p <= market.BaselinePrice {
			continue
		}
		score += rel[name] * Step
	}
	return score
}

func (g Graph) Validate() error {
	for from, rel := range g {
		if from == "" {
			return fmt.Errorf("influence graph has an empty sector name")
		}
		for to, dir := range rel {
			if to == "" {
				return fmt.Errorf("influence %q: empty related sector name", from)
			}
			if math.IsNaN(dir) || math.IsInf(dir, 0) {
				return fmt.Errorf("influence %q -> %q: direction is not a finite number", from, to)
			}
		}
	}
	return nil
}
