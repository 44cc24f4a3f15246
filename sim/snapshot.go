package sim

import (
	"github.com/rustyeddy/sectorsim/events"
	"github.com/rustyeddy/sectorsim/market"
)

// Snapshot is the full market state between turns. The engine never
// modifies a snapshot it is given; each turn returns a new one.
type Snapshot struct {
	Turn    int
	Sectors []market.Sector
	History map[string]market.History
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Turn:    s.Turn,
		Sectors: append([]market.Sector(nil), s.Sectors...),
		History: make(map[string]market.History, len(s.History)),
	}
	for name, h := range s.History {
		out.History[name] = h.Clone()
	}
	return out
}

// Sector looks up a live sector by name.
func (s Snapshot) Sector(name string) (market.Sector, bool) {
	for _, sec := range s.Sectors {
		if sec.Name == name {
			return sec, true
		}
	}
	return market.Sector{}, false
}

// Prices maps each live sector to its quote.
func (s Snapshot) Prices() map[string]market.Price {
	return market.PriceIndex(s.Sectors)
}

// Change is the sector's move over the last turn, 0 before the first turn.
func (s Snapshot) Change(name string) market.Price {
	return s.History[name].Change()
}

// Report describes what a turn did.
type Report struct {
	Turn      int
	Selection events.Selection
	// Hit lists the live sectors the event applied to, in roster order.
	Hit []string
	// Entry is the line appended to the event log.
	Entry string
}
