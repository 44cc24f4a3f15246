package market

import (
	"fmt"
	"math"
	"slices"
)

// EventKind says which pool a turn's event was drawn from.
type EventKind int

const (
	NoEvent EventKind = iota
	Crisis
	News
)

func (k EventKind) String() string {
	switch k {
	case Crisis:
		return "crisis"
	case News:
		return "news"
	default:
		return "none"
	}
}

// Event is a scripted shock applied to the sectors it lists for one turn.
type Event struct {
	Name    string
	Affects []string
	// Impact is a signed fraction added to each affected sector's delta.
	Impact float64
}

// Affected reports whether the event lists sector.
func (e Event) Affected(sector string) bool {
	return slices.Contains(e.Affects, sector)
}

func (e Event) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("event has no name")
	}
	if len(e.Affects) == 0 {
		return fmt.Errorf("event %q affects no sectors", e.Name)
	}
	if math.IsNaN(e.Impact) || math.IsInf(e.Impact, 0) {
		return fmt.Errorf("event %q: impact is not a finite number", e.Name)
	}
	return nil
}
