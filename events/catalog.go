// Package events holds the scripted crisis and news pools and picks at most
// one event per turn.
package events

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rustyeddy/sectorsim/market"
)

const (
	// NewsProbability is the chance a turn carries market news.
	NewsProbability = 0.4
	// CrisisProbability is the chance of a crisis on a turn without news.
	CrisisProbability = 0.25
)

// Rand is the randomness the selector draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Catalog is the pair of event pools.
type Catalog struct {
	crises []market.Event
	news   []market.Event
}

// NewCatalog validates and copies both pools. Either pool being empty is a
// configuration error.
func NewCatalog(crises, news []market.Event) (Catalog, error) {
	if len(crises) == 0 {
		return Catalog{}, fmt.Errorf("crisis catalog is empty")
	}
	if len(news) == 0 {
		return Catalog{}, fmt.Errorf("news catalog is empty")
	}
	for _, e := range crises {
		if err := e.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("crisis catalog: %w", err)
		}
	}
	for _, e := range news {
		if err := e.Validate(); err != nil {
			return Catalog{}, fmt.Errorf("news catalog: %w", err)
		}
	}
	return Catalog{crises: clone(crises), news: clone(news)}, nil
}

func (c Catalog) Crises() []market.Event { return clone(c.crises) }
func (c Catalog) News() []market.Event   { return clone(c.news) }

// Select makes the turn's single weighted draw: news with NewsProbability,
// otherwise a crisis with CrisisProbability, otherwise nothing. The chosen
// event is drawn uniformly from its pool. An empty pool (only possible on a
// zero Catalog) yields no event.
func (c Catalog) Select(r Rand) Selection {
	if r.Float64() < NewsProbability {
		return pick(market.News, c.news, r)
	}
	if r.Float64() < CrisisProbability {
		return pick(market.Crisis, c.crises, r)
	}
	return Selection{}
}

func pick(kind market.EventKind, pool []market.Event, r Rand) Selection {
	if len(pool) == 0 {
		return Selection{}
	}
	return Selection{Kind: kind, Event: pool[r.Intn(len(pool))]}
}

// Selection is the outcome of a turn's draw.
type Selection struct {
	Kind  market.EventKind
	Event market.Event
}

// Active reports whether an event fired.
func (s Selection) Active() bool { return s.Kind != market.NoEvent }

// Impact is the additive delta the event applies to sector, 0 when the
// sector is not listed or no event fired.
func (s Selection) Impact(sector string) float64 {
	if !s.Active() || !s.Event.Affected(sector) {
		return 0
	}
	return s.Event.Impact
}

// String renders the turn's event log line.
func (s Selection) String() string {
	pct := strconv.FormatFloat(s.Event.Impact*100, 'f', 0, 64)
	affects := strings.Join(s.Event.Affects, ", ")
	switch s.Kind {
	case market.Crisis:
		return fmt.Sprintf("Crisis: %s affects %s (%s%%)", s.Event.Name, affects, pct)
	case market.News:
		return fmt.Sprintf("News: %s impacts %s (%s%%)", s.Event.Name, affects, pct)
	default:
		return "General market fluctuation"
	}
}

func clone(in []market.Event) []market.Event {
	out := make([]market.Event, len(in))
	for i, e := range in {
		e.Affects = append([]string(nil), e.Affects...)
		out[i] = e
	}
	return out
}
