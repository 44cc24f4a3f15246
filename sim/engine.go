// Package sim advances the sector market one turn at a time.
//
// The engine is value-in/value-out: AdvanceTurn reads a Snapshot and returns
// a new one, so callers own all session state and can inject the randomness.
package sim

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/rustyeddy/sectorsim/events"
	"github.com/rustyeddy/sectorsim/indicators"
	"github.com/rustyeddy/sectorsim/market"
)

const (
	// UpProbability is the chance of an up move while the short trend leads.
	UpProbability = 0.65
	// DownTrendUpProbability is the chance of an up move otherwise.
	DownTrendUpProbability = 0.45
)

type Engine struct {
	cfg Config
	log *slog.Logger
}

// New validates cfg and returns an engine for it.
func New(cfg Config) (*Engine, error) {
	if cfg.HistoryLen == 0 {
		cfg.HistoryLen = market.DefaultHistoryLen
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Catalog = slices.Clone(cfg.Catalog)

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, log: logger.With("component", "sim")}, nil
}

func (e *Engine) Config() Config { return e.cfg }

// InitSession samples the configured number of sectors from the catalog.
func (e *Engine) InitSession(r Rand) Snapshot {
	snap := sample(e.cfg.Catalog, e.cfg.SampleSize, r)
	e.log.Debug("session initialised", "sectors", market.Names(snap.Sectors))
	return snap
}

// InitSession draws sampleSize distinct sectors from catalog. Every sector
// opens at market.BaselinePrice with a one-entry history.
func InitSession(catalog []market.Listing, sampleSize int, r Rand) (Snapshot, error) {
	if err := market.ValidateCatalog(catalog); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if sampleSize < 1 || sampleSize > len(catalog) {
		return Snapshot{}, fmt.Errorf("%w: sample size %d must be between 1 and %d", ErrConfig, sampleSize, len(catalog))
	}
	return sample(catalog, sampleSize, r), nil
}

func sample(catalog []market.Listing, n int, r Rand) Snapshot {
	picks := slices.Clone(catalog)
	r.Shuffle(len(picks), func(i, j int) { picks[i], picks[j] = picks[j], picks[i] })
	picks = picks[:n]

	snap := Snapshot{
		Sectors: make([]market.Sector, 0, n),
		History: make(map[string]market.History, n),
	}
	for _, l := range picks {
		hist := market.History{market.BaselinePrice}
		trend := indicators.TrendOf(hist)
		snap.Sectors = append(snap.Sectors, market.Sector{
			Name:       l.Name,
			Volatility: l.Volatility,
			Price:      market.BaselinePrice,
			ShortEMA:   trend.Short,
			LongEMA:    trend.Long,
			Momentum:   momentum(trend),
		})
		snap.History[l.Name] = hist
	}
	return snap
}

// AdvanceTurn runs one turn: a single event draw shared by every sector,
// then each sector is evolved against the pre-turn state, its new quote
// appended to its bounded history, and one log entry produced.
//
// An empty roster still draws an event and reports it.
func (e *Engine) AdvanceTurn(prev Snapshot, r Rand) (Snapshot, Report) {
	sel := e.cfg.Events.Select(r)
	live := prev.Prices()

	next := Snapshot{
		Turn:    prev.Turn + 1,
		Sectors: make([]market.Sector, 0, len(prev.Sectors)),
		History: make(map[string]market.History, len(prev.Sectors)),
	}
	rep := Report{Turn: next.Turn, Selection: sel, Entry: sel.String()}

	for _, s := range prev.Sectors {
		hist := prev.History[s.Name]
		if len(hist) == 0 {
			hist = market.History{s.Price}
		}
		ns := e.Evolve(s, hist, live, sel, r)
		next.Sectors = append(next.Sectors, ns)
		next.History[s.Name] = hist.Push(ns.Price, e.cfg.HistoryLen)
		if sel.Active() && sel.Event.Affected(s.Name) {
			rep.Hit = append(rep.Hit, s.Name)
		}
	}

	e.log.Debug("turn advanced",
		"turn", next.Turn,
		"event", sel.Kind.String(),
		"name", sel.Event.Name,
		"hit", rep.Hit,
		"sectors", len(next.Sectors),
	)
	return next, rep
}

// Evolve computes a sector's next quote and trend fields.
//
// The trend is read from hist before the new quote is appended, and the
// influence score from live, the quotes at the start of the turn.
func (e *Engine) Evolve(s market.Sector, hist market.History, live map[string]market.Price, sel events.Selection, r Rand) market.Sector {
	trend := indicators.TrendOf(hist)

	upProb := DownTrendUpProbability
	if trend.Up() {
		upProb = UpProbability
	}

	score := e.cfg.Influence.Score(s.Name, live)

	band := e.cfg.Volatility[s.Volatility]
	fluctuation := (r.Float64()*(band.Max-band.Min) + band.Min) / 100

	delta := -fluctuation
	if r.Float64() < upProb {
		delta = fluctuation
	}
	if e.cfg.ApplyInfluence {
		delta += score
	}
	delta += sel.Impact(s.Name)

	s.Price = market.ClampPrice(float64(s.Price) * (1 + delta))
	s.ShortEMA = trend.Short
	s.LongEMA = trend.Long
	s.Momentum = momentum(trend)
	s.Influence = score
	return s
}

func momentum(t indicators.Trend) market.Momentum {
	if t.Up() {
		return market.Bullish
	}
	return market.Bearish
}
