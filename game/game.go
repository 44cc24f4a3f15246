// Package game owns a single player's session: the market snapshot, the
// event log and the portfolio, advanced and traded one operation at a time.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rustyeddy/sectorsim/journal"
	"github.com/rustyeddy/sectorsim/market"
	"github.com/rustyeddy/sectorsim/pkg/id"
	"github.com/rustyeddy/sectorsim/portfolio"
	"github.com/rustyeddy/sectorsim/sim"
	"github.com/shopspring/decimal"
)

// DefaultLogView is how many log entries a player normally sees.
const DefaultLogView = 5

var ErrUnknownSector = errors.New("unknown sector")

type Option func(*Game)

func WithJournal(j journal.Journal) Option { return func(g *Game) { g.journal = j } }
func WithLogger(l *slog.Logger) Option      { return func(g *Game) { g.log = l } }
func WithRand(r sim.Rand) Option            { return func(g *Game) { g.rng = r } }
func WithCash(c decimal.Decimal) Option     { return func(g *Game) { g.cash = c } }
func WithSessionID(s string) Option         { return func(g *Game) { g.id = s } }
func WithClock(now func() time.Time) Option { return func(g *Game) { g.now = now } }

// Game serialises turns and trades behind one mutex. Callers only ever see
// copies of its state.
type Game struct {
	mu sync.Mutex

	id     string
	engine *sim.Engine
	rng    sim.Rand
	cash   decimal.Decimal

	snap   sim.Snapshot
	ledger *portfolio.Ledger
	events []string // newest first

	journal journal.Journal
	log     *slog.Logger
	now     func() time.Time
}

// New starts a session: sectors are sampled and the ledger funded.
func New(engine *sim.Engine, opts ...Option) *Game {
	g := &Game{
		engine:  engine,
		cash:    portfolio.DefaultCash,
		journal: journal.Nop{},
		now:     time.Now,
	}
	for _, o := range opts {
		o(g)
	}
	if g.id == "" {
		g.id = id.New()
	}
	if g.rng == nil {
		g.rng = sim.NewRand(0)
	}
	if g.log == nil {
		g.log = slog.Default()
	}
	g.log = g.log.With("session", g.id)

	g.ledger = portfolio.NewLedger(g.cash)
	g.snap = engine.InitSession(g.rng)
	g.log.Info("session started",
		"sectors", market.Names(g.snap.Sectors),
		"cash", g.cash.String(),
	)
	return g
}

func (g *Game) ID() string { return g.id }

func (g *Game) Turn() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snap.Turn
}

// Snapshot returns a copy of the current market.
func (g *Game) Snapshot() sim.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snap.Clone()
}

// Portfolio returns a copy of the ledger.
func (g *Game) Portfolio() *portfolio.Ledger {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ledger.Clone()
}

// Log returns up to n entries, newest first. n <= 0 returns all of them.
func (g *Game) Log(n int) []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n <= 0 || n > len(g.events) {
		n = len(g.events)
	}
	return append([]string(nil), g.events[:n]...)
}

// HoldingsValue marks the player's shares to current quotes.
func (g *Game) HoldingsValue() decimal.Decimal {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ledger.HoldingsValue(g.snap.Prices())
}

func (g *Game) NetWorth() decimal.Decimal {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ledger.NetWorth(g.snap.Prices())
}

// CanBuy reports whether one share of sector is affordable.
func (g *Game) CanBuy(sector string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.snap.Sector(sector)
	return ok && g.ledger.Affordable(s.Price) > 0
}

// CanSell reports whether any shares of sector are held.
func (g *Game) CanSell(sector string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ledger.Shares(sector) > 0
}

// NextTurn advances the market one turn and journals it. A journal error is
// returned after the turn has been applied.
func (g *Game) NextTurn(ctx context.Context) (sim.Report, error) {
	if err := ctx.Err(); err != nil {
		return sim.Report{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	next, rep := g.engine.AdvanceTurn(g.snap, g.rng)
	g.snap = next
	g.events = append([]string{rep.Entry}, g.events...)

	g.log.Debug("turn", "turn", rep.Turn, "entry", rep.Entry)
	if err := g.journal.RecordTurn(turnRecord(g.id, g.now(), next, rep)); err != nil {
		return rep, fmt.Errorf("journal turn %d: %w", rep.Turn, err)
	}
	return rep, nil
}

// Buy purchases qty shares of sector at its current quote.
func (g *Game) Buy(ctx context.Context, sector string, qty int) (journal.TradeRecord, error) {
	return g.trade(ctx, portfolio.Buy, sector, qty)
}

// Sell disposes of qty shares of sector at its current quote.
func (g *Game) Sell(ctx context.Context, sector string, qty int) (journal.TradeRecord, error) {
	return g.trade(ctx, portfolio.Sell, sector, qty)
}

func (g *Game) trade(ctx context.Context, side portfolio.Side, sector string, qty int) (journal.TradeRecord, error) {
	if err := ctx.Err(); err != nil {
		return journal.TradeRecord{}, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	s, ok := g.snap.Sector(sector)
	if !ok {
		return journal.TradeRecord{}, fmt.Errorf("%w: %q", ErrUnknownSector, sector)
	}

	var (
		fill portfolio.Fill
		err  error
	)
	if side == portfolio.Buy {
		fill, err = g.ledger.Buy(s.Name, s.Price, qty)
	} else {
		fill, err = g.ledger.Sell(s.Name, s.Price, qty)
	}
	if err != nil {
		g.log.Debug("trade rejected", "side", side, "sector", sector, "qty", qty, "err", err)
		return journal.TradeRecord{}, err
	}

	rec := journal.TradeRecord{
		TradeID:   id.New(),
		SessionID: g.id,
		Turn:      g.snap.Turn,
		Time:      g.now(),
		Sector:    fill.Sector,
		Side:      string(fill.Side),
		Quantity:  fill.Quantity,
		Price:     fill.Price,
		CashAfter: fill.CashAfter,
	}
	g.log.Info("trade", "side", side, "sector", sector, "qty", qty, "price", s.Price, "cash", fill.CashAfter.String())
	if err := g.journal.RecordTrade(rec); err != nil {
		return rec, fmt.Errorf("journal trade: %w", err)
	}
	return rec, nil
}

// Close flushes and closes the journal.
func (g *Game) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.journal.Close()
}

func turnRecord(session string, at time.Time, snap sim.Snapshot, rep sim.Report) journal.TurnRecord {
	rec := journal.TurnRecord{
		SessionID: session,
		Turn:      rep.Turn,
		Time:      at,
		EventKind: rep.Selection.Kind.String(),
		EventName: rep.Selection.Event.Name,
		Impact:    rep.Selection.Event.Impact,
		Entry:     rep.Entry,
		Sectors:   make([]journal.SectorRecord, 0, len(snap.Sectors)),
	}
	for _, s := range snap.Sectors {
		rec.Sectors = append(rec.Sectors, journal.SectorRecord{
			Name:      s.Name,
			Price:     s.Price,
			ShortEMA:  s.ShortEMA,
			LongEMA:   s.LongEMA,
			Momentum:  string(s.Momentum),
			Influence: s.Influence,
		})
	}
	return rec
}
