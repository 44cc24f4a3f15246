// Package strategies trades a game automatically between turns.
package strategies

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rustyeddy/sectorsim/journal"
	"github.com/rustyeddy/sectorsim/portfolio"
	"github.com/rustyeddy/sectorsim/sim"
)

// Trader is the part of a game a strategy reads and trades through.
type Trader interface {
	Snapshot() sim.Snapshot
	Portfolio() *portfolio.Ledger
	Buy(ctx context.Context, sector string, qty int) (journal.TradeRecord, error)
	Sell(ctx context.Context, sector string, qty int) (journal.TradeRecord, error)
}

// TurnStrategy is called once after every completed turn.
type TurnStrategy interface {
	OnTurn(ctx context.Context, t Trader, rep sim.Report) error
}

// StrategyByName builds a fresh strategy. lot is the number of shares an
// entry buys.
func StrategyByName(name string, lot int) (TurnStrategy, error) {
	if lot < 1 {
		lot = 1
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "noop", "none":
		return NoopStrategy{}, nil

	case "ema-cross", "emacross":
		return NewEMACross(EMACrossConfigDefaults(lot)), nil

	case "dip", "buy-the-dip":
		return &DipBuyer{Lot: lot}, nil

	default:
		return nil, fmt.Errorf("unknown strategy %q (supported: noop, ema-cross, dip)", name)
	}
}

// buy purchases up to qty shares, scaling down to what cash allows. An
// unaffordable sector is skipped, not an error.
func buy(ctx context.Context, t Trader, sector string, qty int) error {
	s, ok := t.Snapshot().Sector(sector)
	if !ok {
		return nil
	}
	qty = min(qty, t.Portfolio().Affordable(s.Price))
	if qty < 1 {
		return nil
	}
	_, err := t.Buy(ctx, sector, qty)
	if errors.Is(err, portfolio.ErrInsufficientFunds) {
		return nil
	}
	return err
}

// sellAll disposes of every share held in sector.
func sellAll(ctx context.Context, t Trader, sector string) error {
	held := t.Portfolio().Shares(sector)
	if held < 1 {
		return nil
	}
	_, err := t.Sell(ctx, sector, held)
	return err
}
