// Package portfolio keeps the player's cash and share counts.
package portfolio

import (
	"errors"
	"fmt"

	"github.com/rustyeddy/sectorsim/market"
	"github.com/shopspring/decimal"
)

// DefaultCash is a new player's starting balance.
var DefaultCash = decimal.NewFromInt(1000)

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientShares = errors.New("insufficient shares")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
)

// Side is the direction of a trade.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Fill is an executed trade.
type Fill struct {
	Sector    string
	Side      Side
	Quantity  int
	Price     market.Price
	CashAfter decimal.Decimal
}

// Ledger is a cash balance plus share counts. Trades fill instantly at the
// quoted price. A rejected trade leaves the ledger unchanged. Ledger is not
// safe for concurrent use; the owning game serialises access.
type Ledger struct {
	cash     decimal.Decimal
	holdings map[string]int
}

func NewLedger(cash decimal.Decimal) *Ledger {
	return &Ledger{cash: cash, holdings: make(map[string]int)}
}

func (l *Ledger) Cash() decimal.Decimal { return l.cash }

// Shares returns the number of shares held in sector.
func (l *Ledger) Shares(sector string) int { return l.holdings[sector] }

// Holdings returns a copy of every position ever opened, including ones
// sold down to zero.
func (l *Ledger) Holdings() map[string]int {
	out := make(map[string]int, len(l.holdings))
	for k, v := range l.holdings {
		out[k] = v
	}
	return out
}

// Buy purchases qty shares at price if cash covers the full cost.
func (l *Ledger) Buy(sector string, price market.Price, qty int) (Fill, error) {
	if qty <= 0 {
		return Fill{}, ErrInvalidQuantity
	}
	cost := decimal.NewFromInt(int64(price)).Mul(decimal.NewFromInt(int64(qty)))
	if l.cash.LessThan(cost) {
		return Fill{}, fmt.Errorf("buy %d %s at %d: %w", qty, sector, price, ErrInsufficientFunds)
	}

	l.cash = l.cash.Sub(cost)
	l.holdings[sector] += qty
	return Fill{Sector: sector, Side: Buy, Quantity: qty, Price: price, CashAfter: l.cash}, nil
}

// Sell disposes of qty shares at price if that many are held.
func (l *Ledger) Sell(sector string, price market.Price, qty int) (Fill, error) {
	if qty <= 0 {
		return Fill{}, ErrInvalidQuantity
	}
	if l.holdings[sector] < qty {
		return Fill{}, fmt.Errorf("sell %d %s: hold %d: %w", qty, sector, l.holdings[sector], ErrInsufficientShares)
	}

	proceeds := decimal.NewFromInt(int64(price)).Mul(decimal.NewFromInt(int64(qty)))
	l.cash = l.cash.Add(proceeds)
	l.holdings[sector] -= qty
	return Fill{Sector: sector, Side: Sell, Quantity: qty, Price: price, CashAfter: l.cash}, nil
}

// Affordable is the most shares cash can buy at price.
func (l *Ledger) Affordable(price market.Price) int {
	if price <= 0 {
		return 0
	}
	return int(l.cash.Div(decimal.NewFromInt(int64(price))).Floor().IntPart())
}

// HoldingsValue marks every position to prices. Positions in sectors with no
// quote are worth nothing.
func (l *Ledger) HoldingsValue(prices map[string]market.Price) decimal.Decimal {
	total := decimal.Zero
	for sector, qty := range l.holdings {
		p, ok := prices[sector]
		if !ok {
			continue
		}
		total = total.Add(decimal.NewFromInt(int64(p) * int64(qty)))
	}
	return total
}

// NetWorth is cash plus holdings marked to prices.
func (l *Ledger) NetWorth(prices map[string]market.Price) decimal.Decimal {
	return l.cash.Add(l.HoldingsValue(prices))
}

func (l *Ledger) Clone() *Ledger {
	return &Ledger{cash: l.cash, holdings: l.Holdings()}
}
