// Package journal records what happened in a session: every turn's event
// and quotes, and every trade the player made.
package journal

import (
	"time"

	"github.com/shopspring/decimal"
)

// SectorRecord is one sector's state at the end of a turn.
type SectorRecord struct {
	Name      string
	Price     int
	ShortEMA  float64
	LongEMA   float64
	Momentum  string
	Influence float64
}

// TurnRecord is one completed turn.
type TurnRecord struct {
	SessionID string
	Turn      int
	Time      time.Time
	EventKind string // none, crisis or news
	EventName string
	Impact    float64
	Entry     string // event log line
	Sectors   []SectorRecord
}

// TradeRecord is one executed buy or sell.
type TradeRecord struct {
	TradeID   string
	SessionID string
	Turn      int
	Time      time.Time
	Sector    string
	Side      string
	Quantity  int
	Price     int
	CashAfter decimal.Decimal
}

type Journal interface {
	RecordTurn(TurnRecord) error
	RecordTrade(TradeRecord) error
	Close() error
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordTurn(TurnRecord) error   { return nil }
func (Nop) RecordTrade(TradeRecord) error { return nil }
func (Nop) Close() error                  { return nil }
