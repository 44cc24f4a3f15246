package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rustyeddy/sectorsim/journal"
	"github.com/rustyeddy/sectorsim/market"
	"github.com/rustyeddy/sectorsim/portfolio"
	"github.com/rustyeddy/sectorsim/sim"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testJournal struct {
	turns  []journal.TurnRecord
	trades []journal.TradeRecord
	closed bool
	err    error
}

func (j *testJournal) RecordTurn(rec journal.TurnRecord) error {
	j.turns = append(j.turns, rec)
	return j.err
}

func (j *testJournal) RecordTrade(rec journal.TradeRecord) error {
	j.trades = append(j.trades, rec)
	return j.err
}

func (j *testJournal) Close() error {
	j.closed = true
	return nil
}

var clock = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

func newGame(t *testing.T, opts ...Option) (*Game, *testJournal) {
	t.Helper()
	e, err := sim.New(sim.DefaultConfig())
	require.NoError(t, err)

	j := &testJournal{}
	base := []Option{
		WithJournal(j),
		WithRand(sim.NewRand(5)),
		WithSessionID("S1"),
		WithClock(clock),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	return New(e, append(base, opts...)...), j
}

func firstSector(t *testing.T, g *Game) market.Sector {
	t.Helper()
	snap := g.Snapshot()
	require.NotEmpty(t, snap.Sectors)
	return snap.Sectors[0]
}

func TestNewGame(t *testing.T) {
	g, _ := newGame(t)

	assert.Equal(t, "S1", g.ID())
	assert.Equal(t, 0, g.Turn())
	assert.Len(t, g.Snapshot().Sectors, market.DefaultSampleSize)
	assert.True(t, portfolio.DefaultCash.Equal(g.NetWorth()))
	assert.Empty(t, g.Log(0))
}

func TestNextTurnAdvancesAndJournals(t *testing.T) {
	g, j := newGame(t)
	ctx := context.Background()

	var entries []string
	for i := 0; i < 3; i++ {
		rep, err := g.NextTurn(ctx)
		require.NoError(t, err)
		assert.Equal(t, i+1, rep.Turn)
		entries = append([]string{rep.Entry}, entries...)
	}

	assert.Equal(t, 3, g.Turn())
	assert.Equal(t, entries, g.Log(0), "log is newest first")
	assert.Equal(t, entries[:2], g.Log(2))

	require.Len(t, j.turns, 3)
	last := j.turns[2]
	assert.Equal(t, "S1", last.SessionID)
	assert.Equal(t, 3, last.Turn)
	assert.Equal(t, entries[0], last.Entry)
	assert.True(t, last.Time.Equal(clock()))
	assert.Len(t, last.Sectors, market.DefaultSampleSize)

	snap := g.Snapshot()
	for i, s := range snap.Sectors {
		assert.Equal(t, s.Price, last.Sectors[i].Price)
		assert.Len(t, snap.History[s.Name], 4)
	}
}

func TestNextTurnJournalErrorKeepsTurn(t *testing.T) {
	g, j := newGame(t)
	j.err = errors.New("disk full")

	_, err := g.NextTurn(context.Background())
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, 1, g.Turn())
	assert.Len(t, g.Log(0), 1)
}

func TestNextTurnCancelledContext(t *testing.T) {
	g, j := newGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.NextTurn(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, g.Turn())
	assert.Empty(t, j.turns)
}

func TestBuySell(t *testing.T) {
	g, j := newGame(t)
	ctx := context.Background()
	s := firstSector(t, g)

	assert.True(t, g.CanBuy(s.Name))
	assert.False(t, g.CanSell(s.Name))

	rec, err := g.Buy(ctx, s.Name, 2)
	require.NoError(t, err)
	assert.Equal(t, "BUY", rec.Side)
	assert.Equal(t, s.Price, rec.Price)
	assert.True(t, decimal.NewFromInt(800).Equal(rec.CashAfter))
	assert.NotEmpty(t, rec.TradeID)
	assert.Equal(t, 2, g.Portfolio().Shares(s.Name))
	assert.True(t, g.CanSell(s.Name))
	assert.True(t, decimal.NewFromInt(200).Equal(g.HoldingsValue()))

	_, err = g.NextTurn(ctx)
	require.NoError(t, err)
	moved, _ := g.Snapshot().Sector(s.Name)

	rec, err = g.Sell(ctx, s.Name, 1)
	require.NoError(t, err)
	assert.Equal(t, moved.Price, rec.Price)
	assert.Equal(t, 1, rec.Turn)

	// one share left, marked at the new quote
	want := decimal.NewFromInt(800 + int64(moved.Price) + int64(moved.Price))
	assert.True(t, want.Equal(g.NetWorth()), "net worth %s want %s", g.NetWorth(), want)

	require.Len(t, j.trades, 2)
	assert.Equal(t, "SELL", j.trades[1].Side)
}

func TestTradeRejectionsLeaveStateUnchanged(t *testing.T) {
	g, j := newGame(t, WithCash(decimal.NewFromInt(150)))
	ctx := context.Background()
	s := firstSector(t, g)

	_, err := g.Buy(ctx, s.Name, 2)
	assert.ErrorIs(t, err, portfolio.ErrInsufficientFunds)

	_, err = g.Sell(ctx, s.Name, 1)
	assert.ErrorIs(t, err, portfolio.ErrInsufficientShares)

	_, err = g.Buy(ctx, "Atlantis", 1)
	assert.ErrorIs(t, err, ErrUnknownSector)

	assert.True(t, decimal.NewFromInt(150).Equal(g.Portfolio().Cash()))
	assert.Empty(t, g.Portfolio().Holdings())
	assert.Empty(t, j.trades)
}

func TestPortfolioIsACopy(t *testing.T) {
	g, _ := newGame(t)
	s := firstSector(t, g)

	p := g.Portfolio()
	_, err := p.Buy(s.Name, s.Price, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, g.Portfolio().Shares(s.Name))
}

func TestConcurrentTurnsAndTrades(t *testing.T) {
	g, _ := newGame(t, WithCash(decimal.NewFromInt(1_000_000)))
	ctx := context.Background()
	s := firstSector(t, g)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = g.NextTurn(ctx)
		}()
		go func() {
			defer wg.Done()
			_, _ = g.Buy(ctx, s.Name, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, g.Turn())
	assert.Len(t, g.Log(0), 10)
	assert.Equal(t, 10, g.Portfolio().Shares(s.Name))
}

func TestGameWithSQLiteJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.db")
	j, err := journal.NewSQLite(path)
	require.NoError(t, err)

	g, _ := newGame(t, WithJournal(j))
	ctx := context.Background()
	s := firstSector(t, g)

	_, err = g.Buy(ctx, s.Name, 1)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err = g.NextTurn(ctx)
		require.NoError(t, err)
	}

	series, err := j.PriceSeries("S1", s.Name)
	require.NoError(t, err)
	require.Len(t, series, 4)
	cur, _ := g.Snapshot().Sector(s.Name)
	assert.Equal(t, cur.Price, series[3].Price)

	trades, err := j.ListTrades("S1")
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, 0, trades[0].Turn)

	require.NoError(t, g.Close())
}
