package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rustyeddy/sectorsim/game"
	"github.com/rustyeddy/sectorsim/market"
)

// printBoard writes the market table followed by the player's account.
func printBoard(w io.Writer, g *game.Game) {
	snap := g.Snapshot()
	book := g.Portfolio()

	fmt.Fprintf(w, "Turn %d\n", snap.Turn)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SECTOR\tVOL\tPRICE\tCHG\tEMA3\tEMA7\tTREND\tHELD")
	for _, s := range snap.Sectors {
		chg := snap.Change(s.Name)
		short, long := s.EMAText()
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s %+d\t%s\t%s\t%s\t%d\n",
			s.Name, s.Volatility, s.Price, market.Arrow(chg), chg, short, long, s.Momentum, book.Shares(s.Name))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nCash: $%s  Holdings: $%s  Net worth: $%s\n",
		book.Cash().StringFixed(2), g.HoldingsValue().StringFixed(2), g.NetWorth().StringFixed(2))
}

// printLog writes up to n recent log entries, newest first.
func printLog(w io.Writer, g *game.Game, n int) {
	entries := g.Log(n)
	if len(entries) == 0 {
		fmt.Fprintln(w, "No events yet.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "  %s\n", e)
	}
}
