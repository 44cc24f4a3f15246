package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block, structured facts
// in a PROPERTIES drawer for easy search.
func FormatTradeOrg(t TradeRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** %s %d %s @ %d (%s)\n", t.Side, t.Quantity, t.Sector, t.Price, shortID(t.TradeID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":TRADE_ID: %s\n", t.TradeID)
	fmt.Fprintf(&b, ":SESSION: %s\n", t.SessionID)
	fmt.Fprintf(&b, ":TURN: %d\n", t.Turn)
	fmt.Fprintf(&b, ":TIME: %s\n", t.Time.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":SECTOR: %s\n", t.Sector)
	fmt.Fprintf(&b, ":SIDE: %s\n", t.Side)
	fmt.Fprintf(&b, ":QUANTITY: %d\n", t.Quantity)
	fmt.Fprintf(&b, ":PRICE: %d\n", t.Price)
	fmt.Fprintf(&b, ":CASH_AFTER: %s\n", t.CashAfter.StringFixed(2))
	b.WriteString(":END:\n")
	return b.String()
}

// FormatTurnOrg renders a turn with a table of sector quotes.
func FormatTurnOrg(t TurnRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Turn %d: %s\n", t.Turn, t.Entry)
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":SESSION: %s\n", t.SessionID)
	fmt.Fprintf(&b, ":TIME: %s\n", t.Time.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":EVENT_KIND: %s\n", t.EventKind)
	if t.EventName != "" {
		fmt.Fprintf(&b, ":EVENT: %s\n", t.EventName)
		fmt.Fprintf(&b, ":IMPACT: %.2f\n", t.Impact)
	}
	b.WriteString(":END:\n")
	if len(t.Sectors) == 0 {
		return b.String()
	}

	b.WriteString("| sector | price | ema3 | ema7 | momentum |\n")
	b.WriteString("|-\n")
	for _, s := range t.Sectors {
		fmt.Fprintf(&b, "| %s | %d | %.2f | %.2f | %s |\n", s.Name, s.Price, s.ShortEMA, s.LongEMA, s.Momentum)
	}
	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []TradeRecord) string {
	parts := make([]string, len(trades))
	for i, t := range trades {
		parts[i] = FormatTradeOrg(t)
	}
	return strings.Join(parts, "\n")
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
