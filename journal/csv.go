package journal

import (
	"encoding/csv"
	"errors"
	"os"
	"strconv"
	"time"
)

var (
	turnsHeader  = []string{"session_id", "turn", "time", "event_kind", "event_name", "impact", "entry", "sector", "price", "short_ema", "long_ema", "momentum", "influence"}
	tradesHeader = []string{"trade_id", "session_id", "turn", "time", "sector", "side", "quantity", "price", "cash_after"}
)

// CSV writes turns (one row per sector per turn) and trades to two files.
type CSV struct {
	turns  *csv.Writer
	trades *csv.Writer
	tf, rf *os.File
}

func NewCSV(turnsPath, tradesPath string) (*CSV, error) {
	tf, err := os.Create(turnsPath)
	if err != nil {
		return nil, err
	}
	rf, err := os.Create(tradesPath)
	if err != nil {
		tf.Close()
		return nil, err
	}

	j := &CSV{turns: csv.NewWriter(tf), trades: csv.NewWriter(rf), tf: tf, rf: rf}
	if err := j.write(j.turns, turnsHeader); err != nil {
		j.closeFiles()
		return nil, err
	}
	if err := j.write(j.trades, tradesHeader); err != nil {
		j.closeFiles()
		return nil, err
	}
	return j, nil
}

func (j *CSV) RecordTurn(t TurnRecord) error {
	head := []string{
		t.SessionID,
		strconv.Itoa(t.Turn),
		t.Time.UTC().Format(time.RFC3339),
		t.EventKind,
		t.EventName,
		f(t.Impact),
		t.Entry,
	}

	// a turn with no sectors still gets a row
	if len(t.Sectors) == 0 {
		return j.write(j.turns, append(head, "", "", "", "", "", ""))
	}

	for _, s := range t.Sectors {
		row := append(append([]string(nil), head...),
			s.Name,
			strconv.Itoa(s.Price),
			f(s.ShortEMA),
			f(s.LongEMA),
			s.Momentum,
			f(s.Influence),
		)
		if err := j.turns.Write(row); err != nil {
			return err
		}
	}
	j.turns.Flush()
	return j.turns.Error()
}

func (j *CSV) RecordTrade(t TradeRecord) error {
	return j.write(j.trades, []string{
		t.TradeID,
		t.SessionID,
		strconv.Itoa(t.Turn),
		t.Time.UTC().Format(time.RFC3339),
		t.Sector,
		t.Side,
		strconv.Itoa(t.Quantity),
		strconv.Itoa(t.Price),
		t.CashAfter.StringFixed(2),
	})
}

func (j *CSV) Close() error {
	j.turns.Flush()
	j.trades.Flush()
	return errors.Join(j.turns.Error(), j.trades.Error(), j.closeFiles())
}

func (j *CSV) write(w *csv.Writer, row []string) error {
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (j *CSV) closeFiles() error {
	return errors.Join(j.tf.Close(), j.rf.Close())
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
