package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// RecordTurn writes the turn and its sector rows in one transaction.
func (j *SQLite) RecordTurn(t TurnRecord) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO turns
		(session_id, turn, time, event_kind, event_name, impact, entry)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.SessionID, t.Turn, t.Time, t.EventKind, t.EventName, t.Impact, t.Entry,
	)
	if err != nil {
		return fmt.Errorf("insert turn %d: %w", t.Turn, err)
	}

	for _, s := range t.Sectors {
		_, err = tx.Exec(`
			INSERT INTO sector_prices
			(session_id, turn, sector, price, short_ema, long_ema, momentum, influence)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.SessionID, t.Turn, s.Name, s.Price, s.ShortEMA, s.LongEMA, s.Momentum, s.Influence,
		)
		if err != nil {
			return fmt.Errorf("insert %s price for turn %d: %w", s.Name, t.Turn, err)
		}
	}

	return tx.Commit()
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, session_id, turn, time, sector, side, quantity, price, cash_after)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.SessionID, t.Turn, t.Time, t.Sector, t.Side, t.Quantity, t.Price, t.CashAfter,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
