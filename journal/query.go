package journal

import (
	"database/sql"
	"errors"
	"fmt"
)

// PricePoint is a sector's quote at the end of a turn.
type PricePoint struct {
	Turn  int
	Price int
}

const tradeColumns = `trade_id, session_id, turn, time, sector, side, quantity, price, cash_after`

func scanTrade(row interface{ Scan(...any) error }) (TradeRecord, error) {
	var rec TradeRecord
	err := row.Scan(
		&rec.TradeID,
		&rec.SessionID,
		&rec.Turn,
		&rec.Time,
		&rec.Sector,
		&rec.Side,
		&rec.Quantity,
		&rec.Price,
		&rec.CashAfter,
	)
	return rec, err
}

// GetTrade returns a single trade record by ID.
func (j *SQLite) GetTrade(tradeID string) (TradeRecord, error) {
	row := j.db.QueryRow(`SELECT `+tradeColumns+` FROM trades WHERE trade_id = ?`, tradeID)

	rec, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TradeRecord{}, fmt.Errorf("trade %q not found", tradeID)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// ListTrades returns a session's trades in the order they were made.
func (j *SQLite) ListTrades(sessionID string) ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+tradeColumns+`
		FROM trades
		WHERE session_id = ?
		ORDER BY turn ASC, trade_id ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTurns returns a session's turns without their sector rows.
func (j *SQLite) ListTurns(sessionID string) ([]TurnRecord, error) {
	rows, err := j.db.Query(`
		SELECT session_id, turn, time, event_kind, event_name, impact, entry
		FROM turns
		WHERE session_id = ?
		ORDER BY turn ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TurnRecord
	for rows.Next() {
		var rec TurnRecord
		if err := rows.Scan(
			&rec.SessionID,
			&rec.Turn,
			&rec.Time,
			&rec.EventKind,
			&rec.EventName,
			&rec.Impact,
			&rec.Entry,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// PriceSeries returns one sector's quote after every recorded turn.
func (j *SQLite) PriceSeries(sessionID, sector string) ([]PricePoint, error) {
	rows, err := j.db.Query(`
		SELECT turn, price
		FROM sector_prices
		WHERE session_id = ? AND sector = ?
		ORDER BY turn ASC`, sessionID, sector)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PricePoint
	for rows.Next() {
		var p PricePoint
		if err := rows.Scan(&p.Turn, &p.Price); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Sessions lists every session id with at least one recorded turn.
func (j *SQLite) Sessions() ([]string, error) {
	rows, err := j.db.Query(`SELECT DISTINCT session_id FROM turns ORDER BY session_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
