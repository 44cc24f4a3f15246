package journal

const Schema = `
CREATE TABLE IF NOT EXISTS turns (
	session_id TEXT NOT NULL,
	turn INTEGER NOT NULL,
	time DATETIME NOT NULL,
	event_kind TEXT NOT NULL,
	event_name TEXT NOT NULL,
	impact REAL NOT NULL,
	entry TEXT NOT NULL,
	PRIMARY KEY (session_id, turn)
);

CREATE TABLE IF NOT EXISTS sector_prices (
	session_id TEXT NOT NULL,
	turn INTEGER NOT NULL,
	sector TEXT NOT NULL,
	price INTEGER NOT NULL,
	short_ema REAL NOT NULL,
	long_ema REAL NOT NULL,
	momentum TEXT NOT NULL,
	influence REAL NOT NULL,
	PRIMARY KEY (session_id, turn, sector)
);

CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	turn INTEGER NOT NULL,
	time DATETIME NOT NULL,
	sector TEXT NOT NULL,
	side TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	price INTEGER NOT NULL,
	cash_after TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_session ON trades(session_id, turn);
`
