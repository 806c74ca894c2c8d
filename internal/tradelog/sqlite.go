package tradelog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteJournal keeps an append-only audit copy of fills in SQLite.
// Nothing reads it back into a position book.
type SQLiteJournal struct {
	mu  sync.Mutex
	db  *sql.DB
	now func() time.Time
}

func OpenSQLite(dbPath string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal=WAL&_sync=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS trades (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id    TEXT NOT NULL,
		symbol      TEXT NOT NULL,
		side        TEXT NOT NULL,
		qty         INTEGER NOT NULL,
		price       TEXT NOT NULL,
		reason      TEXT,
		extra       TEXT,
		filled_at   DATETIME NOT NULL,
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_trades_symbol ON trades(symbol);
	CREATE INDEX IF NOT EXISTS idx_trades_filled_at ON trades(filled_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}
	return &SQLiteJournal{db: db, now: time.Now}, nil
}

func (j *SQLiteJournal) Record(ctx context.Context, e Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	var extra []byte
	if len(e.Extra) > 0 {
		extra, _ = json.Marshal(e.Extra)
	}
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO trades (order_id, symbol, side, qty, price, reason, extra, filled_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.OrderID, e.Symbol, e.Side, e.Qty, e.Price.StringFixed(2), e.Reason, string(extra), j.now().UTC(),
	)
	return err
}

// Count returns the number of journaled fills.
func (j *SQLiteJournal) Count(ctx context.Context) (int, error) {
	var n int
	err := j.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM trades`).Scan(&n)
	return n, err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
