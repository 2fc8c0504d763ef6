package ledger

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sweep_points (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id             TEXT    NOT NULL,
	tolerance          REAL    NOT NULL,
	nmin               INTEGER NOT NULL,
	nmax               INTEGER NOT NULL,
	best_residual_hint REAL    NOT NULL,
	interfaces_found   INTEGER NOT NULL,
	elapsed_seconds    REAL    NOT NULL,
	created_at         DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_sweep_points_run_id ON sweep_points(run_id);
`

// SweepPoint is one (tolerance, Nmin, Nmax) window a match sweep tried,
// plus what it found there.
type SweepPoint struct {
	RunID            string  `db:"run_id"`
	Tolerance        float64 `db:"tolerance"`
	Nmin             int64   `db:"nmin"`
	Nmax             int64   `db:"nmax"`
	BestResidualHint float64 `db:"best_residual_hint"`
	InterfacesFound  int     `db:"interfaces_found"`
	ElapsedSeconds   float64 `db:"elapsed_seconds"`
}

// Ledger is a handle to the sweep-point database. It is safe for
// concurrent use; sqlx.DB pools its own connections.
type Ledger struct {
	db *sqlx.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures the sweep_points table exists.
func Open(path string) (*Ledger, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("ledger: open %s: %w: %w", path, err, ErrLedgerUnavailable)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()

		return nil, fmt.Errorf("ledger: schema: %w: %w", err, ErrLedgerUnavailable)
	}

	return &Ledger{db: db}, nil
}

// Record appends one sweep point.
func (l *Ledger) Record(ctx context.Context, p SweepPoint) error {
	const q = `INSERT INTO sweep_points (run_id, tolerance, nmin, nmax, best_residual_hint, interfaces_found, elapsed_seconds)
	           VALUES (:run_id, :tolerance, :nmin, :nmax, :best_residual_hint, :interfaces_found, :elapsed_seconds)`

	if _, err := l.db.NamedExecContext(ctx, q, p); err != nil {
		return fmt.Errorf("ledger: record: %w: %w", err, ErrLedgerUnavailable)
	}

	return nil
}

// Best returns the sweep point for runID with the highest
// interfaces_found, ties broken by the lowest tolerance (the tightest
// window that still found something).
func (l *Ledger) Best(ctx context.Context, runID string) (SweepPoint, error) {
	const q = `SELECT run_id, tolerance, nmin, nmax, best_residual_hint, interfaces_found, elapsed_seconds
	           FROM sweep_points WHERE run_id = ?
	           ORDER BY interfaces_found DESC, tolerance ASC LIMIT 1`

	var p SweepPoint
	if err := l.db.GetContext(ctx, &p, q, runID); err != nil {
		return SweepPoint{}, fmt.Errorf("ledger: best: %w: %w", err, ErrLedgerUnavailable)
	}

	return p, nil
}

// Close releases the underlying database handle.
func (l *Ledger) Close() error {
	return l.db.Close()
}
