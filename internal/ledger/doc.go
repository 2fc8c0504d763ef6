// Package ledger persists match sweep points to a local SQLite database
// via github.com/jmoiron/sqlx over modernc.org/sqlite (pure Go, no cgo —
// chosen over github.com/mattn/go-sqlite3 for exactly that reason). The
// ledger is the durable record of every point a match sweep tries,
// queryable after the fact.
package ledger
