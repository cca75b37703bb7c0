// Package store persists completed analyses in SQLite (modernc.org/sqlite)
// or PostgreSQL (lib/pq) through database/sql. One analysis row holds the
// constraints and statistics; its findings live in the finding table in
// canonical order.
package store
