// Package db manages the database connection
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"
)

// DB wraps the SQL database connection with application-specific methods.
type DB struct {
	*sql.DB
	path string
}

// New creates a new database connection and initializes the schema.
func New(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := sqlDB.PingContext(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db := &DB{
		DB:   sqlDB,
		path: path,
	}

	if err := db.configure(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	if err := db.createSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// configure sets up database pragmas for optimal performance.
func (db *DB) configure() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
		"PRAGMA temp_store=MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	return nil
}

// Dates are stored as unix seconds and converted back to local time on read.
func (db *DB) createSchema() error {
	if err := db.createSessionsTable(); err != nil {
		return err
	}
	if err := db.createTechniquesTable(); err != nil {
		return err
	}
	if err := db.createTournamentsTable(); err != nil {
		return err
	}
	return db.createMatchesTable()
}

func (db *DB) createSessionsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		date INTEGER NOT NULL,
		duration INTEGER NOT NULL,
		type TEXT NOT NULL,
		focus TEXT,
		intensity INTEGER DEFAULT 0,
		sparring_rounds INTEGER DEFAULT 0,
		notes TEXT,
		gym TEXT,
		instructor TEXT,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date);
	`
	_, err := db.ExecContext(context.Background(), query)
	return err
}

func (db *DB) createTechniquesTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS techniques (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		position TEXT NOT NULL,
		gi_only INTEGER DEFAULT 0,
		description TEXT,
		notes TEXT,
		proficiency_level INTEGER DEFAULT 1,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_techniques_category ON techniques(category);
	`
	_, err := db.ExecContext(context.Background(), query)
	return err
}

func (db *DB) createTournamentsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS tournaments (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		organization TEXT,
		date INTEGER NOT NULL,
		location TEXT,
		type TEXT NOT NULL,
		weight_class TEXT NOT NULL,
		division TEXT NOT NULL,
		belt_rank TEXT NOT NULL,
		age_class TEXT NOT NULL,
		placement INTEGER DEFAULT 0,
		total_competitors INTEGER DEFAULT 0,
		notes TEXT,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_tournaments_date ON tournaments(date);
	`
	_, err := db.ExecContext(context.Background(), query)
	return err
}

func (db *DB) createMatchesTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		tournament_id TEXT NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
		opponent_name TEXT,
		result TEXT NOT NULL,
		method TEXT,
		my_score INTEGER DEFAULT 0,
		opponent_score INTEGER DEFAULT 0,
		notes TEXT,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_matches_tournament ON matches(tournament_id);
	`
	_, err := db.ExecContext(context.Background(), query)
	return err
}

// Vacuum reclaims unused space in the database file.
func (db *DB) Vacuum() error {
	_, err := db.ExecContext(context.Background(), "VACUUM")
	return err
}

// nullString returns a sql.NullString from a string.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
