package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/olivercappis/BJJ-diary/internal/models"
)

// InsertSession stores a new training session. A missing ID is generated
// and CreatedAt/UpdatedAt are stamped with the current time.
func (db *DB) InsertSession(s *models.Session) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	query := `
		INSERT INTO sessions (
			id, date, duration, type, focus, intensity, sparring_rounds,
			notes, gym, instructor, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.ExecContext(context.Background(), query,
		s.ID,
		s.Date.Unix(),
		s.Duration,
		string(s.Type),
		nullString(s.Focus),
		s.Intensity,
		s.SparringRounds,
		nullString(s.Notes),
		nullString(s.Gym),
		nullString(s.Instructor),
		s.CreatedAt.Unix(),
		s.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	return nil
}

// UpdateSession rewrites an existing session and bumps UpdatedAt.
func (db *DB) UpdateSession(s *models.Session) error {
	s.UpdatedAt = time.Now()

	query := `
		UPDATE sessions
		SET date = ?, duration = ?, type = ?, focus = ?, intensity = ?,
			sparring_rounds = ?, notes = ?, gym = ?, instructor = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := db.ExecContext(context.Background(), query,
		s.Date.Unix(),
		s.Duration,
		string(s.Type),
		nullString(s.Focus),
		s.Intensity,
		s.SparringRounds,
		nullString(s.Notes),
		nullString(s.Gym),
		nullString(s.Instructor),
		s.UpdatedAt.Unix(),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return fmt.Errorf("session not found: %s", s.ID)
	}

	return nil
}

// DeleteSession removes a session by ID.
func (db *DB) DeleteSession(id string) error {
	_, err := db.ExecContext(context.Background(), "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// GetSession retrieves a single session by ID. Returns nil when not found.
func (db *DB) GetSession(id string) (*models.Session, error) {
	query := sessionSelect + " WHERE id = ?"

	row := db.QueryRowContext(context.Background(), query, id)
	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// ListSessions returns all sessions, newest first.
func (db *DB) ListSessions() ([]models.Session, error) {
	query := sessionSelect + " ORDER BY date DESC"

	rows, err := db.QueryContext(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}

	return sessions, rows.Err()
}

const sessionSelect = `
	SELECT id, date, duration, type, focus, intensity, sparring_rounds,
		   notes, gym, instructor, created_at, updated_at
	FROM sessions`

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*models.Session, error) {
	var s models.Session
	var date, createdAt, updatedAt int64
	var sessionType string
	var focus, notes, gym, instructor sql.NullString

	err := row.Scan(
		&s.ID,
		&date,
		&s.Duration,
		&sessionType,
		&focus,
		&s.Intensity,
		&s.SparringRounds,
		&notes,
		&gym,
		&instructor,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Date = time.Unix(date, 0).Local()
	s.Type = models.SessionType(sessionType)
	s.Focus = focus.String
	s.Notes = notes.String
	s.Gym = gym.String
	s.Instructor = instructor.String
	s.CreatedAt = time.Unix(createdAt, 0).Local()
	s.UpdatedAt = time.Unix(updatedAt, 0).Local()

	return &s, nil
}
