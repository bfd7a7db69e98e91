package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/olivercappis/BJJ-diary/internal/models"
)

// InsertTournament stores a new tournament entry.
func (db *DB) InsertTournament(t *models.Tournament) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `
		INSERT INTO tournaments (
			id, name, organization, date, location, type, weight_class,
			division, belt_rank, age_class, placement, total_competitors,
			notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.ExecContext(context.Background(), query,
		t.ID,
		t.Name,
		nullString(t.Organization),
		t.Date.Unix(),
		nullString(t.Location),
		string(t.Type),
		t.WeightClass,
		t.Division,
		string(t.BeltRank),
		t.AgeClass,
		t.Placement,
		t.TotalCompetitors,
		nullString(t.Notes),
		t.CreatedAt.Unix(),
		t.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert tournament: %w", err)
	}

	return nil
}

// UpdateTournament rewrites an existing tournament and bumps UpdatedAt.
func (db *DB) UpdateTournament(t *models.Tournament) error {
	t.UpdatedAt = time.Now()

	query := `
		UPDATE tournaments
		SET name = ?, organization = ?, date = ?, location = ?, type = ?,
			weight_class = ?, division = ?, belt_rank = ?, age_class = ?,
			placement = ?, total_competitors = ?, notes = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := db.ExecContext(context.Background(), query,
		t.Name,
		nullString(t.Organization),
		t.Date.Unix(),
		nullString(t.Location),
		string(t.Type),
		t.WeightClass,
		t.Division,
		string(t.BeltRank),
		t.AgeClass,
		t.Placement,
		t.TotalCompetitors,
		nullString(t.Notes),
		t.UpdatedAt.Unix(),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update tournament: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return fmt.Errorf("tournament not found: %s", t.ID)
	}

	return nil
}

// DeleteTournament removes a tournament and, via the foreign key cascade,
// all of its matches.
func (db *DB) DeleteTournament(id string) error {
	_, err := db.ExecContext(context.Background(), "DELETE FROM tournaments WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}
	return nil
}

// GetTournament retrieves a single tournament by ID. Returns nil when not found.
func (db *DB) GetTournament(id string) (*models.Tournament, error) {
	query := tournamentSelect + " WHERE id = ?"

	row := db.QueryRowContext(context.Background(), query, id)
	t, err := scanTournament(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}
	return t, nil
}

// ListTournaments returns all tournaments, newest first.
func (db *DB) ListTournaments() ([]models.Tournament, error) {
	query := tournamentSelect + " ORDER BY date DESC"

	rows, err := db.QueryContext(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tournaments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tournaments []models.Tournament
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tournament: %w", err)
		}
		tournaments = append(tournaments, *t)
	}

	return tournaments, rows.Err()
}

// InsertMatch stores a match result under a tournament.
func (db *DB) InsertMatch(m *models.Match) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now()

	query := `
		INSERT INTO matches (
			id, tournament_id, opponent_name, result, method,
			my_score, opponent_score, notes, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.ExecContext(context.Background(), query,
		m.ID,
		m.TournamentID,
		nullString(m.OpponentName),
		string(m.Result),
		nullString(string(m.Method)),
		m.MyScore,
		m.OpponentScore,
		nullString(m.Notes),
		m.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}

	return nil
}

// DeleteMatch removes a match by ID.
func (db *DB) DeleteMatch(id string) error {
	_, err := db.ExecContext(context.Background(), "DELETE FROM matches WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	return nil
}

// ListMatches returns the matches of one tournament in entry order.
func (db *DB) ListMatches(tournamentID string) ([]models.Match, error) {
	query := matchSelect + " WHERE tournament_id = ? ORDER BY created_at"

	rows, err := db.QueryContext(context.Background(), query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectMatches(rows)
}

// ListAllMatches returns every recorded match across all tournaments.
func (db *DB) ListAllMatches() ([]models.Match, error) {
	query := matchSelect + " ORDER BY created_at"

	rows, err := db.QueryContext(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectMatches(rows)
}

const tournamentSelect = `
	SELECT id, name, organization, date, location, type, weight_class,
		   division, belt_rank, age_class, placement, total_competitors,
		   notes, created_at, updated_at
	FROM tournaments`

const matchSelect = `
	SELECT id, tournament_id, opponent_name, result, method,
		   my_score, opponent_score, notes, created_at
	FROM matches`

func scanTournament(row scanner) (*models.Tournament, error) {
	var t models.Tournament
	var date, createdAt, updatedAt int64
	var tournamentType, beltRank string
	var organization, location, notes sql.NullString

	err := row.Scan(
		&t.ID,
		&t.Name,
		&organization,
		&date,
		&location,
		&tournamentType,
		&t.WeightClass,
		&t.Division,
		&beltRank,
		&t.AgeClass,
		&t.Placement,
		&t.TotalCompetitors,
		&notes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Organization = organization.String
	t.Date = time.Unix(date, 0).Local()
	t.Location = location.String
	t.Type = models.SessionType(tournamentType)
	t.BeltRank = models.BeltRank(beltRank)
	t.Notes = notes.String
	t.CreatedAt = time.Unix(createdAt, 0).Local()
	t.UpdatedAt = time.Unix(updatedAt, 0).Local()

	return &t, nil
}

func collectMatches(rows *sql.Rows) ([]models.Match, error) {
	var matches []models.Match
	for rows.Next() {
		var m models.Match
		var createdAt int64
		var result string
		var opponent, method, notes sql.NullString

		err := rows.Scan(
			&m.ID,
			&m.TournamentID,
			&opponent,
			&result,
			&method,
			&m.MyScore,
			&m.OpponentScore,
			&notes,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}

		m.OpponentName = opponent.String
		m.Result = models.MatchResult(result)
		m.Method = models.MatchMethod(method.String)
		m.Notes = notes.String
		m.CreatedAt = time.Unix(createdAt, 0).Local()
		matches = append(matches, m)
	}

	return matches, rows.Err()
}
