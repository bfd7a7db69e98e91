package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/olivercappis/BJJ-diary/internal/models"
)

// InsertTechnique stores a new technique library entry.
func (db *DB) InsertTechnique(t *models.Technique) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.ProficiencyLevel == 0 {
		t.ProficiencyLevel = models.MinProficiency
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `
		INSERT INTO techniques (
			id, name, category, position, gi_only, description, notes,
			proficiency_level, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.ExecContext(context.Background(), query,
		t.ID,
		t.Name,
		string(t.Category),
		string(t.Position),
		boolToInt(t.GiOnly),
		nullString(t.Description),
		nullString(t.Notes),
		t.ProficiencyLevel,
		t.CreatedAt.Unix(),
		t.UpdatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert technique: %w", err)
	}

	return nil
}

// UpdateTechnique rewrites an existing technique and bumps UpdatedAt.
func (db *DB) UpdateTechnique(t *models.Technique) error {
	t.UpdatedAt = time.Now()

	query := `
		UPDATE techniques
		SET name = ?, category = ?, position = ?, gi_only = ?, description = ?,
			notes = ?, proficiency_level = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := db.ExecContext(context.Background(), query,
		t.Name,
		string(t.Category),
		string(t.Position),
		boolToInt(t.GiOnly),
		nullString(t.Description),
		nullString(t.Notes),
		t.ProficiencyLevel,
		t.UpdatedAt.Unix(),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update technique: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return fmt.Errorf("technique not found: %s", t.ID)
	}

	return nil
}

// DeleteTechnique removes a technique by ID.
func (db *DB) DeleteTechnique(id string) error {
	_, err := db.ExecContext(context.Background(), "DELETE FROM techniques WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete technique: %w", err)
	}
	return nil
}

// GetTechnique retrieves a single technique by ID. Returns nil when not found.
func (db *DB) GetTechnique(id string) (*models.Technique, error) {
	query := techniqueSelect + " WHERE id = ?"

	row := db.QueryRowContext(context.Background(), query, id)
	t, err := scanTechnique(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get technique: %w", err)
	}
	return t, nil
}

// ListTechniques returns all techniques sorted by name.
func (db *DB) ListTechniques() ([]models.Technique, error) {
	query := techniqueSelect + " ORDER BY name COLLATE NOCASE"

	rows, err := db.QueryContext(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("failed to query techniques: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var techniques []models.Technique
	for rows.Next() {
		t, err := scanTechnique(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan technique: %w", err)
		}
		techniques = append(techniques, *t)
	}

	return techniques, rows.Err()
}

const techniqueSelect = `
	SELECT id, name, category, position, gi_only, description, notes,
		   proficiency_level, created_at, updated_at
	FROM techniques`

func scanTechnique(row scanner) (*models.Technique, error) {
	var t models.Technique
	var createdAt, updatedAt int64
	var category, position string
	var giOnly int
	var description, notes sql.NullString

	err := row.Scan(
		&t.ID,
		&t.Name,
		&category,
		&position,
		&giOnly,
		&description,
		&notes,
		&t.ProficiencyLevel,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Category = models.TechniqueCategory(category)
	t.Position = models.Position(position)
	t.GiOnly = giOnly != 0
	t.Description = description.String
	t.Notes = notes.String
	t.CreatedAt = time.Unix(createdAt, 0).Local()
	t.UpdatedAt = time.Unix(updatedAt, 0).Local()

	return &t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
