package db

import (
	"testing"

	"github.com/olivercappis/BJJ-diary/internal/models"
)

func TestInsertTechnique(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	tech := &models.Technique{
		Name:             "Triangle from closed guard",
		Category:         models.CategorySubmission,
		Position:         models.PositionClosedGuard,
		GiOnly:           false,
		Description:      "Angle out before locking",
		ProficiencyLevel: 3,
	}

	if err := db.InsertTechnique(tech); err != nil {
		t.Fatalf("Failed to insert technique: %v", err)
	}
	if tech.ID == "" {
		t.Error("Expected generated ID")
	}

	got, err := db.GetTechnique(tech.ID)
	if err != nil {
		t.Fatalf("Failed to get technique: %v", err)
	}
	if got == nil {
		t.Fatal("Expected technique, got nil")
	}
	if got.Name != tech.Name || got.Category != models.CategorySubmission {
		t.Errorf("Round-tripped technique mismatch: %+v", got)
	}
	if got.GiOnly {
		t.Error("GiOnly should round-trip as false")
	}
	if got.Description != "Angle out before locking" {
		t.Errorf("Description = %q", got.Description)
	}
}

func TestInsertTechnique_DefaultProficiency(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	tech := &models.Technique{
		Name:     "Scissor sweep",
		Category: models.CategorySweep,
		Position: models.PositionClosedGuard,
	}
	if err := db.InsertTechnique(tech); err != nil {
		t.Fatalf("Failed to insert technique: %v", err)
	}

	got, err := db.GetTechnique(tech.ID)
	if err != nil {
		t.Fatalf("Failed to get technique: %v", err)
	}
	if got.ProficiencyLevel != models.MinProficiency {
		t.Errorf("ProficiencyLevel = %d, want %d", got.ProficiencyLevel, models.MinProficiency)
	}
}

func TestGetTechnique_NotFound(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	got, err := db.GetTechnique("missing")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("Expected nil for missing technique, got %+v", got)
	}
}

func TestListTechniques_SortedByName(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	names := []string{"kimura", "Armbar", "berimbolo"}
	for _, name := range names {
		tech := &models.Technique{
			Name:     name,
			Category: models.CategorySubmission,
			Position: models.PositionOther,
		}
		if err := db.InsertTechnique(tech); err != nil {
			t.Fatalf("Failed to insert technique: %v", err)
		}
	}

	techniques, err := db.ListTechniques()
	if err != nil {
		t.Fatalf("Failed to list techniques: %v", err)
	}
	if len(techniques) != 3 {
		t.Fatalf("Expected 3 techniques, got %d", len(techniques))
	}

	// Case-insensitive name order.
	want := []string{"Armbar", "berimbolo", "kimura"}
	for i, tech := range techniques {
		if tech.Name != want[i] {
			t.Errorf("techniques[%d].Name = %q, want %q", i, tech.Name, want[i])
		}
	}
}

func TestUpdateTechnique(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	tech := &models.Technique{
		Name:             "Knee cut pass",
		Category:         models.CategoryPass,
		Position:         models.PositionHalfGuard,
		ProficiencyLevel: 2,
	}
	if err := db.InsertTechnique(tech); err != nil {
		t.Fatalf("Failed to insert technique: %v", err)
	}

	tech.ProficiencyLevel = 4
	tech.Notes = "drill the underhook first"
	if err := db.UpdateTechnique(tech); err != nil {
		t.Fatalf("Failed to update technique: %v", err)
	}

	got, err := db.GetTechnique(tech.ID)
	if err != nil {
		t.Fatalf("Failed to get technique: %v", err)
	}
	if got.ProficiencyLevel != 4 || got.Notes != "drill the underhook first" {
		t.Errorf("Update not persisted: %+v", got)
	}
}

func TestUpdateTechnique_NotFound(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	tech := &models.Technique{
		ID:       "missing",
		Name:     "Ghost",
		Category: models.CategoryEscape,
		Position: models.PositionMount,
	}
	if err := db.UpdateTechnique(tech); err == nil {
		t.Error("Expected error updating missing technique")
	}
}

func TestDeleteTechnique(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	tech := &models.Technique{
		Name:     "Heel hook",
		Category: models.CategorySubmission,
		Position: models.PositionOther,
		GiOnly:   false,
	}
	if err := db.InsertTechnique(tech); err != nil {
		t.Fatalf("Failed to insert technique: %v", err)
	}

	if err := db.DeleteTechnique(tech.ID); err != nil {
		t.Fatalf("Failed to delete technique: %v", err)
	}

	got, err := db.GetTechnique(tech.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != nil {
		t.Error("Expected technique to be deleted")
	}
}
