package models

import "time"

// TechniqueCategory classifies a technique by its purpose.
type TechniqueCategory string

// Technique category constants.
const (
	CategorySubmission TechniqueCategory = "submission"
	CategorySweep      TechniqueCategory = "sweep"
	CategoryPass       TechniqueCategory = "pass"
	CategoryEscape     TechniqueCategory = "escape"
	CategoryTakedown   TechniqueCategory = "takedown"
	CategoryGuard      TechniqueCategory = "guard"
	CategoryControl    TechniqueCategory = "control"
	CategoryTransition TechniqueCategory = "transition"
)

// TechniqueCategories lists all valid categories in display order.
var TechniqueCategories = []TechniqueCategory{
	CategorySubmission,
	CategorySweep,
	CategoryPass,
	CategoryEscape,
	CategoryTakedown,
	CategoryGuard,
	CategoryControl,
	CategoryTransition,
}

// Valid returns true if the category is a recognized value.
func (c TechniqueCategory) Valid() bool {
	for _, tc := range TechniqueCategories {
		if c == tc {
			return true
		}
	}
	return false
}

// Position identifies the starting position a technique is applied from.
type Position string

// Position constants.
const (
	PositionClosedGuard    Position = "closed-guard"
	PositionOpenGuard      Position = "open-guard"
	PositionHalfGuard      Position = "half-guard"
	PositionButterflyGuard Position = "butterfly-guard"
	PositionDeLaRiva       Position = "de-la-riva"
	PositionSpiderGuard    Position = "spider-guard"
	PositionLassoGuard     Position = "lasso-guard"
	PositionXGuard         Position = "x-guard"
	PositionDeepHalf       Position = "deep-half"
	PositionMount          Position = "mount"
	PositionSideControl    Position = "side-control"
	PositionBackControl    Position = "back-control"
	PositionTurtle         Position = "turtle"
	PositionStanding       Position = "standing"
	PositionNorthSouth     Position = "north-south"
	PositionKneeOnBelly    Position = "knee-on-belly"
	PositionCrucifix       Position = "crucifix"
	PositionOther          Position = "other"
)

// Positions lists all valid positions in display order.
var Positions = []Position{
	PositionClosedGuard, PositionOpenGuard, PositionHalfGuard,
	PositionButterflyGuard, PositionDeLaRiva, PositionSpiderGuard,
	PositionLassoGuard, PositionXGuard, PositionDeepHalf,
	PositionMount, PositionSideControl, PositionBackControl,
	PositionTurtle, PositionStanding, PositionNorthSouth,
	PositionKneeOnBelly, PositionCrucifix, PositionOther,
}

// Valid returns true if the position is a recognized value.
func (p Position) Valid() bool {
	for _, pos := range Positions {
		if p == pos {
			return true
		}
	}
	return false
}

// Proficiency bounds for a technique.
const (
	MinProficiency = 1
	MaxProficiency = 5
)

// Technique represents one entry in the personal technique library.
// ProficiencyLevel is a self-rating from 1 (drilling) to 5 (competition ready).
type Technique struct {
	ID               string
	Name             string
	Category         TechniqueCategory
	Position         Position
	GiOnly           bool
	Description      string
	Notes            string
	ProficiencyLevel int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
