// Package models defines data structures and domain types.
package models

import "time"

// SessionType categorizes a training session.
type SessionType string

// Session type constants matching the values stored in the database.
const (
	SessionGi           SessionType = "gi"
	SessionNoGi         SessionType = "no-gi"
	SessionOpenMat      SessionType = "open-mat"
	SessionPrivate      SessionType = "private"
	SessionCompTraining SessionType = "competition-training"
	SessionSeminar      SessionType = "seminar"
)

// SessionTypes lists all valid session types in display order.
var SessionTypes = []SessionType{
	SessionGi,
	SessionNoGi,
	SessionOpenMat,
	SessionPrivate,
	SessionCompTraining,
	SessionSeminar,
}

// Valid returns true if the session type is a recognized value.
func (t SessionType) Valid() bool {
	for _, st := range SessionTypes {
		if t == st {
			return true
		}
	}
	return false
}

// String returns the display name for a session type.
func (t SessionType) String() string {
	switch t {
	case SessionGi:
		return "Gi"
	case SessionNoGi:
		return "No-Gi"
	case SessionOpenMat:
		return "Open Mat"
	case SessionPrivate:
		return "Private"
	case SessionCompTraining:
		return "Comp Training"
	case SessionSeminar:
		return "Seminar"
	default:
		return string(t)
	}
}

// Session represents one logged training session.
// Intensity is 1-10, 0 meaning unrated.
type Session struct {
	ID             string
	Date           time.Time
	Duration       int // minutes
	Type           SessionType
	Focus          string
	Intensity      int
	SparringRounds int
	Notes          string
	Gym            string
	Instructor     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Rated returns true if the session has an intensity rating.
func (s *Session) Rated() bool {
	return s.Intensity > 0
}

// Hours returns the session length in hours.
func (s *Session) Hours() float64 {
	return float64(s.Duration) / 60.0
}
