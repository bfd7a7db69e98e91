package models

import "time"

// BeltRank is the competitor's belt at the time of a tournament.
type BeltRank string

// Belt rank constants.
const (
	BeltWhite  BeltRank = "white"
	BeltBlue   BeltRank = "blue"
	BeltPurple BeltRank = "purple"
	BeltBrown  BeltRank = "brown"
	BeltBlack  BeltRank = "black"
)

// BeltRanks lists all belt ranks in promotion order.
var BeltRanks = []BeltRank{BeltWhite, BeltBlue, BeltPurple, BeltBrown, BeltBlack}

// Valid returns true if the belt rank is a recognized value.
func (b BeltRank) Valid() bool {
	for _, br := range BeltRanks {
		if b == br {
			return true
		}
	}
	return false
}

// MatchResult is the outcome of a single match.
type MatchResult string

// Match result constants.
const (
	ResultWin  MatchResult = "win"
	ResultLoss MatchResult = "loss"
	ResultDraw MatchResult = "draw"
)

// Valid returns true if the result is a recognized value.
func (r MatchResult) Valid() bool {
	return r == ResultWin || r == ResultLoss || r == ResultDraw
}

// MatchMethod describes how a match was decided.
type MatchMethod string

// Match method constants.
const (
	MethodSubmission MatchMethod = "submission"
	MethodPoints     MatchMethod = "points"
	MethodAdvantages MatchMethod = "advantages"
	MethodPenalties  MatchMethod = "penalties"
	MethodDQ         MatchMethod = "dq"
	MethodInjury     MatchMethod = "injury"
)

// MatchMethods lists all match methods in display order.
var MatchMethods = []MatchMethod{
	MethodSubmission, MethodPoints, MethodAdvantages,
	MethodPenalties, MethodDQ, MethodInjury,
}

// Tournament represents one competition entry.
// Placement is 0 when no podium finish was recorded.
type Tournament struct {
	ID               string
	Name             string
	Organization     string
	Date             time.Time
	Location         string
	Type             SessionType // gi or no-gi
	WeightClass      string
	Division         string
	BeltRank         BeltRank
	AgeClass         string
	Placement        int
	TotalCompetitors int
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Match represents a single match within a tournament.
type Match struct {
	ID            string
	TournamentID  string
	OpponentName  string
	Result        MatchResult
	Method        MatchMethod
	MyScore       int
	OpponentScore int
	Notes         string
	CreatedAt     time.Time
}
