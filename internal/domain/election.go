package domain

import (
	"time"

	"github.com/google/uuid"
)

// PositionID identifies an electable position, e.g. "president".
type PositionID string

// CandidateID identifies a candidate within one position.
type CandidateID string

// Candidate standing for a position.
type Candidate struct {
	ID   CandidateID `json:"id"   yaml:"id"`
	Name string      `json:"name" yaml:"name"`
}

// Position is an electable role with a fixed, ordered candidate list.
type Position struct {
	ID         PositionID  `json:"id"         yaml:"id"`
	Title      string      `json:"title"      yaml:"title"`
	Candidates []Candidate `json:"candidates" yaml:"candidates"`
}

// Candidate returns the candidate with the given id.
func (p Position) Candidate(id CandidateID) (Candidate, bool) {
	for _, c := range p.Candidates {
		if c.ID == id {
			return c, true
		}
	}
	return Candidate{}, false
}

// Selections maps every position to the chosen candidate.
type Selections map[PositionID]CandidateID

// Vote is a single (position, candidate) increment.
type Vote struct {
	PositionID  PositionID
	CandidateID CandidateID
}

// TallyCounts holds raw stored counts keyed by position and candidate,
// before normalization against the catalog.
type TallyCounts map[PositionID]map[CandidateID]int64

// VoterRecord is the durable proof that a principal has voted.
type VoterRecord struct {
	PrincipalID    uuid.UUID
	Email          string
	VotedAt        time.Time
	PositionsVoted []PositionID
	TotalVotes     int
}

// TallyEntry is the count of one candidate.
type TallyEntry struct {
	CandidateID   CandidateID `json:"candidateId"`
	CandidateName string      `json:"candidateName"`
	Count         int64       `json:"count"`
}

// Tally holds the counts of one position in catalog candidate order.
type Tally struct {
	PositionID PositionID   `json:"positionId"`
	Entries    []TallyEntry `json:"entries"`
}

// Count returns the votes recorded for the candidate, 0 when absent.
func (t Tally) Count(id CandidateID) int64 {
	for _, e := range t.Entries {
		if e.CandidateID == id {
			return e.Count
		}
	}
	return 0
}

// SubmitOutcome is returned after a ballot has been recorded.
type SubmitOutcome struct {
	VoterRecord VoterRecord
}

// PositionStat is a per-position counter for the admin dashboard.
type PositionStat struct {
	PositionID PositionID
	Title      string
	TotalVotes int64
}

// ElectionStats summarises turnout.
type ElectionStats struct {
	Voters     int64
	TotalVotes int64
	Positions  []PositionStat
}

// ResetResult reports what an administrative reset deleted.
type ResetResult struct {
	VotersDeleted    int64
	TallyRowsDeleted int64
}
