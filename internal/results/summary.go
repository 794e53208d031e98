package results

import (
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/campus-ballot/internal/domain"
)

// CandidateResult is one row of a position's results.
type CandidateResult struct {
	CandidateID domain.CandidateID
	Name        string
	Votes       int64
	Percentage  decimal.Decimal
	Winner      bool
}

// PositionResult holds the derived results of one position.
type PositionResult struct {
	PositionID domain.PositionID
	Title      string
	Total      int64
	Winner     *domain.TallyEntry
	Candidates []CandidateResult
}

// Summary is the admin view over all positions.
type Summary struct {
	Positions  []PositionResult
	TotalVotes int64
}

// Summarize computes results for positions in the given order. A position
// without a matching tally is reported with zero votes for every candidate.
func Summarize(positions []domain.Position, tallies []domain.Tally) Summary {
	byID := make(map[domain.PositionID]domain.Tally, len(tallies))
	for _, t := range tallies {
		byID[t.PositionID] = t
	}

	s := Summary{Positions: make([]PositionResult, 0, len(positions))}
	for _, p := range positions {
		t, ok := byID[p.ID]
		if !ok {
			t = zeroTally(p)
		}

		pr := PositionResult{
			PositionID: p.ID,
			Title:      p.Title,
			Total:      PositionTotal(t),
			Candidates: make([]CandidateResult, len(t.Entries)),
		}
		if w, ok := Winner(t); ok {
			pr.Winner = &w
		}
		for i, e := range t.Entries {
			pr.Candidates[i] = CandidateResult{
				CandidateID: e.CandidateID,
				Name:        e.CandidateName,
				Votes:       e.Count,
				Percentage:  Percentage(e.Count, pr.Total),
				Winner:      pr.Winner != nil && pr.Winner.CandidateID == e.CandidateID,
			}
		}

		s.TotalVotes += pr.Total
		s.Positions = append(s.Positions, pr)
	}
	return s
}

func zeroTally(p domain.Position) domain.Tally {
	t := domain.Tally{PositionID: p.ID, Entries: make([]domain.TallyEntry, len(p.Candidates))}
	for i, c := range p.Candidates {
		t.Entries[i] = domain.TallyEntry{CandidateID: c.ID, CandidateName: c.Name}
	}
	return t
}
