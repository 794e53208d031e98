package catalog

import (
	"github.com/heartmarshall/campus-ballot/internal/domain"
)

// CheckSelections verifies that sel names exactly one known candidate for
// every position and nothing else. The error wraps domain.ErrIncompleteBallot.
func (c *Catalog) CheckSelections(sel domain.Selections) error {
	for _, p := range c.positions {
		cid, ok := sel[p.ID]
		if !ok || cid == "" {
			return &domain.BallotError{
				Kind:       domain.ErrIncompleteBallot,
				PositionID: p.ID,
				Detail:     "no candidate selected",
			}
		}
		if _, ok := p.Candidate(cid); !ok {
			return &domain.BallotError{
				Kind:       domain.ErrIncompleteBallot,
				PositionID: p.ID,
				Detail:     "unknown candidate " + string(cid),
			}
		}
	}

	if len(sel) != len(c.positions) {
		for pid := range sel {
			if _, ok := c.index[pid]; !ok {
				return &domain.BallotError{
					Kind:       domain.ErrIncompleteBallot,
					PositionID: pid,
					Detail:     "unknown position",
				}
			}
		}
	}

	return nil
}

// Normalize turns stored counts of one position into a Tally listing every
// candidate in catalog order. Missing candidates count 0, negative counts are
// coerced to 0 and keys the catalog does not know are dropped.
func (c *Catalog) Normalize(pid domain.PositionID, counts map[domain.CandidateID]int64) domain.Tally {
	t := domain.Tally{PositionID: pid, Entries: []domain.TallyEntry{}}

	p, ok := c.PositionByID(pid)
	if !ok {
		return t
	}

	t.Entries = make([]domain.TallyEntry, len(p.Candidates))
	for i, cand := range p.Candidates {
		n := counts[cand.ID]
		if n < 0 {
			n = 0
		}
		t.Entries[i] = domain.TallyEntry{
			CandidateID:   cand.ID,
			CandidateName: cand.Name,
			Count:         n,
		}
	}
	return t
}
