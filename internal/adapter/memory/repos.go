package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/campus-ballot/internal/domain"
)

// TallyRepo is the tally view of a Store.
type TallyRepo struct {
	s *Store
}

// Increment adds one vote per entry, creating missing counters.
func (r *TallyRepo) Increment(ctx context.Context, votes []domain.Vote) error {
	return r.s.run(ctx, "tally.increment", func(t *tx) error {
		for _, v := range votes {
			byCandidate, ok := r.s.tallies[v.PositionID]
			if !ok {
				byCandidate = map[domain.CandidateID]int64{}
				r.s.tallies[v.PositionID] = byCandidate
				pid := v.PositionID
				t.undo = append(t.undo, func() { delete(r.s.tallies, pid) })
			}

			prev, existed := byCandidate[v.CandidateID]
			byCandidate[v.CandidateID] = prev + 1

			pid, cid := v.PositionID, v.CandidateID
			t.undo = append(t.undo, func() {
				if m, ok := r.s.tallies[pid]; ok {
					if existed {
						m[cid] = prev
					} else {
						delete(m, cid)
					}
				}
			})
			t.changed = append(t.changed, v.PositionID)
		}
		return nil
	})
}

// CountsByPositions returns copies of the stored counts for ids.
func (r *TallyRepo) CountsByPositions(ctx context.Context, ids []domain.PositionID) (domain.TallyCounts, error) {
	out := domain.TallyCounts{}
	err := r.s.run(ctx, "tally.select", func(*tx) error {
		for _, id := range ids {
			if m, ok := r.s.tallies[id]; ok {
				out[id] = maps.Clone(m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// All returns a copy of every stored count.
func (r *TallyRepo) All(ctx context.Context) (domain.TallyCounts, error) {
	out := domain.TallyCounts{}
	err := r.s.run(ctx, "tally.select", func(*tx) error {
		for id, m := range r.s.tallies {
			out[id] = maps.Clone(m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Set overwrites a single counter. It exists so tests can plant values the
// increment path never produces, such as negative counts.
func (r *TallyRepo) Set(ctx context.Context, pid domain.PositionID, cid domain.CandidateID, votes int64) error {
	return r.s.run(ctx, "tally.set", func(t *tx) error {
		byCandidate, ok := r.s.tallies[pid]
		if !ok {
			byCandidate = map[domain.CandidateID]int64{}
			r.s.tallies[pid] = byCandidate
		}
		byCandidate[cid] = votes
		t.changed = append(t.changed, pid)
		return nil
	})
}

// DeleteAll removes every counter and returns how many were removed.
func (r *TallyRepo) DeleteAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.s.run(ctx, "tally.delete", func(t *tx) error {
		old := r.s.tallies
		for id, m := range old {
			n += int64(len(m))
			t.changed = append(t.changed, id)
		}
		r.s.tallies = domain.TallyCounts{}
		t.undo = append(t.undo, func() { r.s.tallies = old })
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// VoterRepo is the voter-record view of a Store.
type VoterRepo struct {
	s *Store
}

// Exists reports whether the principal has a record.
func (r *VoterRepo) Exists(ctx context.Context, principalID uuid.UUID) (bool, error) {
	var ok bool
	err := r.s.run(ctx, "voter.exists", func(*tx) error {
		_, ok = r.s.voters[principalID]
		return nil
	})
	return ok, err
}

// CreateIfAbsent stores rec unless the principal already has a record.
func (r *VoterRepo) CreateIfAbsent(ctx context.Context, rec domain.VoterRecord) (bool, error) {
	var created bool
	err := r.s.run(ctx, "voter.create", func(t *tx) error {
		if _, ok := r.s.voters[rec.PrincipalID]; ok {
			return nil
		}
		rec.PositionsVoted = slices.Clone(rec.PositionsVoted)
		r.s.voters[rec.PrincipalID] = rec
		id := rec.PrincipalID
		t.undo = append(t.undo, func() { delete(r.s.voters, id) })
		created = true
		return nil
	})
	return created, err
}

// Get returns the record of the principal.
func (r *VoterRepo) Get(ctx context.Context, principalID uuid.UUID) (*domain.VoterRecord, error) {
	var rec domain.VoterRecord
	err := r.s.run(ctx, "voter.get", func(*tx) error {
		v, ok := r.s.voters[principalID]
		if !ok {
			return fmt.Errorf("voter %s: %w", principalID, domain.ErrNotFound)
		}
		rec = v
		rec.PositionsVoted = slices.Clone(v.PositionsVoted)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Count returns the number of records.
func (r *VoterRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.s.run(ctx, "voter.count", func(*tx) error {
		n = int64(len(r.s.voters))
		return nil
	})
	return n, err
}

// DeleteAll removes every record and returns how many were removed.
func (r *VoterRepo) DeleteAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.s.run(ctx, "voter.delete", func(t *tx) error {
		old := r.s.voters
		n = int64(len(old))
		r.s.voters = make(map[uuid.UUID]domain.VoterRecord)
		t.undo = append(t.undo, func() { r.s.voters = old })
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
