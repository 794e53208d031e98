// Package catalog is the read-only registry of positions and candidates.
// A Catalog is built once at start-up and never mutated afterwards, so it is
// safe for concurrent use without locking.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/campus-ballot/internal/domain"
)

//go:embed positions.yaml
var embedded []byte

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Catalog holds the ordered positions of the election.
type Catalog struct {
	positions []domain.Position
	index     map[domain.PositionID]int
}

type catalogFile struct {
	Positions []domain.Position `yaml:"positions"`
}

// Default returns the catalog compiled into the binary.
// It panics if the embedded file is malformed.
func Default() *Catalog {
	defaultOnce.Do(func() {
		defaultCat = MustLoad(bytes.NewReader(embedded))
	})
	return defaultCat
}

// FromFile loads a catalog from path, or returns Default when path is empty.
func FromFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// MustLoad is Load that panics on error.
func MustLoad(r io.Reader) *Catalog {
	c, err := Load(r)
	if err != nil {
		panic(err)
	}
	return c
}

// Load parses a YAML catalog and checks its structure.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return New(f.Positions)
}

// New builds a catalog from positions in ballot order.
func New(positions []domain.Position) (*Catalog, error) {
	if len(positions) == 0 {
		return nil, errors.New("catalog: no positions")
	}

	c := &Catalog{
		positions: make([]domain.Position, 0, len(positions)),
		index:     make(map[domain.PositionID]int, len(positions)),
	}

	for i, p := range positions {
		if strings.TrimSpace(string(p.ID)) == "" {
			return nil, fmt.Errorf("catalog: position #%d has no id", i+1)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate position %q", p.ID)
		}
		if len(p.Candidates) == 0 {
			return nil, fmt.Errorf("catalog: position %q has no candidates", p.ID)
		}

		seen := make(map[domain.CandidateID]struct{}, len(p.Candidates))
		for _, cand := range p.Candidates {
			if strings.TrimSpace(string(cand.ID)) == "" || strings.TrimSpace(cand.Name) == "" {
				return nil, fmt.Errorf("catalog: position %q has a candidate without id or name", p.ID)
			}
			if _, dup := seen[cand.ID]; dup {
				return nil, fmt.Errorf("catalog: position %q lists candidate %q twice", p.ID, cand.ID)
			}
			seen[cand.ID] = struct{}{}
		}

		cp := p
		cp.Candidates = append([]domain.Candidate(nil), p.Candidates...)
		c.index[p.ID] = len(c.positions)
		c.positions = append(c.positions, cp)
	}

	return c, nil
}

// AllPositions returns the positions in ballot order.
func (c *Catalog) AllPositions() []domain.Position {
	out := make([]domain.Position, len(c.positions))
	for i, p := range c.positions {
		out[i] = p
		out[i].Candidates = append([]domain.Candidate(nil), p.Candidates...)
	}
	return out
}

// PositionIDs returns the position ids in ballot order.
func (c *Catalog) PositionIDs() []domain.PositionID {
	ids := make([]domain.PositionID, len(c.positions))
	for i, p := range c.positions {
		ids[i] = p.ID
	}
	return ids
}

// Len returns the number of positions.
func (c *Catalog) Len() int { return len(c.positions) }

// PositionByID looks up a position.
func (c *Catalog) PositionByID(id domain.PositionID) (domain.Position, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Position{}, false
	}
	return c.positions[i], true
}

// CandidateByID scans every position and returns the first candidate with id.
func (c *Catalog) CandidateByID(id domain.CandidateID) (domain.Candidate, bool) {
	for _, p := range c.positions {
		if cand, ok := p.Candidate(id); ok {
			return cand, true
		}
	}
	return domain.Candidate{}, false
}

// Candidate looks up a candidate within a position.
func (c *Catalog) Candidate(pid domain.PositionID, cid domain.CandidateID) (domain.Candidate, bool) {
	p, ok := c.PositionByID(pid)
	if !ok {
		return domain.Candidate{}, false
	}
	return p.Candidate(cid)
}
