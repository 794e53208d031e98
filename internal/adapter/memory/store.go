// Package memory is an in-process ballot store with the same semantics as
// the PostgreSQL adapter. Transactions hold the store lock for their whole
// duration and undo their writes on error.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/campus-ballot/internal/domain"
)

type publisher interface {
	Publish(id domain.PositionID)
}

// Store holds tallies and voter records.
type Store struct {
	mu      sync.Mutex
	tallies domain.TallyCounts
	voters  map[uuid.UUID]domain.VoterRecord
	feed    publisher
	fault   func(op string) error
}

// New creates an empty store. feed may be nil.
func New(feed publisher) *Store {
	return &Store{
		tallies: domain.TallyCounts{},
		voters:  make(map[uuid.UUID]domain.VoterRecord),
		feed:    feed,
	}
}

// SetFault installs a hook consulted before every operation; a non-nil
// return fails that operation. Pass nil to clear it.
func (s *Store) SetFault(fn func(op string) error) {
	s.mu.Lock()
	s.fault = fn
	s.mu.Unlock()
}

// Tallies returns the tally repository view of the store.
func (s *Store) Tallies() *TallyRepo { return &TallyRepo{s: s} }

// Voters returns the voter repository view of the store.
func (s *Store) Voters() *VoterRepo { return &VoterRepo{s: s} }

// TxManager returns a transaction manager bound to the store.
func (s *Store) TxManager() *TxManager { return &TxManager{s: s} }

type txCtxKey struct{}

type tx struct {
	undo    []func()
	changed []domain.PositionID
}

func (t *tx) rollback() {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
	t.changed = nil
}

func txFromCtx(ctx context.Context) (*tx, bool) {
	t, ok := ctx.Value(txCtxKey{}).(*tx)
	return t, ok
}

// run executes fn under the store lock, joining the transaction in ctx
// when there is one.
func (s *Store) run(ctx context.Context, op string, fn func(t *tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if t, ok := txFromCtx(ctx); ok {
		if err := s.checkFault(op); err != nil {
			return err
		}
		return fn(t)
	}

	s.mu.Lock()
	t := &tx{}
	err := s.checkFault(op)
	if err == nil {
		err = fn(t)
	}
	if err != nil {
		t.rollback()
	}
	s.mu.Unlock()

	if err == nil {
		s.publish(t.changed)
	}
	return err
}

// checkFault must be called with s.mu held.
func (s *Store) checkFault(op string) error {
	if s.fault == nil {
		return nil
	}
	if err := s.fault(op); err != nil {
		return fmt.Errorf("memory %s: %w", op, err)
	}
	return nil
}

func (s *Store) publish(changed []domain.PositionID) {
	if s.feed == nil {
		return
	}
	seen := make(map[domain.PositionID]struct{}, len(changed))
	for _, id := range changed {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		s.feed.Publish(id)
	}
}

// TxManager runs functions atomically against a Store.
type TxManager struct {
	s *Store
}

// RunInTx executes fn with exclusive access to the store. If fn returns an
// error or panics, every write made through ctx is undone. Nested calls
// join the outer transaction.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}

	m.s.mu.Lock()
	t := &tx{}
	committed := false
	defer func() {
		if !committed {
			t.rollback()
			m.s.mu.Unlock()
		}
	}()

	if err := fn(context.WithValue(ctx, txCtxKey{}, t)); err != nil {
		return err
	}

	committed = true
	m.s.mu.Unlock()
	m.s.publish(t.changed)
	return nil
}
