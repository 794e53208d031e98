// Package tallyfeed fans tally change notifications out to subscribers.
//
// A notification only names the position that changed. Subscribers re-read
// the value themselves, so a burst of changes to one position collapses into
// a single pending entry and a slow subscriber never blocks a publisher.
package tallyfeed

import (
	"sync"

	"github.com/heartmarshall/campus-ballot/internal/domain"
)

// Hub is safe for concurrent use.
type Hub struct {
	positions []domain.PositionID

	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

// NewHub creates a hub. positions is the full set used by PublishAll.
func NewHub(positions []domain.PositionID) *Hub {
	return &Hub{
		positions: append([]domain.PositionID(nil), positions...),
		subs:      make(map[*Subscription]struct{}),
	}
}

// Publish marks the position as changed for every subscriber.
func (h *Hub) Publish(id domain.PositionID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.subs {
		s.mark(id)
	}
}

// PublishAll marks every known position as changed. Used after the upstream
// feed reconnects, when individual notifications may have been missed.
func (h *Hub) PublishAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.subs {
		for _, id := range h.positions {
			s.mark(id)
		}
	}
}

// Subscribe registers a new subscription. Changes published after Subscribe
// returns are guaranteed to be observed.
func (h *Hub) Subscribe() *Subscription {
	s := &Subscription{
		hub:     h,
		pending: make(map[domain.PositionID]struct{}),
		signal:  make(chan struct{}, 1),
	}

	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()

	return s
}

// Len returns the number of live subscriptions.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) remove(s *Subscription) {
	h.mu.Lock()
	delete(h.subs, s)
	h.mu.Unlock()
}

// Subscription collects changed positions until they are drained.
type Subscription struct {
	hub *Hub

	mu      sync.Mutex
	pending map[domain.PositionID]struct{}
	order   []domain.PositionID
	signal  chan struct{}
	once    sync.Once
}

// Ready receives a value whenever new changes are pending.
func (s *Subscription) Ready() <-chan struct{} {
	return s.signal
}

// Drain returns the pending positions in the order they first changed and
// clears the set.
func (s *Subscription) Drain() []domain.PositionID {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.order
	s.order = nil
	clear(s.pending)
	return out
}

// Close unregisters the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
	})
}

func (s *Subscription) mark(id domain.PositionID) {
	s.mu.Lock()
	if _, ok := s.pending[id]; !ok {
		s.pending[id] = struct{}{}
		s.order = append(s.order, id)
	}
	s.mu.Unlock()

	select {
	case s.signal <- struct{}{}:
	default:
	}
}
