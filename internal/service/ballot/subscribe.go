package ballot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/campus-ballot/internal/domain"
	"github.com/heartmarshall/campus-ballot/internal/tallyfeed"
)

// Unsubscribe stops a tally subscription. After it returns no further
// callback runs. It is safe to call more than once but must not be called
// from inside the callback.
type Unsubscribe func()

// SubscribeTallies delivers the current tally of every position once and
// then the fresh tally of each position that changes. Callbacks of one
// subscription run one at a time on a dedicated goroutine. The subscription
// also ends when ctx is cancelled.
func (s *Service) SubscribeTallies(ctx context.Context, onUpdate func(domain.Tally)) (Unsubscribe, error) {
	if onUpdate == nil {
		return nil, domain.NewValidationError("onUpdate", "required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Registering before the first load means a change made while it runs
	// is still seen afterwards.
	sub := s.feed.Subscribe()
	subCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer sub.Close()
		s.deliver(subCtx, sub, onUpdate)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}, nil
}

func (s *Service) deliver(ctx context.Context, sub *tallyfeed.Subscription, onUpdate func(domain.Tally)) {
	pending := s.catalog.PositionIDs()

	for {
		var retry <-chan time.Time
		if len(pending) > 0 {
			failed, ok := s.push(ctx, pending, onUpdate)
			if !ok {
				return
			}
			pending = failed
			if len(pending) > 0 {
				retry = time.After(s.retryDelay)
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-retry:
		case <-sub.Ready():
			pending = mergeIDs(pending, s.onBallot(sub.Drain()))
		}
	}
}

// push loads and delivers the tallies of ids. It returns the ids whose load
// failed, and false once the subscription is cancelled.
func (s *Service) push(ctx context.Context, ids []domain.PositionID, onUpdate func(domain.Tally)) ([]domain.PositionID, bool) {
	thunks := make([]dataloader.Thunk[domain.Tally], len(ids))
	for i, id := range ids {
		thunks[i] = s.loader.Load(ctx, id)
	}

	var failed []domain.PositionID
	for i, thunk := range thunks {
		t, err := await(ctx, thunk)
		if ctx.Err() != nil {
			return nil, false
		}
		if err != nil {
			s.log.WarnContext(ctx, "tally load failed",
				slog.String("position_id", string(ids[i])),
				slog.String("error", err.Error()))
			failed = append(failed, ids[i])
			continue
		}
		onUpdate(t)
	}
	return failed, true
}

// await resolves a thunk unless ctx ends first.
func await[V any](ctx context.Context, thunk dataloader.Thunk[V]) (V, error) {
	type result struct {
		v   V
		err error
	}
	ch := make(chan result, 1)
	go func() {
		v, err := thunk()
		ch <- result{v, err}
	}()

	select {
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	case r := <-ch:
		return r.v, r.err
	}
}

// onBallot drops positions the catalog does not list. The notification
// channel is shared with anything else writing tally rows.
func (s *Service) onBallot(ids []domain.PositionID) []domain.PositionID {
	out := ids[:0]
	for _, id := range ids {
		if _, ok := s.catalog.PositionByID(id); ok {
			out = append(out, id)
		}
	}
	return out
}

func mergeIDs(a, b []domain.PositionID) []domain.PositionID {
	if len(a) == 0 {
		return b
	}
	seen := make(map[domain.PositionID]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			a = append(a, id)
		}
	}
	return a
}
