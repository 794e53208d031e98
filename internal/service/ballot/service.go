// Package ballot records ballots and serves live tallies.
package ballot

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/campus-ballot/internal/catalog"
	"github.com/heartmarshall/campus-ballot/internal/config"
	"github.com/heartmarshall/campus-ballot/internal/domain"
	"github.com/heartmarshall/campus-ballot/internal/tallyfeed"
)

const (
	maxBatch    = 100
	loadTimeout = 5 * time.Second
	retryDelay  = time.Second
)

type tallyRepo interface {
	Increment(ctx context.Context, votes []domain.Vote) error
	CountsByPositions(ctx context.Context, ids []domain.PositionID) (domain.TallyCounts, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type voterRepo interface {
	Exists(ctx context.Context, principalID uuid.UUID) (bool, error)
	CreateIfAbsent(ctx context.Context, rec domain.VoterRecord) (bool, error)
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// principalSource re-reads identity state from the user store.
type principalSource interface {
	ForceRefreshPrincipal(ctx context.Context, userID uuid.UUID) (*domain.Principal, error)
}

type changeFeed interface {
	Subscribe() *tallyfeed.Subscription
}

// Service is the ballot store: it accepts one ballot per principal and
// publishes normalized tallies.
type Service struct {
	log         *slog.Logger
	tallies     tallyRepo
	voters      voterRepo
	tx          txManager
	principals  principalSource
	feed        changeFeed
	catalog     *catalog.Catalog
	emailDomain string
	loader      *dataloader.Loader[domain.PositionID, domain.Tally]
	retryDelay  time.Duration
	now         func() time.Time
}

// NewService creates a ballot service. All subscriptions share one
// non-caching loader, so reloads triggered by the same notification are
// fetched with a single query.
func NewService(
	logger *slog.Logger,
	tallies tallyRepo,
	voters voterRepo,
	tx txManager,
	principals principalSource,
	feed changeFeed,
	cat *catalog.Catalog,
	election config.ElectionConfig,
	realtime config.RealtimeConfig,
) *Service {
	s := &Service{
		log:         logger.With("service", "ballot"),
		tallies:     tallies,
		voters:      voters,
		tx:          tx,
		principals:  principals,
		feed:        feed,
		catalog:     cat,
		emailDomain: election.AllowedEmailDomain,
		retryDelay:  retryDelay,
		now:         time.Now,
	}

	s.loader = dataloader.NewBatchedLoader(
		s.batchTallies,
		dataloader.WithWait[domain.PositionID, domain.Tally](realtime.LoaderWait),
		dataloader.WithBatchCapacity[domain.PositionID, domain.Tally](maxBatch),
		dataloader.WithCache[domain.PositionID, domain.Tally](&dataloader.NoCache[domain.PositionID, domain.Tally]{}),
	)
	return s
}

// Catalog returns the positions voters choose from.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// batchTallies loads the tallies of a batch of positions. The batch outlives
// the subscription that opened it, so it runs on a detached context.
func (s *Service) batchTallies(ctx context.Context, keys []domain.PositionID) []*dataloader.Result[domain.Tally] {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
	defer cancel()

	results := make([]*dataloader.Result[domain.Tally], len(keys))

	counts, err := s.tallies.CountsByPositions(ctx, keys)
	if err != nil {
		err = domain.NewTransportError("ballot.loadTallies", err)
		for i := range results {
			results[i] = &dataloader.Result[domain.Tally]{Error: err}
		}
		return results
	}

	for i, key := range keys {
		results[i] = &dataloader.Result[domain.Tally]{Data: s.catalog.Normalize(key, counts[key])}
	}
	return results
}
