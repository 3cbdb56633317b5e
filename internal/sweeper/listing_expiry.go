package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/tokenforge/chainledger/internal/adapter"
	"github.com/tokenforge/chainledger/internal/domain"
	"github.com/tokenforge/chainledger/internal/logger"
	"github.com/tokenforge/chainledger/internal/messaging"
	"github.com/tokenforge/chainledger/internal/store"
)

// ListingExpirySweeperConfig holds configuration for the listing expiry sweeper
type ListingExpirySweeperConfig struct {
	Interval        time.Duration // Time to sleep between sweep cycles
	BatchSize       int           // Listings to expire per cycle
	WorkerPoolSize  int           // Concurrent workers
	WorkerQueueSize int           // Pending expirations the pool may buffer
}

// listingExpirySweeper transitions overdue active listings to expired. It
// complements the lazy expiry performed on buy: a listing nobody tries to buy
// still leaves the active state within one sweep interval.
type listingExpirySweeper struct {
	config    *ListingExpirySweeperConfig
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewListingExpirySweeper creates a new listing expiry sweeper. The publisher
// may be nil; expiry notifications are then skipped.
func NewListingExpirySweeper(
	config *ListingExpirySweeperConfig,
	st store.Store,
	pub messaging.Publisher,
	clock adapter.Clock,
) Sweeper {
	return &listingExpirySweeper{
		config:    config,
		store:     st,
		publisher: pub,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *listingExpirySweeper) Name() string {
	return "listing-expiry-sweeper"
}

// Start begins the sweeper's main loop
func (s *listingExpirySweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting listing expiry sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Int("worker_queue_size", s.config.WorkerQueueSize),
	)

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Listing expiry sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Listing expiry sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *listingExpirySweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *listingExpirySweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping listing expiry sweeper")

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Listing expiry sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Listing expiry sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs a single sweep cycle
func (s *listingExpirySweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	runID := ulid.MustNewDefault(startTime).String()

	ids, err := s.listExpiredWithRetry(ctx, startTime)
	if err != nil {
		return fmt.Errorf("failed to list expired listings: %w", err)
	}

	if len(ids) == 0 {
		if !s.sleep(ctx, s.config.Interval) {
			return ctx.Err() // Interrupted during sleep
		}
		return nil
	}

	logger.InfoCtx(ctx, "Found overdue listings",
		zap.String("run_id", runID),
		zap.Int("count", len(ids)),
	)

	var expiredCount, raceCount atomic.Int32
	for _, id := range ids {
		s.pool.Submit(func() {
			changed, err := s.store.ExpireListing(ctx, id)
			if err != nil {
				logger.ErrorCtx(ctx, err, zap.Int64("listing_id", id))
				return
			}
			if !changed {
				// Lost the race to a buy, cancel or lazy expiry
				raceCount.Add(1)
				return
			}
			expiredCount.Add(1)
			s.notifyExpired(ctx, id)
		})
	}

	s.pool.StopAndWait()

	// Recreate pool for next cycle
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.String("run_id", runID),
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("overdue", len(ids)),
		zap.Int32("expired", expiredCount.Load()),
		zap.Int32("lost_races", raceCount.Load()),
	)

	if !s.sleep(ctx, s.config.Interval) {
		return ctx.Err()
	}
	return nil
}

// listExpiredWithRetry reads the overdue batch with exponential backoff so a
// transient store failure does not abort the cycle
func (s *listingExpirySweeper) listExpiredWithRetry(ctx context.Context, asOf time.Time) ([]int64, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 1 * time.Second
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = 2 * time.Minute
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5 // Add jitter to prevent thundering herd

	backoffWithContext := backoff.WithContext(b, ctx)

	var ids []int64
	operation := func() error {
		var err error
		ids, err = s.store.ListExpiredListingIDs(ctx, asOf, s.config.BatchSize)
		return err
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Overdue listing read failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoffWithContext, notifyOnError); err != nil {
		return nil, fmt.Errorf("failed after %d attempts: %w", attemptCount, err)
	}
	return ids, nil
}

// notifyExpired publishes a best-effort expiry notification
func (s *listingExpirySweeper) notifyExpired(ctx context.Context, listingID int64) {
	if s.publisher == nil {
		return
	}
	envelope := domain.EventEnvelope{
		Type:      "listing_expired",
		Data:      map[string]interface{}{"listing_id": listingID},
		Timestamp: s.clock.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, &envelope); err != nil {
		logger.ErrorCtx(ctx, err, zap.Int64("listing_id", listingID))
	}
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation or a stop request. Returns true if sleep completed normally.
func (s *listingExpirySweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
