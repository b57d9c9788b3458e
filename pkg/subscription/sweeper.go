package subscription

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

const sweepTimeout = 30 * time.Second

// Sweeper periodically flips subscriptions whose end date has passed to
// expired, then mirrors the change onto the owning users. The two bulk
// updates are deliberately separate statements; a failure between them leaves
// a stale user summary that the next run repairs, since the subscription row
// is the source of truth.
type Sweeper struct {
	repo     SubscriptionRepository
	interval time.Duration
	logger   zerolog.Logger
}

func NewSweeper(repo SubscriptionRepository, interval time.Duration, logger zerolog.Logger) *Sweeper {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Sweeper{
		repo:     repo,
		interval: interval,
		logger:   logger.With().Str("component", "subscription-sweeper").Logger(),
	}
}

// Start runs one sweep immediately, then on every tick until ctx is
// cancelled. Sweep errors are logged and the loop keeps running.
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("sweeper started")

	if err := s.RunOnce(ctx); err != nil {
		s.logger.Error().Err(err).Msg("sweep failed")
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("sweeper stopped")
			return
		case <-ticker.C:
			if err := s.RunOnce(ctx); err != nil {
				s.logger.Error().Err(err).Msg("sweep failed")
			}
		}
	}
}

// RunOnce performs a single expiry pass. The summary sweep matches on the
// summary columns, not this run's id list, so it also repairs summaries a
// previous run failed to update.
func (s *Sweeper) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	now := time.Now()
	ids, err := s.repo.FindExpiredIDs(ctx, now)
	if err != nil {
		return err
	}

	var subs int64
	if len(ids) > 0 {
		subs, err = s.repo.ExpireSubscriptions(ctx, ids)
		if err != nil {
			return err
		}
	}

	users, err := s.repo.ExpireUserSummaries(ctx, now)
	if err != nil {
		return err
	}

	if subs == 0 && users == 0 {
		s.logger.Debug().Msg("no subscriptions to expire")
		return nil
	}

	s.logger.Info().
		Int64("subscriptions", subs).
		Int64("users", users).
		Time("cutoff", now).
		Msg("expired subscriptions swept")
	return nil
}
