package service

import (
	"context"
	"options-tracker/config"
	"options-tracker/internal/repository"
	"options-tracker/pkg/logger"
	"time"

	"github.com/robfig/cron/v3"
)

// ExpirationSweeper flips open option trades past their expiration date to
// expired on a schedule. Expiration adds no ledger rows (the premium row is
// already there), so no rebuild happens here.
type ExpirationSweeper struct {
	cfg    *config.Config
	logger *logger.Logger
	repo   *repository.Repository
	cron   *cron.Cron
}

func NewExpirationSweeper(cfg *config.Config, log *logger.Logger, repo *repository.Repository) *ExpirationSweeper {
	return &ExpirationSweeper{
		cfg:    cfg,
		logger: log,
		repo:   repo,
		cron:   cron.New(),
	}
}

func (s *ExpirationSweeper) Start(ctx context.Context) error {
	if !s.cfg.Sweeper.Enabled {
		s.logger.Info("expiration sweeper disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.Sweeper.Schedule, func() {
		s.Sweep(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("expiration sweeper started",
		logger.StringField("schedule", s.cfg.Sweeper.Schedule))
	return nil
}

func (s *ExpirationSweeper) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
}

// Sweep runs one pass. Trades expiring today stay open until tomorrow's run;
// only strictly past expirations flip.
func (s *ExpirationSweeper) Sweep(ctx context.Context) {
	flipped, err := s.repo.TradeRepo.ExpireOpenPast(ctx, time.Now())
	if err != nil {
		s.logger.ErrorContext(ctx, "expiration sweep failed", logger.ErrorField(err))
		return
	}
	if flipped > 0 {
		s.logger.InfoContext(ctx, "expired stale open trades",
			logger.IntField("count", int(flipped)))
	}
}
