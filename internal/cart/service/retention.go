package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ridloal/product-dashboard-api/internal/cart/repository"
	"github.com/ridloal/product-dashboard-api/internal/platform/logger"
	"github.com/robfig/cron/v3"
)

// RetentionSweeper deletes cart rows older than the configured retention.
// Whether abandoned carts should expire at all is a product decision, so the
// sweeper stays off until CART_RETENTION_DAYS is set.
type RetentionSweeper struct {
	repo      repository.CartRepository
	scheduler *cron.Cron
	retention time.Duration
	sweepSpec string
}

func NewRetentionSweeper(repo repository.CartRepository, retentionDays int, sweepSpec string) *RetentionSweeper {
	return &RetentionSweeper{
		repo:      repo,
		scheduler: cron.New(),
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		sweepSpec: sweepSpec,
	}
}

// Start schedules the sweep job. A non-positive retention disables the
// sweeper entirely.
func (s *RetentionSweeper) Start() error {
	if s.retention <= 0 {
		logger.Info("Cart retention sweeper disabled (no retention configured)")
		return nil
	}

	if _, err := s.scheduler.AddFunc(s.sweepSpec, func() {
		s.Sweep(context.Background())
	}); err != nil {
		return fmt.Errorf("could not schedule cart retention sweep: %w", err)
	}
	s.scheduler.Start()
	logger.Info(fmt.Sprintf("Cart retention sweeper started: spec '%s', retention %v", s.sweepSpec, s.retention))
	return nil
}

func (s *RetentionSweeper) Stop() {
	s.scheduler.Stop()
}

func (s *RetentionSweeper) Sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.retention)
	deleted, err := s.repo.DeleteItemsAddedBefore(ctx, cutoff)
	if err != nil {
		logger.Error("Sweep: failed to delete abandoned cart items", err)
		return
	}
	if deleted > 0 {
		logger.Info(fmt.Sprintf("Sweep: removed %d abandoned cart item(s) older than %v", deleted, cutoff))
	}
}
