package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/GeorgeWhittington/cinema-booking-app/internal/domain"
)

type revenueReporter interface {
	MonthlyRevenueByCinema(ctx context.Context, year int, month time.Month) ([]*domain.CinemaRevenue, error)
}

// Scheduler periodically logs a revenue digest for the current month, one
// line per cinema, so ops can watch takings without hitting the API.
type Scheduler struct {
	reportService revenueReporter
	interval      time.Duration
	logger        logger.Logger
}

func New(
	reportService revenueReporter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reportService: reportService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("revenue digest scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("revenue digest scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	now := time.Now().UTC()

	report, err := s.reportService.MonthlyRevenueByCinema(ctx, now.Year(), now.Month())
	if err != nil {
		s.logger.Error("failed to compute revenue digest",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, c := range report {
		s.logger.Info("monthly revenue",
			logger.String("cinema_id", c.CinemaID),
			logger.String("cinema", c.CinemaName),
			logger.Any("revenue", c.Revenue),
		)
	}
}
