package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/commentscope/commentscope/internal/cache"
	"github.com/commentscope/commentscope/internal/config"
)

// Service schedules cache maintenance. Expired entries are already invisible
// to readers; the scheduled run only compacts them away and logs store
// statistics.
type Service struct {
	config *config.Config
	store  cache.Store
	cron   *cron.Cron
}

// NewService creates a new maintenance scheduler.
func NewService(cfg *config.Config, store cache.Store) *Service {
	return &Service{
		config: cfg,
		store:  store,
		cron:   cron.New(cron.WithSeconds()),
	}
}

// Start begins the scheduled maintenance runs. It is a no-op when
// maintenance is disabled in the configuration.
func (s *Service) Start() error {
	if !s.config.EnableMaintenance {
		logrus.Info("Cache maintenance disabled")
		return nil
	}

	var cronExpression string

	switch s.config.MaintenanceSchedule {
	case "hourly":
		cronExpression = "0 0 * * * *"
	case "daily":
		// Run daily at 4 AM UTC
		cronExpression = "0 0 4 * * *"
	default:
		cronExpression = s.config.MaintenanceSchedule
	}

	_, err := s.cron.AddFunc(cronExpression, s.runMaintenance)
	if err != nil {
		return err
	}

	s.cron.Start()
	logrus.Infof("Maintenance scheduler started with %s schedule", s.config.MaintenanceSchedule)
	return nil
}

func (s *Service) runMaintenance() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	logrus.Info("Starting scheduled cache maintenance")

	purged, err := s.store.PurgeExpired(ctx)
	if err != nil {
		logrus.Errorf("Cache maintenance failed: %v", err)
		return
	}

	stats, err := s.store.Stats(ctx)
	if err != nil {
		logrus.Errorf("Failed to read cache stats: %v", err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"purged":   purged,
		"videos":   stats.Videos,
		"comments": stats.Comments,
		"analyses": stats.Analyses,
	}).Info("Cache maintenance completed")
}

// Stop stops the scheduler.
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		logrus.Info("Maintenance scheduler stopped")
	}
}
