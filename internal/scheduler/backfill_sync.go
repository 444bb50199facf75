// Package scheduler contains the background jobs of the API.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/talentbms/talent-bms-api/internal/config"
	"github.com/talentbms/talent-bms-api/internal/domain"
	"github.com/talentbms/talent-bms-api/internal/usecases/backfill"
)

type BackfillSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// BackfillSyncService periodically re-runs the legacy product-link backfill
// so rows imported from old exports get folded into direct attribution. It
// is disabled by default; most deployments only trigger it manually.
type BackfillSyncService struct {
	scheduler  *gocron.Scheduler
	backfiller backfill.Backfiller
	config     BackfillSyncConfig

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.BackfillResult
}

func NewBackfillSyncService(backfiller backfill.Backfiller, cfg *config.Config) *BackfillSyncService {
	syncConfig := BackfillSyncConfig{
		CronSchedule: cfg.BackfillSync.CronSchedule,
		Enabled:      cfg.BackfillSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.Enabled,
	}).Info("backfill sync scheduler configuration loaded")

	return &BackfillSyncService{
		scheduler:  scheduler,
		backfiller: backfiller,
		config:     syncConfig,
	}
}

func (s *BackfillSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("backfill sync cron disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting backfill sync cron")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.RunBackfill(context.Background()); err != nil {
			logrus.WithError(err).Error("scheduled backfill run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("scheduling backfill sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping backfill sync cron")
		s.scheduler.Stop()
	}()

	return nil
}

// RunBackfill executes one backfill pass, refusing to overlap a run already
// in progress.
func (s *BackfillSyncService) RunBackfill(ctx context.Context) (*domain.BackfillResult, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("backfill already running, skipping")
		return nil, ErrSyncAlreadyRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	result, err := s.backfiller.ResolveProductLinks(ctx)
	if err != nil {
		return nil, err
	}

	s.syncMutex.Lock()
	s.lastResult = result
	s.syncMutex.Unlock()

	return result, nil
}

// SyncStatus is the cron status payload exposed by the API.
type SyncStatus struct {
	Running         bool                   `json:"running"`
	Enabled         bool                   `json:"enabled"`
	CronSchedule    string                 `json:"cronSchedule"`
	LastStartedAt   *time.Time             `json:"lastStartedAt,omitempty"`
	LastCompletedAt *time.Time             `json:"lastCompletedAt,omitempty"`
	LastResult      *domain.BackfillResult `json:"lastResult,omitempty"`
}

func (s *BackfillSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{
		Running:      s.syncRunning,
		Enabled:      s.config.Enabled,
		CronSchedule: s.config.CronSchedule,
		LastResult:   s.lastResult,
	}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}
