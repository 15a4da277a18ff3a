package oauth

import (
	"context"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	fallbackCleanupSpec = "@hourly"
	cleanupLockTTL      = time.Minute
)

// StateCleanupWorker periodically deletes used and expired OAuth states. A
// Redis lock keeps a single replica doing the work per run.
type StateCleanupWorker struct {
	log             *zap.Logger
	cfg             *config.InternalConfig
	locker          contracts.LockerService
	stateRepository contracts.OAuthStateRepository
	cron            *cron.Cron
	cancel          context.CancelFunc
	now             func() time.Time
}

func NewStateCleanupWorker(logger *zap.Logger, cfg *config.InternalConfig, lockerService contracts.LockerService, stateRepository contracts.OAuthStateRepository) *StateCleanupWorker {
	return &StateCleanupWorker{
		log:             logger,
		cfg:             cfg,
		locker:          lockerService,
		stateRepository: stateRepository,
		now:             time.Now,
	}
}

func (w *StateCleanupWorker) Start(ctx context.Context) {
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	c := cron.New()
	if _, err := c.AddFunc(w.cfg.OAuth.CleanupCronSpec, func() { w.runOnce(runCtx) }); err != nil {
		w.log.Warn("StateCleanupWorker.Start invalid cron spec, falling back",
			zap.String("spec", w.cfg.OAuth.CleanupCronSpec),
			zap.String("fallback", fallbackCleanupSpec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc(fallbackCleanupSpec, func() { w.runOnce(runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight runs and waits for them to return.
func (w *StateCleanupWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *StateCleanupWorker) runOnce(ctx context.Context) {
	acquired, lockValue, err := w.locker.TryLock(ctx, constvars.RedisOAuthCleanupLockKey, cleanupLockTTL)
	if err != nil {
		w.log.Warn("StateCleanupWorker.runOnce lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Debug("StateCleanupWorker.runOnce lock held by another replica")
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, constvars.RedisOAuthCleanupLockKey, lockValue); err != nil {
			w.log.Warn("StateCleanupWorker.runOnce error releasing lock", zap.Error(err))
		}
	}()

	deleted, err := w.stateRepository.DeleteExpired(ctx, w.now())
	if err != nil {
		w.log.Error("StateCleanupWorker.runOnce error deleting states", zap.Error(err))
		return
	}
	w.log.Info("StateCleanupWorker.runOnce succeeded", zap.Int64(constvars.LoggingCountKey, deleted))
}
