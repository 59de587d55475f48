// Package scheduler runs the automatic database backup on a cron schedule.
// The check fires daily; whether a backup actually happens depends on the
// auto_backup and backup_frequency settings.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/christinsong/hymnal/internal/database"
	"github.com/christinsong/hymnal/internal/settingsstore"
)

// checkSchedule is when the daily due-check fires (03:00 local).
const checkSchedule = "0 3 * * *"

// AutoBackup manages periodic database backups driven by user settings.
type AutoBackup struct {
	db        *database.Database
	store     *settingsstore.Store
	backupDir string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewAutoBackup creates a new auto-backup scheduler.
func NewAutoBackup(db *database.Database, store *settingsstore.Store, backupDir string) *AutoBackup {
	return &AutoBackup{
		db:        db,
		store:     store,
		backupDir: backupDir,
		cron:      cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the daily due-check. The process embedding the persistence
// layer (the GUI shell) owns the lifetime; Stop must be called on shutdown.
func (s *AutoBackup) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(checkSchedule, func() {
		if _, err := s.RunIfDue(); err != nil {
			log.Error().Err(err).Msg("auto backup: scheduled run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule backup check: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Info().Str("schedule", checkSchedule).Msg("auto backup: scheduler started")

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running backup.
func (s *AutoBackup) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	log.Info().Msg("auto backup: scheduler stopped")
}

// IsRunning returns whether the scheduler is active.
func (s *AutoBackup) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// RunIfDue backs up the database when auto-backup is enabled and the
// configured number of days has elapsed since the last backup. It returns
// the backup path, or "" when no backup was due.
func (s *AutoBackup) RunIfDue() (string, error) {
	if !s.store.AutoBackup() {
		log.Debug().Msg("auto backup: disabled in settings")
		return "", nil
	}

	frequency := time.Duration(s.store.BackupFrequencyDays()) * 24 * time.Hour
	last := s.store.LastBackupAt()
	if last != nil && time.Since(*last) < frequency {
		log.Debug().Time("last_backup", *last).Msg("auto backup: not due yet")
		return "", nil
	}

	path, err := s.db.Backup(s.backupDir)
	if err != nil {
		return "", fmt.Errorf("auto backup failed: %w", err)
	}

	if err := s.store.SetLastBackupAt(time.Now()); err != nil {
		log.Warn().Err(err).Msg("auto backup: failed to record backup time")
	}

	return path, nil
}
