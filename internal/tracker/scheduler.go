package tracker

import (
	"sync"
	"time"

	"github.com/roylee0704/gron"

	"ptd/internal/providers"
	"ptd/internal/services"
	"ptd/internal/structures"
	"ptd/internal/tracker/interfaces"
)

type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	service     services.TrackerServiceInterface
	fileManager *FileManager
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	saveInterval := s.config.Persistence.SaveInterval
	cleanupInterval := s.config.Tracker.CleanupInterval
	reminderInterval := s.config.Tracker.ReminderInterval

	s.cron.AddFunc(gron.Every(saveInterval*time.Second), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
			return
		}
		s.logger.Infof(providers.TypeApp, "Persisted data to file %s", s.config.Persistence.FilePath)
	})

	s.cron.AddFunc(gron.Every(cleanupInterval*time.Second), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		trimmed := s.service.CleanupAlerts()
		if trimmed > 0 {
			s.logger.Infof(providers.TypeApp, "Cleanup removed %d excess alerts", trimmed)
		}
	})

	if reminderInterval > 0 {
		s.cron.AddFunc(gron.Every(reminderInterval*time.Second), func() {
			s.service.Remind()
		})
	}

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	err := s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
	if err != nil {
		return err
	}
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting tracker state to file...")
	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, service services.TrackerServiceInterface, fileManager *FileManager) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		service:     service,
		fileManager: fileManager,
	}
}
