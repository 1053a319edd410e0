package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"gogarvis-backend/internal/config"
	"gogarvis-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(cfg config.RedisConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{
			Addr:     cfg.Host,
			Password: cfg.Password,
			DB:       cfg.DB,
		},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)
	return &Scheduler{scheduler: scheduler}
}

// RegisterJobs đăng ký toàn bộ scheduled jobs.
func (s *Scheduler) RegisterJobs() error {
	return s.registerCleanupStaleFilesJob()
}

// ================================================
// JOB: Cleanup Stale Files (Daily at 3 AM)
// ================================================
// File upload thành công nhưng extraction kẹt ở pending (worker chết
// giữa chừng, retry cạn) sẽ được dọn mỗi ngày.
func (s *Scheduler) registerCleanupStaleFilesJob() error {
	payload, err := json.Marshal(CleanupStaleFilesPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeCleanupStaleFiles, payload)
	_, err = s.scheduler.Register(
		"0 3 * * *",
		task,
		asynq.Queue(QueueFiles),
		asynq.MaxRetry(1),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register CleanupStaleFiles job", err)
		return err
	}

	logger.Info("✓ Registered CleanupStaleFiles: daily at 3 AM", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Run() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
