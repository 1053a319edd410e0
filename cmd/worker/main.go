package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"gogarvis-backend/internal/infrastructure/queue"
	"gogarvis-backend/pkg/container"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system environment variables")
	}

	c, err := container.NewContainer()
	if err != nil {
		log.Fatalf("❌ Failed to initialize container: %v", err)
	}
	defer c.Cleanup()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     c.Config.Redis.Host,
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.DB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				queue.QueueFiles: 10,
				"default":        1,
			},
		},
	)

	handlers := newHandlers(c)
	mux := asynq.NewServeMux()
	mux.HandleFunc(queue.TypeExtractFileText, handlers.HandleExtractFileText)
	mux.HandleFunc(queue.TypeCleanupStaleFiles, handlers.HandleCleanupStaleFiles)

	scheduler := queue.NewScheduler(c.Config.Redis)
	if err := scheduler.RegisterJobs(); err != nil {
		log.Fatalf("❌ Failed to register scheduled jobs: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Fatalf("❌ Scheduler failed: %v", err)
		}
	}()
	go func() {
		log.Println("🚀 Worker starting...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("❌ Worker failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Gracefully stopping worker...")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Println("✅ Worker stopped")
}
