package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"gogarvis-backend/internal/config"
)

const (
	TypeExtractFileText   = "file:extract_text"
	TypeCleanupStaleFiles = "file:cleanup_stale"

	QueueFiles = "files"
)

// ExtractFilePayload là payload cho extraction task.
type ExtractFilePayload struct {
	FileID string `json:"file_id"`
}

// CleanupStaleFilesPayload - scheduled job, không cần tham số.
type CleanupStaleFilesPayload struct{}

// Client enqueue background tasks. API process dùng cái này;
// worker process consume.
type Client struct {
	client *asynq.Client
}

func NewClient(cfg config.RedisConfig) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Host,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// EnqueueExtractFile đẩy extraction task cho một file vừa upload.
func (c *Client) EnqueueExtractFile(ctx context.Context, fileID string) error {
	payload, err := json.Marshal(ExtractFilePayload{FileID: fileID})
	if err != nil {
		return fmt.Errorf("marshal extract payload: %w", err)
	}

	task := asynq.NewTask(TypeExtractFileText, payload)
	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueFiles),
		asynq.MaxRetry(3),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("enqueue extract task: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
