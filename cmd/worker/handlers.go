package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"gogarvis-backend/internal/domains/chat"
	"gogarvis-backend/internal/infrastructure/extract"
	"gogarvis-backend/internal/infrastructure/queue"
	"gogarvis-backend/internal/infrastructure/storage"
	"gogarvis-backend/pkg/container"
	"gogarvis-backend/pkg/logger"
)

// stalePendingAge: pending file già hơn mức này coi như extraction
// đã chết hẳn (retries cạn) và bị mark failed.
const stalePendingAge = 24 * time.Hour

type handlers struct {
	files         chat.FileRepository
	storage       storage.ObjectStorage
	maxExtractLen int
}

func newHandlers(c *container.Container) *handlers {
	return &handlers{
		files:         c.ChatFiles,
		storage:       c.Storage,
		maxExtractLen: c.Config.Upload.MaxExtractedText,
	}
}

// HandleExtractFileText tải PDF từ object storage, extract text và
// cập nhật metadata. Lỗi transient (storage/DB) trả error cho asynq retry;
// PDF không extract được là lỗi vĩnh viễn -> mark failed, không retry.
func (h *handlers) HandleExtractFileText(ctx context.Context, t *asynq.Task) error {
	var payload queue.ExtractFilePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	f, err := h.files.Get(ctx, payload.FileID)
	if err != nil {
		// File đã bị xóa trước khi extraction chạy - không có gì để làm.
		if errors.Is(err, chat.ErrNotFound) {
			return nil
		}
		return err
	}
	if f.Status != chat.FileStatusPending {
		return nil
	}

	data, err := h.storage.Download(ctx, f.StoragePath)
	if err != nil {
		return err
	}

	text, err := extract.Text(f.Filename, data, h.maxExtractLen)
	if err != nil {
		logger.Warn("pdf extraction failed", map[string]interface{}{
			"file_id": f.FileID,
			"error":   err.Error(),
		})
		if setErr := h.files.SetExtraction(ctx, f.FileID, "", "", chat.FileStatusFailed); setErr != nil {
			return setErr
		}
		return nil
	}

	preview := extract.Preview(text, chat.PreviewChars)
	if err := h.files.SetExtraction(ctx, f.FileID, text, preview, chat.FileStatusReady); err != nil {
		return err
	}

	logger.Info("file text extracted", map[string]interface{}{
		"file_id": f.FileID,
		"chars":   len(text),
	})
	return nil
}

// HandleCleanupStaleFiles mark failed những pending files quá già.
func (h *handlers) HandleCleanupStaleFiles(ctx context.Context, t *asynq.Task) error {
	stale, err := h.files.ListStale(ctx, time.Now().UTC().Add(-stalePendingAge))
	if err != nil {
		return err
	}

	for _, f := range stale {
		if err := h.files.SetExtraction(ctx, f.FileID, "", "", chat.FileStatusFailed); err != nil {
			logger.Error("failed to mark stale file", err)
			continue
		}
	}

	if len(stale) > 0 {
		logger.Info("stale pending files cleaned", map[string]interface{}{"count": len(stale)})
	}
	return nil
}
