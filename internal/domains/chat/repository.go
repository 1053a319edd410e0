package chat

import (
	"context"
	"time"
)

// HistoryRepository persist chat messages vào Postgres. Append-mostly:
// chỉ Clear là bulk delete, theo yêu cầu của user sở hữu history.
type HistoryRepository interface {
	SaveMessage(ctx context.Context, m Message) error
	History(ctx context.Context, userID string, limit int) ([]Message, error)
	Clear(ctx context.Context, userID string) error
}

// FileRepository persist file metadata. Bytes thật nằm trong object storage.
type FileRepository interface {
	Insert(ctx context.Context, f *File) error
	Get(ctx context.Context, fileID string) (*File, error)
	ListForUser(ctx context.Context, userID string) ([]File, error)
	// SetExtraction do worker gọi khi extraction pipeline xong.
	SetExtraction(ctx context.Context, fileID, text, preview, status string) error
	Delete(ctx context.Context, fileID string) error
	// ListStale trả files pending quá lâu - scheduled cleanup dọn chúng.
	ListStale(ctx context.Context, olderThan time.Time) ([]File, error)
}

// ContextStore giữ rolling conversation context trong Redis.
// TTL refresh mỗi lần Append; hết TTL là context tự biến mất.
type ContextStore interface {
	Load(ctx context.Context, userID string) ([]ContextMessage, error)
	Append(ctx context.Context, userID string, msgs ...ContextMessage) error
	Clear(ctx context.Context, userID string) error
}
