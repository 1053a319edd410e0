package chat

import (
	"context"
	"io"

	"gogarvis-backend/internal/domains/user"
)

// Upload là input cho UploadFile. Reader được đọc đúng một lần.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Reply là kết quả một chat turn.
type Reply struct {
	Message Message `json:"message"`
}

type Service interface {
	// Chat gửi message + attached files tới assistant, persist cả hai
	// chiều vào history và cập nhật rolling context.
	Chat(ctx context.Context, actor *user.User, message string, fileIDs []string) (*Reply, error)

	History(ctx context.Context, userID string, limit int) ([]Message, error)
	ClearSession(ctx context.Context, userID string) error

	// UploadFile validate + lưu object, enqueue extraction cho PDF.
	UploadFile(ctx context.Context, actor *user.User, up Upload) (*File, error)
	ListFiles(ctx context.Context, userID string) ([]File, error)
	DeleteFile(ctx context.Context, actor *user.User, fileID string) error
}
