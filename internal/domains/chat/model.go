package chat

import "time"

// Message là một message đã persist trong chat history của user.
type Message struct {
	MessageID string    `json:"message_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"` // "user" | "assistant"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ContextMessage là một turn trong rolling conversation context.
// Context sống trong Redis với TTL - hết hạn là conversation reset,
// history trong Postgres thì vẫn còn.
type ContextMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ContextWindow cap số turns gửi kèm mỗi completion request.
const ContextWindow = 20

// File là một attachment đã upload. Extracted text được worker điền
// async - Status theo dõi pipeline.
type File struct {
	FileID        string    `json:"file_id"`
	UserID        string    `json:"user_id"`
	Filename      string    `json:"filename"`
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	StoragePath   string    `json:"storage_path"`
	ExtractedText string    `json:"-"`
	Preview       string    `json:"preview,omitempty"`
	Status        string    `json:"status"` // pending | ready | failed
	UploadedAt    time.Time `json:"uploaded_at"`
}

const (
	FileStatusPending = "pending"
	FileStatusReady   = "ready"
	FileStatusFailed  = "failed"
)

// Upload constraints. Extension whitelist là hard gate - content sniffing
// không thay thế được nó.
const (
	MaxUploadSize     = 50 << 20 // 50MB
	MaxExtractedChars = 10000
	PreviewChars      = 500
)

var AllowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".pdf":  true,
	".txt":  true,
	".md":   true,
}

// HistoryLimit mặc định cho GET history.
const HistoryLimit = 50
