package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"gogarvis-backend/internal/config"
	"gogarvis-backend/internal/domains/chat"
	"gogarvis-backend/internal/domains/user"
	"gogarvis-backend/internal/infrastructure/extract"
	"gogarvis-backend/internal/infrastructure/llm"
	"gogarvis-backend/internal/infrastructure/queue"
	"gogarvis-backend/internal/infrastructure/storage"
	"gogarvis-backend/pkg/logger"
)

// systemPrompt định hình assistant: trợ lý cho knowledge platform,
// trả lời dựa trên attached files khi có.
const systemPrompt = `You are GARVIS, the assistant for this knowledge management platform. ` +
	`Answer questions about documents, glossary terms, architecture components, operators and brand assets. ` +
	`When file contents are attached to the conversation, ground your answers in them. ` +
	`Be concise and direct.`

type chatService struct {
	history  chat.HistoryRepository
	files    chat.FileRepository
	contexts chat.ContextStore
	llm      llm.Client
	storage  storage.ObjectStorage
	tasks    *queue.Client
	upload   config.UploadConfig
}

func NewChatService(
	history chat.HistoryRepository,
	files chat.FileRepository,
	contexts chat.ContextStore,
	llmClient llm.Client,
	objectStorage storage.ObjectStorage,
	tasks *queue.Client,
	upload config.UploadConfig,
) chat.Service {
	return &chatService{
		history:  history,
		files:    files,
		contexts: contexts,
		llm:      llmClient,
		storage:  objectStorage,
		tasks:    tasks,
		upload:   upload,
	}
}

// Chat: build context -> gọi completion -> persist cả hai chiều.
// Persistence lỗi sau khi đã có reply thì log và vẫn trả reply cho user.
func (s *chatService) Chat(ctx context.Context, actor *user.User, message string, fileIDs []string) (*chat.Reply, error) {
	rolling, err := s.contexts.Load(ctx, actor.UserID)
	if err != nil {
		// Context mất thì conversation mất trí nhớ, không chết.
		logger.Error("failed to load chat context", err)
		rolling = nil
	}

	messages := []llm.Message{{Role: chat.RoleSystem, Content: systemPrompt}}
	var imageParts []llm.ContentPart
	for _, fileID := range fileIDs {
		f, err := s.attachment(ctx, actor, fileID)
		if err != nil {
			return nil, err
		}
		if isImage(f.Filename) {
			// Ảnh đi base64 trong chính user message, không qua
			// extracted text.
			data, err := s.storage.Download(ctx, f.StoragePath)
			if err != nil {
				logger.Error("failed to load image attachment", err)
				continue
			}
			imageParts = append(imageParts, llm.ImagePart(imageContentType(f), data))
			continue
		}
		if f.Status == chat.FileStatusReady && f.ExtractedText != "" {
			messages = append(messages, llm.Message{
				Role:    chat.RoleSystem,
				Content: fmt.Sprintf("Attached file %q:\n%s", f.Filename, f.ExtractedText),
			})
		}
	}
	for _, m := range rolling {
		messages = append(messages, llm.Message{Role: m.Role, Content: m.Content})
	}
	userTurn := llm.Message{Role: chat.RoleUser, Content: message}
	if len(imageParts) > 0 {
		userTurn.Content = ""
		userTurn.Parts = append([]llm.ContentPart{llm.TextPart(message)}, imageParts...)
	}
	messages = append(messages, userTurn)

	answer, err := s.llm.Complete(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", chat.ErrAssistantFailure, err)
	}

	now := time.Now().UTC()
	userMsg := chat.Message{
		MessageID: uuid.New().String(),
		UserID:    actor.UserID,
		Role:      chat.RoleUser,
		Content:   message,
		CreatedAt: now,
	}
	reply := chat.Message{
		MessageID: uuid.New().String(),
		UserID:    actor.UserID,
		Role:      chat.RoleAssistant,
		Content:   answer,
		CreatedAt: now.Add(time.Millisecond),
	}
	if err := s.history.SaveMessage(ctx, userMsg); err != nil {
		logger.Error("failed to save chat message", err)
	}
	if err := s.history.SaveMessage(ctx, reply); err != nil {
		logger.Error("failed to save chat message", err)
	}
	if err := s.contexts.Append(ctx, actor.UserID,
		chat.ContextMessage{Role: chat.RoleUser, Content: message},
		chat.ContextMessage{Role: chat.RoleAssistant, Content: answer},
	); err != nil {
		logger.Error("failed to update chat context", err)
	}

	return &chat.Reply{Message: reply}, nil
}

// attachment fetch metadata của một attachment với ownership check.
// File của user khác -> ErrNotFound, không leak tồn tại.
func (s *chatService) attachment(ctx context.Context, actor *user.User, fileID string) (*chat.File, error) {
	f, err := s.files.Get(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if f.UserID != actor.UserID {
		return nil, chat.ErrNotFound
	}
	return f, nil
}

func isImage(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return true
	}
	return false
}

// imageContentType trả MIME type cho data URL. ContentType do client
// khai lúc upload; thiếu thì suy từ extension.
func imageContentType(f *chat.File) string {
	if strings.HasPrefix(f.ContentType, "image/") {
		return f.ContentType
	}
	switch strings.ToLower(filepath.Ext(f.Filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}

func (s *chatService) History(ctx context.Context, userID string, limit int) ([]chat.Message, error) {
	return s.history.History(ctx, userID, limit)
}

// ClearSession xóa cả rolling context lẫn persisted history của user -
// "clear" nghĩa là conversation biến mất hẳn, không chỉ mất trí nhớ.
func (s *chatService) ClearSession(ctx context.Context, userID string) error {
	if err := s.contexts.Clear(ctx, userID); err != nil {
		return err
	}
	return s.history.Clear(ctx, userID)
}

// UploadFile validate extension + size, lưu bytes vào object storage,
// extract text. Text files extract ngay; PDF đi qua worker queue.
func (s *chatService) UploadFile(ctx context.Context, actor *user.User, up chat.Upload) (*chat.File, error) {
	ext := strings.ToLower(filepath.Ext(up.Filename))
	if !chat.AllowedExtensions[ext] {
		return nil, fmt.Errorf("%w: %s", chat.ErrUnsupportedFileType, ext)
	}
	if up.Size > s.upload.MaxFileSize {
		return nil, chat.ErrFileTooLarge
	}

	// LimitReader + 1 byte: phát hiện client khai Size láo.
	data, err := io.ReadAll(io.LimitReader(up.Reader, s.upload.MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.upload.MaxFileSize {
		return nil, chat.ErrFileTooLarge
	}

	fileID := uuid.New().String()
	storagePath := fmt.Sprintf("uploads/%s/%s/%s", actor.UserID, fileID, up.Filename)
	if err := s.storage.Upload(ctx, storagePath, data, up.ContentType); err != nil {
		return nil, err
	}

	f := &chat.File{
		FileID:      fileID,
		UserID:      actor.UserID,
		Filename:    up.Filename,
		ContentType: up.ContentType,
		Size:        int64(len(data)),
		StoragePath: storagePath,
		Status:      chat.FileStatusPending,
		UploadedAt:  time.Now().UTC(),
	}

	switch ext {
	case ".pdf":
		// Nặng - để worker làm.
	default:
		text, err := extract.Text(up.Filename, data, s.upload.MaxExtractedText)
		if err != nil {
			f.Status = chat.FileStatusFailed
		} else {
			f.ExtractedText = text
			f.Preview = extract.Preview(text, chat.PreviewChars)
			f.Status = chat.FileStatusReady
		}
	}

	if err := s.files.Insert(ctx, f); err != nil {
		return nil, err
	}

	if ext == ".pdf" {
		if err := s.tasks.EnqueueExtractFile(ctx, fileID); err != nil {
			// Scheduled cleanup sẽ dọn pending files kẹt lại.
			logger.Error("failed to enqueue pdf extraction", err)
		}
	}
	return f, nil
}

func (s *chatService) ListFiles(ctx context.Context, userID string) ([]chat.File, error) {
	return s.files.ListForUser(ctx, userID)
}

func (s *chatService) DeleteFile(ctx context.Context, actor *user.User, fileID string) error {
	f, err := s.files.Get(ctx, fileID)
	if err != nil {
		return err
	}
	if f.UserID != actor.UserID && actor.Role != user.RoleAdmin {
		return chat.ErrNotFound
	}
	if err := s.storage.Delete(ctx, f.StoragePath); err != nil {
		// Metadata là nguồn sự thật; orphan object sẽ được dọn sau.
		logger.Error("failed to delete stored object", err)
	}
	return s.files.Delete(ctx, fileID)
}
