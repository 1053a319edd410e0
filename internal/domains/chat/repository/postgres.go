package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gogarvis-backend/internal/domains/chat"
)

// ========================================
// Chat history
// ========================================

type postgresHistory struct {
	db *pgxpool.Pool
}

func NewPostgresHistory(db *pgxpool.Pool) chat.HistoryRepository {
	return &postgresHistory{db: db}
}

func (r *postgresHistory) SaveMessage(ctx context.Context, m chat.Message) error {
	query := `
		INSERT INTO chat_history (message_id, user_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, m.MessageID, m.UserID, m.Role, m.Content, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}

func (r *postgresHistory) History(ctx context.Context, userID string, limit int) ([]chat.Message, error) {
	if limit <= 0 {
		limit = chat.HistoryLimit
	}
	query := `
		SELECT message_id, user_id, role, content, created_at
		FROM chat_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat history: %w", err)
	}
	defer rows.Close()

	messages := make([]chat.Message, 0)
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.MessageID, &m.UserID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *postgresHistory) Clear(ctx context.Context, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM chat_history WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear chat history: %w", err)
	}
	return nil
}

// ========================================
// File metadata
// ========================================

type postgresFiles struct {
	db *pgxpool.Pool
}

func NewPostgresFiles(db *pgxpool.Pool) chat.FileRepository {
	return &postgresFiles{db: db}
}

const fileColumns = `file_id, user_id, filename, content_type, size, storage_path, extracted_text, preview, status, uploaded_at`

func scanFile(row pgx.Row) (*chat.File, error) {
	var f chat.File
	err := row.Scan(&f.FileID, &f.UserID, &f.Filename, &f.ContentType, &f.Size,
		&f.StoragePath, &f.ExtractedText, &f.Preview, &f.Status, &f.UploadedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *postgresFiles) Insert(ctx context.Context, f *chat.File) error {
	query := `
		INSERT INTO chat_files (` + fileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query, f.FileID, f.UserID, f.Filename, f.ContentType, f.Size,
		f.StoragePath, f.ExtractedText, f.Preview, f.Status, f.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to insert chat file: %w", err)
	}
	return nil
}

func (r *postgresFiles) Get(ctx context.Context, fileID string) (*chat.File, error) {
	query := `SELECT ` + fileColumns + ` FROM chat_files WHERE file_id = $1`
	f, err := scanFile(r.db.QueryRow(ctx, query, fileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, chat.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chat file: %w", err)
	}
	return f, nil
}

func (r *postgresFiles) ListForUser(ctx context.Context, userID string) ([]chat.File, error) {
	query := `SELECT ` + fileColumns + ` FROM chat_files WHERE user_id = $1 ORDER BY uploaded_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat files: %w", err)
	}
	defer rows.Close()

	files := make([]chat.File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat file: %w", err)
		}
		files = append(files, *f)
	}
	return files, rows.Err()
}

func (r *postgresFiles) SetExtraction(ctx context.Context, fileID, text, preview, status string) error {
	query := `
		UPDATE chat_files
		SET extracted_text = $2, preview = $3, status = $4
		WHERE file_id = $1
	`
	tag, err := r.db.Exec(ctx, query, fileID, text, preview, status)
	if err != nil {
		return fmt.Errorf("failed to update file extraction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return chat.ErrNotFound
	}
	return nil
}

func (r *postgresFiles) Delete(ctx context.Context, fileID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM chat_files WHERE file_id = $1`, fileID)
	if err != nil {
		return fmt.Errorf("failed to delete chat file: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return chat.ErrNotFound
	}
	return nil
}

func (r *postgresFiles) ListStale(ctx context.Context, olderThan time.Time) ([]chat.File, error) {
	query := `
		SELECT ` + fileColumns + `
		FROM chat_files
		WHERE status = $1 AND uploaded_at < $2
	`
	rows, err := r.db.Query(ctx, query, chat.FileStatusPending, olderThan)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale files: %w", err)
	}
	defer rows.Close()

	files := make([]chat.File, 0)
	for rows.Next() {
		f, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat file: %w", err)
		}
		files = append(files, *f)
	}
	return files, rows.Err()
}
