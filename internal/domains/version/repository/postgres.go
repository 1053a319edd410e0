package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gogarvis-backend/internal/domains/version"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) version.Repository {
	return &postgresRepository{pool: pool}
}

// validID chặn non-UUID ids trước khi chạm Postgres: version_id và
// content_id là cột UUID nên id rác sẽ raise 22P02 thay vì not-found.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

func (r *postgresRepository) Record(ctx context.Context, s version.Snapshot) error {
	query := `INSERT INTO content_versions
		(version_id, content_type, content_id, data, changed_by, changed_by_name, change_type, change_summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		s.VersionID, s.ContentType, s.ContentID, s.Data,
		s.ChangedBy, s.ChangedByName, s.ChangeType, s.ChangeSummary, s.Timestamp)
	if err != nil {
		return fmt.Errorf("record version snapshot: %w", err)
	}
	return nil
}

func (r *postgresRepository) History(ctx context.Context, contentType, contentID string) ([]version.Snapshot, error) {
	if !validID(contentID) {
		return nil, nil
	}
	query := `SELECT version_id, content_type, content_id, data, changed_by, changed_by_name, change_type, change_summary, created_at
		FROM content_versions
		WHERE content_type = $1 AND content_id = $2
		ORDER BY created_at DESC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, contentType, contentID, version.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("query version history: %w", err)
	}
	defer rows.Close()

	var snapshots []version.Snapshot
	for rows.Next() {
		var s version.Snapshot
		if err := rows.Scan(&s.VersionID, &s.ContentType, &s.ContentID, &s.Data,
			&s.ChangedBy, &s.ChangedByName, &s.ChangeType, &s.ChangeSummary, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("scan version snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

func (r *postgresRepository) Get(ctx context.Context, versionID, contentType, contentID string) (*version.Snapshot, error) {
	if !validID(versionID) || !validID(contentID) {
		return nil, version.ErrNotFound
	}
	query := `SELECT version_id, content_type, content_id, data, changed_by, changed_by_name, change_type, change_summary, created_at
		FROM content_versions
		WHERE version_id = $1 AND content_type = $2 AND content_id = $3`

	var s version.Snapshot
	err := r.pool.QueryRow(ctx, query, versionID, contentType, contentID).
		Scan(&s.VersionID, &s.ContentType, &s.ContentID, &s.Data,
			&s.ChangedBy, &s.ChangedByName, &s.ChangeType, &s.ChangeSummary, &s.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, version.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get version snapshot: %w", err)
	}
	return &s, nil
}
