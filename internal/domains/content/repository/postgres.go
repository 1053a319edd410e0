package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gogarvis-backend/internal/domains/content"
)

type postgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) content.Store {
	return &postgresStore{db: db}
}

const itemColumns = `content_type, content_id, data, is_active, created_at, updated_at`

// validID chặn non-UUID ids trước khi chạm Postgres: content_id là cột
// UUID nên id rác sẽ raise 22P02 thay vì not-found.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

func (s *postgresStore) scanItem(row pgx.Row) (*content.Item, error) {
	var item content.Item
	var raw []byte
	if err := row.Scan(&item.Type, &item.ID, &raw, &item.IsActive, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &item.Data); err != nil {
		return nil, fmt.Errorf("failed to decode item data: %w", err)
	}
	return &item, nil
}

func (s *postgresStore) Get(ctx context.Context, kind content.Kind, id string) (*content.Item, error) {
	if !validID(id) {
		return nil, content.ErrNotFound
	}
	query := `SELECT ` + itemColumns + ` FROM content_items WHERE content_type = $1 AND content_id = $2`
	item, err := s.scanItem(s.db.QueryRow(ctx, query, kind, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get content item: %w", err)
	}
	return item, nil
}

func (s *postgresStore) GetActive(ctx context.Context, kind content.Kind, id string) (*content.Item, error) {
	item, err := s.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if !item.IsActive {
		return nil, content.ErrNotFound
	}
	return item, nil
}

func (s *postgresStore) List(ctx context.Context, kind content.Kind, filter content.ListFilter) ([]*content.Item, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + itemColumns + ` FROM content_items WHERE content_type = $1 AND is_active = true`)
	args := []interface{}{kind}

	if filter.Category != "" {
		args = append(args, filter.Category)
		fmt.Fprintf(&sb, ` AND data->>'category' = $%d`, len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		clauses := make([]string, 0, 3)
		for _, field := range kind.SearchFields() {
			clauses = append(clauses, fmt.Sprintf(`data->>'%s' ILIKE $%d`, field, n))
		}
		sb.WriteString(` AND (` + strings.Join(clauses, " OR ") + `)`)
	}

	// Ordering là per-kind: architecture hiển thị theo layer, operators
	// theo trọng số quyết định rồi mã tai_d.
	switch kind {
	case content.KindComponent:
		sb.WriteString(` ORDER BY COALESCE((data->>'layer')::int, 0) ASC, data->>'name' ASC`)
	case content.KindOperator:
		sb.WriteString(` ORDER BY COALESCE((data->>'decision_weight')::int, 0) DESC, data->>'tai_d' ASC`)
	default:
		sb.WriteString(` ORDER BY created_at DESC`)
	}

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		fmt.Fprintf(&sb, ` LIMIT $%d`, len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		fmt.Fprintf(&sb, ` OFFSET $%d`, len(args))
	}

	rows, err := s.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list content items: %w", err)
	}
	defer rows.Close()

	items := make([]*content.Item, 0)
	for rows.Next() {
		item, err := s.scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *postgresStore) Insert(ctx context.Context, item *content.Item) error {
	raw, err := json.Marshal(item.Data)
	if err != nil {
		return fmt.Errorf("failed to encode item data: %w", err)
	}
	query := `
		INSERT INTO content_items (content_type, content_id, data, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = s.db.Exec(ctx, query, item.Type, item.ID, raw, item.IsActive, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505: unique_violation - partial index trên data->>'tai_d'
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return content.ErrDuplicateTAID
		}
		return fmt.Errorf("failed to insert content item: %w", err)
	}
	return nil
}

func (s *postgresStore) Merge(ctx context.Context, kind content.Kind, id string, fields map[string]interface{}) (*content.Item, error) {
	if !validID(id) {
		return nil, content.ErrNotFound
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode update fields: %w", err)
	}
	query := `
		UPDATE content_items
		SET data = data || $3::jsonb, updated_at = NOW()
		WHERE content_type = $1 AND content_id = $2 AND is_active = true
		RETURNING ` + itemColumns
	item, err := s.scanItem(s.db.QueryRow(ctx, query, kind, id, raw))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("failed to merge content item: %w", err)
	}
	return item, nil
}

func (s *postgresStore) Replace(ctx context.Context, kind content.Kind, id string, data map[string]interface{}) (*content.Item, error) {
	if !validID(id) {
		return nil, content.ErrNotFound
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item data: %w", err)
	}
	query := `
		UPDATE content_items
		SET data = $3::jsonb, is_active = true, updated_at = NOW()
		WHERE content_type = $1 AND content_id = $2
		RETURNING ` + itemColumns
	item, err := s.scanItem(s.db.QueryRow(ctx, query, kind, id, raw))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("failed to replace content item: %w", err)
	}
	return item, nil
}

func (s *postgresStore) Deactivate(ctx context.Context, kind content.Kind, id string) error {
	if !validID(id) {
		return content.ErrNotFound
	}
	query := `
		UPDATE content_items
		SET is_active = false, updated_at = NOW()
		WHERE content_type = $1 AND content_id = $2 AND is_active = true
	`
	tag, err := s.db.Exec(ctx, query, kind, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate content item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return content.ErrNotFound
	}
	return nil
}

func (s *postgresStore) CountActive(ctx context.Context, kind content.Kind) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM content_items WHERE content_type = $1 AND is_active = true`
	if err := s.db.QueryRow(ctx, query, kind).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count content items: %w", err)
	}
	return count, nil
}

func (s *postgresStore) CountOperators(ctx context.Context) (*content.OperatorStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE (data->>'is_canonical')::boolean IS TRUE),
			COUNT(*) FILTER (WHERE (data->>'is_canonical')::boolean IS NOT TRUE)
		FROM content_items
		WHERE content_type = $1 AND is_active = true
	`
	var stats content.OperatorStats
	if err := s.db.QueryRow(ctx, query, content.KindOperator).Scan(&stats.CanonicalCount, &stats.UserCount); err != nil {
		return nil, fmt.Errorf("failed to count operators: %w", err)
	}
	return &stats, nil
}

func (s *postgresStore) Categories(ctx context.Context, kind content.Kind) ([]string, error) {
	query := `
		SELECT DISTINCT data->>'category'
		FROM content_items
		WHERE content_type = $1 AND is_active = true AND data->>'category' IS NOT NULL
		ORDER BY 1
	`
	rows, err := s.db.Query(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
