package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"gogarvis-backend/internal/domains/audit"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) audit.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Append(ctx context.Context, e audit.Entry) error {
	query := `INSERT INTO audit_log
		(log_id, user_id, user_name, user_email, action, content_type, content_id, content_title, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	details := e.Details
	if details == nil {
		details = map[string]interface{}{}
	}

	_, err := r.pool.Exec(ctx, query,
		e.LogID, e.UserID, e.UserName, e.UserEmail, e.Action,
		e.ContentType, e.ContentID, e.ContentTitle, details, e.Timestamp)
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

func (r *postgresRepository) Query(ctx context.Context, f audit.Filter) ([]audit.Entry, error) {
	// Handlers clamp upper bound; repo chỉ lo default.
	limit := f.Limit
	if limit <= 0 {
		limit = audit.DefaultQueryLimit
	}

	// Filters là optional - build WHERE clause động
	query := `SELECT log_id, user_id, user_name, user_email, action, content_type, content_id, content_title, details, created_at
		FROM audit_log`
	args := []interface{}{}
	idx := 1

	where := ""
	if f.ContentType != "" {
		where = fmt.Sprintf(" WHERE content_type = $%d", idx)
		args = append(args, f.ContentType)
		idx++
	}
	if f.UserID != "" {
		if where == "" {
			where = fmt.Sprintf(" WHERE user_id = $%d", idx)
		} else {
			where += fmt.Sprintf(" AND user_id = $%d", idx)
		}
		args = append(args, f.UserID)
		idx++
	}

	query += where + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", idx)
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var e audit.Entry
		if err := rows.Scan(&e.LogID, &e.UserID, &e.UserName, &e.UserEmail, &e.Action,
			&e.ContentType, &e.ContentID, &e.ContentTitle, &e.Details, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
