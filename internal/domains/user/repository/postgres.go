package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gogarvis-backend/internal/domains/user"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetByID(ctx context.Context, userID string) (*user.User, error) {
	query := `SELECT user_id, email, name, picture, role, created_at
		FROM users WHERE user_id = $1`

	var u user.User
	err := r.pool.QueryRow(ctx, query, userID).
		Scan(&u.UserID, &u.Email, &u.Name, &u.Picture, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT user_id, email, name, picture, role, created_at
		FROM users WHERE email = $1`

	var u user.User
	err := r.pool.QueryRow(ctx, query, email).
		Scan(&u.UserID, &u.Email, &u.Name, &u.Picture, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, user.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

func (r *postgresRepository) Insert(ctx context.Context, u *user.User) error {
	query := `INSERT INTO users (user_id, email, name, picture, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, u.UserID, u.Email, u.Name, u.Picture, u.Role, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *postgresRepository) UpdateProfile(ctx context.Context, userID, name string, picture *string) error {
	query := `UPDATE users SET name = $2, picture = $3 WHERE user_id = $1`

	result, err := r.pool.Exec(ctx, query, userID, name, picture)
	if err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) UpdateRole(ctx context.Context, userID string, role user.Role) error {
	query := `UPDATE users SET role = $2 WHERE user_id = $1`

	result, err := r.pool.Exec(ctx, query, userID, role)
	if err != nil {
		return fmt.Errorf("update user role: %w", err)
	}
	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context) ([]user.User, error) {
	query := `SELECT user_id, email, name, picture, role, created_at
		FROM users ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.UserID, &u.Email, &u.Name, &u.Picture, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}
