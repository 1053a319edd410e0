package user

import "context"

// Service là business logic contract cho authentication và user management
type Service interface {
	// CreateSession exchange opaque session_id với identity provider,
	// upsert user, phát hành session token. User đầu tiên trở thành admin.
	CreateSession(ctx context.Context, sessionID string) (*User, string, error)

	// ResolveSession map session token về user. Dùng bởi auth middleware.
	ResolveSession(ctx context.Context, token string) (*User, error)

	// Logout xóa mọi session của user
	Logout(ctx context.Context, userID string) error

	// Admin operations
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUserRole(ctx context.Context, actor *User, userID string, role Role) (*User, error)
}
