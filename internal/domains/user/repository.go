package user

import "context"

// Repository là data access contract cho users.
// Session storage nằm ở SessionStore (Redis), không phải ở đây.
type Repository interface {
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, u *User) error
	UpdateProfile(ctx context.Context, userID, name string, picture *string) error
	UpdateRole(ctx context.Context, userID string, role Role) error
	List(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int, error)
}

// SessionStore lưu opaque session tokens với TTL.
// Backed by Redis - eviction tự động, không grow unbounded.
type SessionStore interface {
	Save(ctx context.Context, s Session) error
	Lookup(ctx context.Context, token string) (*Session, error)
	DeleteForUser(ctx context.Context, userID string) error
}
