package user

import (
	"time"
)

// User là domain entity - ánh xạ 1:1 với bảng users trong DB
// User IDs do hệ thống generate (prefix "user_"), không phải UUID thuần,
// giữ tương thích với identity provider.
type User struct {
	UserID  string  `db:"user_id" json:"user_id"`
	Email   string  `db:"email" json:"email"`
	Name    string  `db:"name" json:"name"`
	Picture *string `db:"picture" json:"picture,omitempty"`

	// Authorization - role là input duy nhất cho mọi quyết định phân quyền
	Role Role `db:"role" json:"role"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Role enum - 3 roles
type Role string

const (
	RoleAdmin  Role = "admin"  // Full system access, quản lý users
	RoleEditor Role = "editor" // Được phép mutate content
	RoleViewer Role = "viewer" // Read-only
)

// AllRoles returns all valid roles
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleEditor, RoleViewer}
}

// IsValid kiểm tra role có nằm trong danh sách hợp lệ không
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// CanEdit - editor và admin được phép mutate content
func (r Role) CanEdit() bool {
	return r == RoleAdmin || r == RoleEditor
}

// Session là session đã được exchange từ identity provider.
// Token là opaque - backend không tự sinh, không tự verify chữ ký.
type Session struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Profile là payload trả về từ identity provider sau khi exchange session_id
type Profile struct {
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Picture      *string `json:"picture,omitempty"`
	SessionToken string  `json:"session_token,omitempty"`
}
