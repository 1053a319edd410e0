package audit

import (
	"time"
)

// Entry là một dòng trong audit log - bằng chứng tamper-evidence
// của toàn hệ thống. Immutable sau khi ghi.
type Entry struct {
	LogID        string                 `json:"log_id"`
	UserID       string                 `json:"user_id"`
	UserName     string                 `json:"user_name"`
	UserEmail    string                 `json:"user_email"`
	Action       Action                 `json:"action"`
	ContentType  string                 `json:"content_type"`
	ContentID    string                 `json:"content_id"`
	ContentTitle string                 `json:"content_title"`
	Details      map[string]interface{} `json:"details"`
	Timestamp    time.Time              `json:"timestamp"`
}

type Action string

const (
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionRollback Action = "rollback"
	ActionLogin    Action = "login"
	ActionLogout   Action = "logout"
)

// Filter giới hạn kết quả query. Limit = 0 dùng DefaultQueryLimit.
type Filter struct {
	ContentType string
	UserID      string
	Limit       int
}

// DefaultQueryLimit là số entries tối đa trả về cho một lần query.
const DefaultQueryLimit = 100
