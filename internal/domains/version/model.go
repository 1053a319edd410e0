package version

import (
	"time"
)

// Snapshot là full-state copy của một content item tại một thời điểm
// trong mutation history. Immutable sau khi ghi - repository không có
// update/delete path.
type Snapshot struct {
	VersionID     string                 `json:"version_id"`
	ContentType   string                 `json:"content_type"`
	ContentID     string                 `json:"content_id"`
	Data          map[string]interface{} `json:"data"`
	ChangedBy     string                 `json:"changed_by"`
	ChangedByName string                 `json:"changed_by_name"`
	ChangeType    ChangeType             `json:"change_type"`
	ChangeSummary string                 `json:"change_summary"`
	Timestamp     time.Time              `json:"timestamp"`
}

type ChangeType string

const (
	ChangeCreate   ChangeType = "create"
	ChangeUpdate   ChangeType = "update"
	ChangeDelete   ChangeType = "delete"
	ChangeRollback ChangeType = "rollback"
)

// HistoryLimit cap số snapshots trả về cho một lần đọc history.
// Đây là read-time limit cho API ergonomics, KHÔNG phải retention policy -
// ledger giữ toàn bộ lịch sử.
const HistoryLimit = 100
