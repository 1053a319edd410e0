package content

import (
	"context"

	"gogarvis-backend/internal/domains/user"
)

// Service là choke point duy nhất cho mọi content mutation. Không handler
// nào được gọi thẳng Store cho write: versioning + audit chỉ nhất quán
// khi mọi write đi qua đây.
//
// Bookkeeping contract per operation:
//   - Create:   1 snapshot (post-state) + 1 audit entry
//   - Update:   2 snapshots (pre + post)  + 1 audit entry
//   - Delete:   1 snapshot (pre-state)   + 1 audit entry (soft delete)
//   - Rollback: 2 snapshots (pre + post) + 1 audit entry
type Service interface {
	Get(ctx context.Context, kind Kind, id string) (*Item, error)
	List(ctx context.Context, kind Kind, filter ListFilter) ([]*Item, error)
	Categories(ctx context.Context, kind Kind) ([]string, error)
	OperatorStats(ctx context.Context) (*OperatorStats, error)
	DashboardStats(ctx context.Context) (*DashboardStats, error)

	Create(ctx context.Context, actor *user.User, kind Kind, payload Payload) (*Item, error)
	Update(ctx context.Context, actor *user.User, kind Kind, id string, payload Payload) (*Item, error)
	Delete(ctx context.Context, actor *user.User, kind Kind, id string) error
	Rollback(ctx context.Context, actor *user.User, kind Kind, id, versionID string) (*Item, error)
}
