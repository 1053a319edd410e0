package content

import "context"

// Store là persistence cho content items. Một implementation duy nhất
// phục vụ cả 5 kinds - rows phân biệt bằng cột content_type.
type Store interface {
	// Get trả về item bất kể is_active (version history cần cả soft-deleted).
	Get(ctx context.Context, kind Kind, id string) (*Item, error)
	// GetActive trả ErrNotFound cho soft-deleted items.
	GetActive(ctx context.Context, kind Kind, id string) (*Item, error)
	List(ctx context.Context, kind Kind, filter ListFilter) ([]*Item, error)
	Insert(ctx context.Context, item *Item) error
	// Merge ghi đè các field trong fields lên Data hiện có và bump updated_at.
	Merge(ctx context.Context, kind Kind, id string, fields map[string]interface{}) (*Item, error)
	// Replace thay toàn bộ Data - dùng cho rollback.
	Replace(ctx context.Context, kind Kind, id string, data map[string]interface{}) (*Item, error)
	Deactivate(ctx context.Context, kind Kind, id string) error
	CountActive(ctx context.Context, kind Kind) (int, error)
	// CountOperators tách canonical/user counts cho list response.
	CountOperators(ctx context.Context) (*OperatorStats, error)
	// Categories trả các giá trị distinct của data->>'category' (active only).
	Categories(ctx context.Context, kind Kind) ([]string, error)
}
