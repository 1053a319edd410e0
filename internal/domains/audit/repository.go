package audit

import "context"

// Repository là contract cho audit log.
//
// CỐ Ý không có Update/Delete: audit log là append-only by contract.
// Interface không expose mutation nên không caller nào sửa được lịch sử.
type Repository interface {
	Append(ctx context.Context, e Entry) error
	Query(ctx context.Context, f Filter) ([]Entry, error)
}
