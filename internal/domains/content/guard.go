package content

import (
	"fmt"

	"gogarvis-backend/internal/domains/user"
	"gogarvis-backend/internal/shared/authority"
)

// Guard chặn mutation lên canonical operators. Mọi write path (update,
// delete, rollback) phải đi qua Authorize TRƯỚC khi ghi bất cứ thứ gì -
// kể cả pre-snapshot.
type Guard struct {
	authority authority.Checker
}

func NewGuard(checker authority.Checker) *Guard {
	return &Guard{authority: checker}
}

// Authorize trả ErrForbidden nếu actor không đủ quyền sửa item.
// Admin role KHÔNG bypass được canonical protection - chỉ sovereign.
func (g *Guard) Authorize(actor *user.User, item *Item, action string) error {
	if !item.IsCanonical() {
		return nil
	}
	if actor != nil && g.authority.IsSovereign(actor.Email) {
		return nil
	}
	return fmt.Errorf("%w: cannot %s canonical operator %q (%s): protected by sovereign authority (TSID-0001)",
		ErrForbidden, action, item.Title(), item.TAID())
}
