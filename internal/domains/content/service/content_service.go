package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"gogarvis-backend/internal/domains/audit"
	"gogarvis-backend/internal/domains/content"
	"gogarvis-backend/internal/domains/user"
	"gogarvis-backend/internal/domains/version"
	"gogarvis-backend/pkg/logger"
)

// UserCounter cung cấp số user cho dashboard mà không kéo cả user domain vào.
type UserCounter interface {
	Count(ctx context.Context) (int, error)
}

type contentService struct {
	store    content.Store
	versions version.Repository
	auditLog audit.Repository
	guard    *content.Guard
	users    UserCounter
}

func NewContentService(
	store content.Store,
	versions version.Repository,
	auditLog audit.Repository,
	guard *content.Guard,
	users UserCounter,
) content.Service {
	return &contentService{
		store:    store,
		versions: versions,
		auditLog: auditLog,
		guard:    guard,
		users:    users,
	}
}

// ========================================
// Reads
// ========================================

func (s *contentService) Get(ctx context.Context, kind content.Kind, id string) (*content.Item, error) {
	if !kind.IsValid() {
		return nil, content.ErrInvalidContentType
	}
	return s.store.GetActive(ctx, kind, id)
}

func (s *contentService) List(ctx context.Context, kind content.Kind, filter content.ListFilter) ([]*content.Item, error) {
	if !kind.IsValid() {
		return nil, content.ErrInvalidContentType
	}
	return s.store.List(ctx, kind, filter)
}

func (s *contentService) Categories(ctx context.Context, kind content.Kind) ([]string, error) {
	if !kind.IsValid() {
		return nil, content.ErrInvalidContentType
	}
	return s.store.Categories(ctx, kind)
}

func (s *contentService) OperatorStats(ctx context.Context) (*content.OperatorStats, error) {
	return s.store.CountOperators(ctx)
}

func (s *contentService) DashboardStats(ctx context.Context) (*content.DashboardStats, error) {
	stats := &content.DashboardStats{}
	counts := []struct {
		kind content.Kind
		dst  *int
	}{
		{content.KindDocument, &stats.Documents},
		{content.KindGlossary, &stats.Glossary},
		{content.KindComponent, &stats.Components},
		{content.KindOperator, &stats.Operators},
		{content.KindBrand, &stats.Brands},
	}
	for _, c := range counts {
		n, err := s.store.CountActive(ctx, c.kind)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	n, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.Users = n
	return stats, nil
}

// ========================================
// Mutations
// ========================================

// Create ghi item mới rồi append đúng 1 snapshot + 1 audit entry.
func (s *contentService) Create(ctx context.Context, actor *user.User, kind content.Kind, payload content.Payload) (*content.Item, error) {
	if !kind.IsValid() {
		return nil, content.ErrInvalidContentType
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	data := payload.Fields()
	id := uuid.New().String()
	data[kind.IDField()] = id

	// User-created operators KHÔNG BAO GIỜ canonical - bất kể payload.
	if kind == content.KindOperator {
		data["is_canonical"] = false
	}

	item := &content.Item{
		Type:      kind,
		ID:        id,
		Data:      data,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Insert(ctx, item); err != nil {
		return nil, err
	}

	s.recordSnapshot(ctx, item, actor, version.ChangeCreate, fmt.Sprintf("Created %q", item.Title()))
	s.recordAudit(ctx, actor, audit.ActionCreate, item, nil)
	return item, nil
}

// Update: pre-snapshot -> merge -> post-snapshot -> audit.
// Pre-snapshot fail thì abort - thà từ chối mutation còn hơn mất lịch sử.
func (s *contentService) Update(ctx context.Context, actor *user.User, kind content.Kind, id string, payload content.Payload) (*content.Item, error) {
	if !kind.IsValid() {
		return nil, content.ErrInvalidContentType
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}
	fields := payload.Fields()
	if len(fields) == 0 {
		return nil, content.ErrNoFields
	}

	current, err := s.store.GetActive(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(actor, current, "update"); err != nil {
		return nil, err
	}

	if err := s.mustSnapshot(ctx, current, actor, version.ChangeUpdate, "State before update"); err != nil {
		return nil, err
	}

	updated, err := s.store.Merge(ctx, kind, id, fields)
	if err != nil {
		return nil, err
	}

	s.recordSnapshot(ctx, updated, actor, version.ChangeUpdate, fmt.Sprintf("Updated %q", updated.Title()))
	s.recordAudit(ctx, actor, audit.ActionUpdate, updated, map[string]interface{}{
		"updated_fields": fieldNames(fields),
	})
	return updated, nil
}

// Delete là soft delete: record biến mất khỏi list/get nhưng row và toàn bộ
// version history vẫn còn. Snapshot duy nhất là pre-state.
func (s *contentService) Delete(ctx context.Context, actor *user.User, kind content.Kind, id string) error {
	if !kind.IsValid() {
		return content.ErrInvalidContentType
	}

	current, err := s.store.GetActive(ctx, kind, id)
	if err != nil {
		return err
	}
	if err := s.guard.Authorize(actor, current, "delete"); err != nil {
		return err
	}

	if err := s.mustSnapshot(ctx, current, actor, version.ChangeDelete, "State before delete"); err != nil {
		return err
	}

	if err := s.store.Deactivate(ctx, kind, id); err != nil {
		return err
	}

	s.recordAudit(ctx, actor, audit.ActionDelete, current, nil)
	return nil
}

// Rollback restore full state từ một snapshot. Canonical guard chạy lại
// trên item hiện tại - rollback không phải backdoor quanh protection.
func (s *contentService) Rollback(ctx context.Context, actor *user.User, kind content.Kind, id, versionID string) (*content.Item, error) {
	if !kind.IsValid() {
		return nil, content.ErrInvalidContentType
	}

	// Get thay vì GetActive: rollback hợp lệ cả trên item đã soft-delete,
	// và restore sẽ re-activate nó.
	current, err := s.store.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard.Authorize(actor, current, "rollback"); err != nil {
		return nil, err
	}

	snap, err := s.versions.Get(ctx, versionID, string(kind), id)
	if err != nil {
		if errors.Is(err, version.ErrNotFound) {
			return nil, content.ErrNotFound
		}
		return nil, err
	}

	if err := s.mustSnapshot(ctx, current, actor, version.ChangeRollback, "State before rollback"); err != nil {
		return nil, err
	}

	restored, err := s.store.Replace(ctx, kind, id, snap.Data)
	if err != nil {
		return nil, err
	}

	s.recordSnapshot(ctx, restored, actor, version.ChangeRollback,
		fmt.Sprintf("Rolled back %q to version %s", restored.Title(), versionID))
	s.recordAudit(ctx, actor, audit.ActionRollback, restored, map[string]interface{}{
		"restored_version_id": versionID,
	})
	return restored, nil
}

// ========================================
// Bookkeeping
// ========================================

func (s *contentService) buildSnapshot(item *content.Item, actor *user.User, ct version.ChangeType, summary string) version.Snapshot {
	return version.Snapshot{
		VersionID:     uuid.New().String(),
		ContentType:   string(item.Type),
		ContentID:     item.ID,
		Data:          item.Data,
		ChangedBy:     actor.UserID,
		ChangedByName: actor.Name,
		ChangeType:    ct,
		ChangeSummary: summary,
		Timestamp:     time.Now().UTC(),
	}
}

// mustSnapshot dùng cho pre-state: fail là fail cả operation.
func (s *contentService) mustSnapshot(ctx context.Context, item *content.Item, actor *user.User, ct version.ChangeType, summary string) error {
	if err := s.versions.Record(ctx, s.buildSnapshot(item, actor, ct, summary)); err != nil {
		return fmt.Errorf("failed to record pre-change snapshot: %w", err)
	}
	return nil
}

// recordSnapshot dùng SAU khi write chính đã thành công: mutation không
// revert được nữa nên lỗi bookkeeping chỉ log, không fail request.
func (s *contentService) recordSnapshot(ctx context.Context, item *content.Item, actor *user.User, ct version.ChangeType, summary string) {
	if err := s.versions.Record(ctx, s.buildSnapshot(item, actor, ct, summary)); err != nil {
		logger.Error("failed to record version snapshot", err)
	}
}

func (s *contentService) recordAudit(ctx context.Context, actor *user.User, action audit.Action, item *content.Item, details map[string]interface{}) {
	entry := audit.Entry{
		LogID:        uuid.New().String(),
		UserID:       actor.UserID,
		UserName:     actor.Name,
		UserEmail:    actor.Email,
		Action:       action,
		ContentType:  string(item.Type),
		ContentID:    item.ID,
		ContentTitle: item.Title(),
		Details:      details,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.auditLog.Append(ctx, entry); err != nil {
		logger.Error("failed to append audit entry", err)
	}
}

func fieldNames(fields map[string]interface{}) []string {
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
