package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogarvis-backend/internal/domains/audit"
	"gogarvis-backend/internal/domains/content"
	"gogarvis-backend/internal/domains/user"
	"gogarvis-backend/internal/domains/version"
	"gogarvis-backend/internal/shared/authority"
)

// ========================================
// In-memory fakes
// ========================================

type fakeStore struct {
	items     map[string]*content.Item // key: kind/id
	insertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: map[string]*content.Item{}}
}

func key(kind content.Kind, id string) string {
	return string(kind) + "/" + id
}

func (s *fakeStore) Get(_ context.Context, kind content.Kind, id string) (*content.Item, error) {
	item, ok := s.items[key(kind, id)]
	if !ok {
		return nil, content.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *fakeStore) GetActive(ctx context.Context, kind content.Kind, id string) (*content.Item, error) {
	item, err := s.Get(ctx, kind, id)
	if err != nil || !item.IsActive {
		return nil, content.ErrNotFound
	}
	return item, nil
}

func (s *fakeStore) List(_ context.Context, kind content.Kind, _ content.ListFilter) ([]*content.Item, error) {
	var out []*content.Item
	for _, item := range s.items {
		if item.Type == kind && item.IsActive {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *fakeStore) Insert(_ context.Context, item *content.Item) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	cp := *item
	s.items[key(item.Type, item.ID)] = &cp
	return nil
}

func (s *fakeStore) Merge(_ context.Context, kind content.Kind, id string, fields map[string]interface{}) (*content.Item, error) {
	item, ok := s.items[key(kind, id)]
	if !ok || !item.IsActive {
		return nil, content.ErrNotFound
	}
	for k, v := range fields {
		item.Data[k] = v
	}
	cp := *item
	return &cp, nil
}

func (s *fakeStore) Replace(_ context.Context, kind content.Kind, id string, data map[string]interface{}) (*content.Item, error) {
	item, ok := s.items[key(kind, id)]
	if !ok {
		return nil, content.ErrNotFound
	}
	item.Data = data
	item.IsActive = true
	cp := *item
	return &cp, nil
}

func (s *fakeStore) Deactivate(_ context.Context, kind content.Kind, id string) error {
	item, ok := s.items[key(kind, id)]
	if !ok {
		return content.ErrNotFound
	}
	item.IsActive = false
	return nil
}

func (s *fakeStore) CountActive(_ context.Context, kind content.Kind) (int, error) {
	n := 0
	for _, item := range s.items {
		if item.Type == kind && item.IsActive {
			n++
		}
	}
	return n, nil
}

func (s *fakeStore) CountOperators(_ context.Context) (*content.OperatorStats, error) {
	stats := &content.OperatorStats{}
	for _, item := range s.items {
		if item.Type != content.KindOperator || !item.IsActive {
			continue
		}
		if item.IsCanonical() {
			stats.CanonicalCount++
		} else {
			stats.UserCount++
		}
	}
	return stats, nil
}

func (s *fakeStore) Categories(_ context.Context, _ content.Kind) ([]string, error) {
	return nil, nil
}

type fakeVersions struct {
	snapshots []version.Snapshot
	recordErr error
}

func (v *fakeVersions) Record(_ context.Context, s version.Snapshot) error {
	if v.recordErr != nil {
		return v.recordErr
	}
	v.snapshots = append(v.snapshots, s)
	return nil
}

func (v *fakeVersions) History(_ context.Context, contentType, contentID string) ([]version.Snapshot, error) {
	var out []version.Snapshot
	for i := len(v.snapshots) - 1; i >= 0; i-- {
		s := v.snapshots[i]
		if s.ContentType == contentType && s.ContentID == contentID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (v *fakeVersions) Get(_ context.Context, versionID, contentType, contentID string) (*version.Snapshot, error) {
	for _, s := range v.snapshots {
		if s.VersionID == versionID && s.ContentType == contentType && s.ContentID == contentID {
			cp := s
			return &cp, nil
		}
	}
	return nil, version.ErrNotFound
}

type fakeAudit struct {
	entries []audit.Entry
}

func (a *fakeAudit) Append(_ context.Context, e audit.Entry) error {
	a.entries = append(a.entries, e)
	return nil
}

func (a *fakeAudit) Query(_ context.Context, _ audit.Filter) ([]audit.Entry, error) {
	return a.entries, nil
}

type fakeUserCounter struct{ n int }

func (c *fakeUserCounter) Count(_ context.Context) (int, error) { return c.n, nil }

// ========================================
// Fixtures
// ========================================

const sovereignEmail = "sovereign@example.com"

type fixture struct {
	store    *fakeStore
	versions *fakeVersions
	auditLog *fakeAudit
	service  content.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newFakeStore()
	versions := &fakeVersions{}
	auditLog := &fakeAudit{}
	guard := content.NewGuard(authority.NewChecker(sovereignEmail))
	return &fixture{
		store:    store,
		versions: versions,
		auditLog: auditLog,
		service:  NewContentService(store, versions, auditLog, guard, &fakeUserCounter{n: 3}),
	}
}

func editor() *user.User {
	return &user.User{UserID: "user_ed", Email: "editor@example.com", Name: "Editor", Role: user.RoleEditor}
}

func admin() *user.User {
	return &user.User{UserID: "user_ad", Email: "admin@example.com", Name: "Admin", Role: user.RoleAdmin}
}

func sovereign() *user.User {
	return &user.User{UserID: "user_sv", Email: sovereignEmail, Name: "Sovereign", Role: user.RoleAdmin}
}

func seedCanonicalOperator(f *fixture) *content.Item {
	item := &content.Item{
		Type: content.KindOperator,
		ID:   "op-1",
		Data: map[string]interface{}{
			"operator_id":  "op-1",
			"name":         "The Architect",
			"tai_d":        "PP-001",
			"is_canonical": true,
			"status":       "LOCKED",
		},
		IsActive: true,
	}
	f.store.items[key(content.KindOperator, item.ID)] = item
	return item
}

// ========================================
// Create
// ========================================

func TestCreate_RecordsOneSnapshotAndOneAuditEntry(t *testing.T) {
	f := newFixture(t)

	item, err := f.service.Create(context.Background(), editor(), content.KindDocument, content.CreateDocumentRequest{
		Title:    "Runbook",
		Category: "ops",
	})
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Len(t, f.versions.snapshots, 1)
	assert.Len(t, f.auditLog.entries, 1)

	snap := f.versions.snapshots[0]
	assert.Equal(t, version.ChangeCreate, snap.ChangeType)
	assert.Equal(t, item.ID, snap.ContentID)
	assert.Equal(t, "Runbook", snap.Data["title"])

	entry := f.auditLog.entries[0]
	assert.Equal(t, audit.ActionCreate, entry.Action)
	assert.Equal(t, "Runbook", entry.ContentTitle)
	assert.Equal(t, "user_ed", entry.UserID)
}

func TestCreate_AssignsGeneratedIDIntoData(t *testing.T) {
	f := newFixture(t)

	item, err := f.service.Create(context.Background(), editor(), content.KindGlossary, content.CreateGlossaryRequest{
		Term:       "TAI-D",
		Definition: "Operator identifier",
		Category:   "core",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, item.ID, item.Data["term_id"])
	assert.True(t, item.IsActive)
}

func TestCreate_OperatorNeverCanonical(t *testing.T) {
	f := newFixture(t)

	item, err := f.service.Create(context.Background(), admin(), content.KindOperator, content.CreateOperatorRequest{
		Name: "Custom Op",
		TAID: "PP-900",
	})
	require.NoError(t, err)
	assert.Equal(t, false, item.Data["is_canonical"])
	assert.False(t, item.IsCanonical())
}

func TestCreate_InvalidKind(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Create(context.Background(), editor(), content.Kind("widget"), content.CreateDocumentRequest{Title: "x", Category: "y"})
	assert.ErrorIs(t, err, content.ErrInvalidContentType)
	assert.Empty(t, f.versions.snapshots)
	assert.Empty(t, f.auditLog.entries)
}

func TestCreate_ValidationFailureWritesNothing(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Create(context.Background(), editor(), content.KindDocument, content.CreateDocumentRequest{})
	assert.Error(t, err)
	assert.Empty(t, f.store.items)
	assert.Empty(t, f.versions.snapshots)
	assert.Empty(t, f.auditLog.entries)
}

func TestCreate_DuplicateTAIDPassthrough(t *testing.T) {
	f := newFixture(t)
	f.store.insertErr = content.ErrDuplicateTAID

	_, err := f.service.Create(context.Background(), editor(), content.KindOperator, content.CreateOperatorRequest{
		Name: "Dup", TAID: "PP-001",
	})
	assert.ErrorIs(t, err, content.ErrDuplicateTAID)
	assert.Empty(t, f.versions.snapshots)
	assert.Empty(t, f.auditLog.entries)
}

// ========================================
// Update
// ========================================

func TestUpdate_RecordsPreAndPostSnapshots(t *testing.T) {
	f := newFixture(t)
	title := "Old"
	created, err := f.service.Create(context.Background(), editor(), content.KindDocument, content.CreateDocumentRequest{
		Title: title, Category: "ops", Content: "v1",
	})
	require.NoError(t, err)

	newTitle := "New"
	updated, err := f.service.Update(context.Background(), editor(), content.KindDocument, created.ID, content.UpdateDocumentRequest{
		Title: &newTitle,
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Data["title"])
	// Field không được gửi phải giữ nguyên sau merge.
	assert.Equal(t, "v1", updated.Data["content"])

	// 1 từ create + 2 từ update (pre + post).
	require.Len(t, f.versions.snapshots, 3)
	pre, post := f.versions.snapshots[1], f.versions.snapshots[2]
	assert.Equal(t, "State before update", pre.ChangeSummary)
	assert.Equal(t, "Old", pre.Data["title"])
	assert.Equal(t, "New", post.Data["title"])

	require.Len(t, f.auditLog.entries, 2)
	entry := f.auditLog.entries[1]
	assert.Equal(t, audit.ActionUpdate, entry.Action)
	assert.Equal(t, []string{"title"}, entry.Details["updated_fields"])
}

func TestUpdate_EmptyPayload(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Update(context.Background(), editor(), content.KindDocument, "whatever", content.UpdateDocumentRequest{})
	assert.ErrorIs(t, err, content.ErrNoFields)
}

func TestUpdate_NotFound(t *testing.T) {
	f := newFixture(t)

	name := "x"
	_, err := f.service.Update(context.Background(), editor(), content.KindBrand, "missing", content.UpdateBrandRequest{Name: &name})
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestUpdate_PreSnapshotFailureAborts(t *testing.T) {
	f := newFixture(t)
	item := seedCanonicalOperator(f)
	f.versions.recordErr = assert.AnError

	name := "Tampered"
	_, err := f.service.Update(context.Background(), sovereign(), content.KindOperator, item.ID, content.UpdateOperatorRequest{Name: &name})
	require.Error(t, err)

	// Main write không được xảy ra khi ledger từ chối pre-snapshot.
	stored, _ := f.store.Get(context.Background(), content.KindOperator, item.ID)
	assert.Equal(t, "The Architect", stored.Data["name"])
	assert.Empty(t, f.auditLog.entries)
}

// ========================================
// Canonical guard
// ========================================

func TestUpdate_CanonicalBlockedForAdmin(t *testing.T) {
	f := newFixture(t)
	item := seedCanonicalOperator(f)

	name := "Renamed"
	_, err := f.service.Update(context.Background(), admin(), content.KindOperator, item.ID, content.UpdateOperatorRequest{Name: &name})
	assert.ErrorIs(t, err, content.ErrForbidden)
	assert.Contains(t, err.Error(), "PP-001")

	// Từ chối trước mọi write: không snapshot, không audit, data nguyên vẹn.
	assert.Empty(t, f.versions.snapshots)
	assert.Empty(t, f.auditLog.entries)
	stored, _ := f.store.Get(context.Background(), content.KindOperator, item.ID)
	assert.Equal(t, "The Architect", stored.Data["name"])
}

func TestUpdate_CanonicalAllowedForSovereign(t *testing.T) {
	f := newFixture(t)
	item := seedCanonicalOperator(f)

	name := "The Architect v2"
	updated, err := f.service.Update(context.Background(), sovereign(), content.KindOperator, item.ID, content.UpdateOperatorRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "The Architect v2", updated.Data["name"])
	assert.Len(t, f.versions.snapshots, 2)
	assert.Len(t, f.auditLog.entries, 1)
}

func TestDelete_CanonicalBlockedForEditor(t *testing.T) {
	f := newFixture(t)
	item := seedCanonicalOperator(f)

	err := f.service.Delete(context.Background(), editor(), content.KindOperator, item.ID)
	assert.ErrorIs(t, err, content.ErrForbidden)

	stored, _ := f.store.Get(context.Background(), content.KindOperator, item.ID)
	assert.True(t, stored.IsActive)
}

func TestRollback_CanonicalGuardReRuns(t *testing.T) {
	f := newFixture(t)
	item := seedCanonicalOperator(f)
	f.versions.snapshots = append(f.versions.snapshots, version.Snapshot{
		VersionID:   "v-old",
		ContentType: string(content.KindOperator),
		ContentID:   item.ID,
		Data:        map[string]interface{}{"operator_id": item.ID, "name": "Older", "tai_d": "PP-001", "is_canonical": true},
	})

	_, err := f.service.Rollback(context.Background(), admin(), content.KindOperator, item.ID, "v-old")
	assert.ErrorIs(t, err, content.ErrForbidden)
	assert.Empty(t, f.auditLog.entries)
}

// ========================================
// Delete
// ========================================

func TestDelete_SoftDeleteWithPreSnapshot(t *testing.T) {
	f := newFixture(t)
	created, err := f.service.Create(context.Background(), editor(), content.KindComponent, content.CreateComponentRequest{
		Name: "Gateway", Layer: 1,
	})
	require.NoError(t, err)

	err = f.service.Delete(context.Background(), editor(), content.KindComponent, created.ID)
	require.NoError(t, err)

	// 1 từ create + 1 pre-delete. Delete KHÔNG có post-snapshot.
	require.Len(t, f.versions.snapshots, 2)
	assert.Equal(t, "State before delete", f.versions.snapshots[1].ChangeSummary)
	assert.Equal(t, version.ChangeDelete, f.versions.snapshots[1].ChangeType)

	require.Len(t, f.auditLog.entries, 2)
	assert.Equal(t, audit.ActionDelete, f.auditLog.entries[1].Action)

	// Soft delete: biến mất khỏi active reads nhưng row vẫn còn.
	_, err = f.service.Get(context.Background(), content.KindComponent, created.ID)
	assert.ErrorIs(t, err, content.ErrNotFound)
	raw, err := f.store.Get(context.Background(), content.KindComponent, created.ID)
	require.NoError(t, err)
	assert.False(t, raw.IsActive)
}

func TestDelete_NotFound(t *testing.T) {
	f := newFixture(t)
	err := f.service.Delete(context.Background(), editor(), content.KindDocument, "missing")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

// ========================================
// Rollback
// ========================================

func TestRollback_RestoresSnapshotData(t *testing.T) {
	f := newFixture(t)
	created, err := f.service.Create(context.Background(), editor(), content.KindDocument, content.CreateDocumentRequest{
		Title: "v1", Category: "ops", Content: "first",
	})
	require.NoError(t, err)
	firstVersionID := f.versions.snapshots[0].VersionID

	title := "v2"
	_, err = f.service.Update(context.Background(), editor(), content.KindDocument, created.ID, content.UpdateDocumentRequest{Title: &title})
	require.NoError(t, err)

	restored, err := f.service.Rollback(context.Background(), editor(), content.KindDocument, created.ID, firstVersionID)
	require.NoError(t, err)
	assert.Equal(t, "v1", restored.Data["title"])

	// 1 create + 2 update + 2 rollback (pre + post).
	require.Len(t, f.versions.snapshots, 5)
	pre := f.versions.snapshots[3]
	assert.Equal(t, "State before rollback", pre.ChangeSummary)
	assert.Equal(t, "v2", pre.Data["title"])
	assert.Equal(t, version.ChangeRollback, f.versions.snapshots[4].ChangeType)

	require.Len(t, f.auditLog.entries, 3)
	entry := f.auditLog.entries[2]
	assert.Equal(t, audit.ActionRollback, entry.Action)
	assert.Equal(t, firstVersionID, entry.Details["restored_version_id"])
}

func TestRollback_RestoresSoftDeletedItem(t *testing.T) {
	f := newFixture(t)
	created, err := f.service.Create(context.Background(), editor(), content.KindGlossary, content.CreateGlossaryRequest{
		Term: "GARVIS", Definition: "The system", Category: "core",
	})
	require.NoError(t, err)
	firstVersionID := f.versions.snapshots[0].VersionID

	require.NoError(t, f.service.Delete(context.Background(), editor(), content.KindGlossary, created.ID))

	restored, err := f.service.Rollback(context.Background(), editor(), content.KindGlossary, created.ID, firstVersionID)
	require.NoError(t, err)
	assert.True(t, restored.IsActive)

	got, err := f.service.Get(context.Background(), content.KindGlossary, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "GARVIS", got.Data["term"])
}

func TestRollback_UnknownVersion(t *testing.T) {
	f := newFixture(t)
	created, err := f.service.Create(context.Background(), editor(), content.KindDocument, content.CreateDocumentRequest{
		Title: "doc", Category: "ops",
	})
	require.NoError(t, err)

	_, err = f.service.Rollback(context.Background(), editor(), content.KindDocument, created.ID, "no-such-version")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestRollback_VersionFromOtherItemRejected(t *testing.T) {
	f := newFixture(t)
	a, err := f.service.Create(context.Background(), editor(), content.KindDocument, content.CreateDocumentRequest{Title: "A", Category: "ops"})
	require.NoError(t, err)
	aVersion := f.versions.snapshots[0].VersionID

	b, err := f.service.Create(context.Background(), editor(), content.KindDocument, content.CreateDocumentRequest{Title: "B", Category: "ops"})
	require.NoError(t, err)

	// Snapshot của A không restore được lên B.
	_, err = f.service.Rollback(context.Background(), editor(), content.KindDocument, b.ID, aVersion)
	assert.ErrorIs(t, err, content.ErrNotFound)
	_ = a
}

// ========================================
// Stats
// ========================================

func TestDashboardStats_CountsActiveOnly(t *testing.T) {
	f := newFixture(t)
	doc, err := f.service.Create(context.Background(), editor(), content.KindDocument, content.CreateDocumentRequest{Title: "a", Category: "c"})
	require.NoError(t, err)
	_, err = f.service.Create(context.Background(), editor(), content.KindDocument, content.CreateDocumentRequest{Title: "b", Category: "c"})
	require.NoError(t, err)
	require.NoError(t, f.service.Delete(context.Background(), editor(), content.KindDocument, doc.ID))

	stats, err := f.service.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Documents)
	assert.Equal(t, 3, stats.Users)
}

func TestOperatorStats_SplitsCanonicalAndUser(t *testing.T) {
	f := newFixture(t)
	seedCanonicalOperator(f)
	_, err := f.service.Create(context.Background(), editor(), content.KindOperator, content.CreateOperatorRequest{
		Name: "Mine", TAID: "PP-950",
	})
	require.NoError(t, err)

	stats, err := f.service.OperatorStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.CanonicalCount)
	assert.Equal(t, 1, stats.UserCount)
}
