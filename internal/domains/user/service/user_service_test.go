package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogarvis-backend/internal/domains/audit"
	"gogarvis-backend/internal/domains/user"
)

// ========================================
// Fakes
// ========================================

type fakeProvider struct {
	profiles map[string]*user.Profile // session_id -> profile
}

func (p *fakeProvider) Exchange(_ context.Context, sessionID string) (*user.Profile, error) {
	profile, ok := p.profiles[sessionID]
	if !ok {
		return nil, user.ErrProviderFailure
	}
	return profile, nil
}

type fakeUserRepo struct {
	byID map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*user.User{}}
}

func (r *fakeUserRepo) GetByID(_ context.Context, userID string) (*user.User, error) {
	u, ok := r.byID[userID]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *fakeUserRepo) Insert(_ context.Context, u *user.User) error {
	cp := *u
	r.byID[u.UserID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, userID, name string, picture *string) error {
	u, ok := r.byID[userID]
	if !ok {
		return user.ErrNotFound
	}
	u.Name = name
	u.Picture = picture
	return nil
}

func (r *fakeUserRepo) UpdateRole(_ context.Context, userID string, role user.Role) error {
	u, ok := r.byID[userID]
	if !ok {
		return user.ErrNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	return len(r.byID), nil
}

type fakeSessionStore struct {
	byToken map[string]user.Session
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{byToken: map[string]user.Session{}}
}

func (s *fakeSessionStore) Save(_ context.Context, sess user.Session) error {
	s.byToken[sess.Token] = sess
	return nil
}

func (s *fakeSessionStore) Lookup(_ context.Context, token string) (*user.Session, error) {
	sess, ok := s.byToken[token]
	if !ok {
		return nil, user.ErrSessionExpired
	}
	return &sess, nil
}

func (s *fakeSessionStore) DeleteForUser(_ context.Context, userID string) error {
	for token, sess := range s.byToken {
		if sess.UserID == userID {
			delete(s.byToken, token)
		}
	}
	return nil
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

// ========================================
// Fixtures
// ========================================

type fixture struct {
	provider *fakeProvider
	repo     *fakeUserRepo
	sessions *fakeSessionStore
	auditLog *fakeAudit
	service  user.Service
}

func newFixture() *fixture {
	provider := &fakeProvider{profiles: map[string]*user.Profile{}}
	repo := newFakeUserRepo()
	sessions := newFakeSessionStore()
	auditLog := &fakeAudit{}
	return &fixture{
		provider: provider,
		repo:     repo,
		sessions: sessions,
		auditLog: auditLog,
		service:  NewUserService(provider, repo, sessions, auditLog, 168*time.Hour),
	}
}

// ========================================
// CreateSession
// ========================================

func TestCreateSession_FirstUserBecomesAdmin(t *testing.T) {
	f := newFixture()
	f.provider.profiles["sid-1"] = &user.Profile{Email: "alice@example.com", Name: "Alice"}

	u, token, err := f.service.CreateSession(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, u.Role)
	assert.NotEmpty(t, token)

	sess, err := f.sessions.Lookup(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, u.UserID, sess.UserID)

	require.Len(t, f.auditLog.entries, 1)
	assert.Equal(t, audit.ActionLogin, f.auditLog.entries[0].Action)
}

func TestCreateSession_SubsequentUsersAreViewers(t *testing.T) {
	f := newFixture()
	f.provider.profiles["sid-1"] = &user.Profile{Email: "alice@example.com", Name: "Alice"}
	f.provider.profiles["sid-2"] = &user.Profile{Email: "bob@example.com", Name: "Bob"}

	_, _, err := f.service.CreateSession(context.Background(), "sid-1")
	require.NoError(t, err)

	u, _, err := f.service.CreateSession(context.Background(), "sid-2")
	require.NoError(t, err)
	assert.Equal(t, user.RoleViewer, u.Role)
}

func TestCreateSession_ExistingUserKeepsRoleAndRefreshesProfile(t *testing.T) {
	f := newFixture()
	f.provider.profiles["sid-1"] = &user.Profile{Email: "alice@example.com", Name: "Alice"}

	first, _, err := f.service.CreateSession(context.Background(), "sid-1")
	require.NoError(t, err)

	f.provider.profiles["sid-2"] = &user.Profile{Email: "alice@example.com", Name: "Alice Smith"}
	again, _, err := f.service.CreateSession(context.Background(), "sid-2")
	require.NoError(t, err)

	assert.Equal(t, first.UserID, again.UserID)
	assert.Equal(t, user.RoleAdmin, again.Role)
	assert.Equal(t, "Alice Smith", again.Name)
}

func TestCreateSession_UsesProviderSessionToken(t *testing.T) {
	f := newFixture()
	f.provider.profiles["sid-1"] = &user.Profile{Email: "alice@example.com", Name: "Alice", SessionToken: "provider-token"}

	_, token, err := f.service.CreateSession(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "provider-token", token)
}

func TestCreateSession_ProviderFailure(t *testing.T) {
	f := newFixture()

	_, _, err := f.service.CreateSession(context.Background(), "bogus")
	assert.ErrorIs(t, err, user.ErrProviderFailure)
	assert.Empty(t, f.repo.byID)
}

// ========================================
// ResolveSession / Logout
// ========================================

func TestResolveSession(t *testing.T) {
	f := newFixture()
	f.provider.profiles["sid-1"] = &user.Profile{Email: "alice@example.com", Name: "Alice"}
	created, token, err := f.service.CreateSession(context.Background(), "sid-1")
	require.NoError(t, err)

	resolved, err := f.service.ResolveSession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, created.UserID, resolved.UserID)
	assert.Equal(t, created.Email, resolved.Email)
}

func TestResolveSession_UnknownToken(t *testing.T) {
	f := newFixture()
	_, err := f.service.ResolveSession(context.Background(), "stale-token")
	assert.ErrorIs(t, err, user.ErrSessionExpired)
}

func TestLogout_DropsSessionAndAudits(t *testing.T) {
	f := newFixture()
	f.provider.profiles["sid-1"] = &user.Profile{Email: "alice@example.com", Name: "Alice"}
	created, token, err := f.service.CreateSession(context.Background(), "sid-1")
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(context.Background(), created.UserID))

	_, err = f.service.ResolveSession(context.Background(), token)
	assert.ErrorIs(t, err, user.ErrSessionExpired)

	require.Len(t, f.auditLog.entries, 2)
	assert.Equal(t, audit.ActionLogout, f.auditLog.entries[1].Action)
}

// ========================================
// UpdateUserRole
// ========================================

func adminActor(f *fixture, t *testing.T) *user.User {
	t.Helper()
	f.provider.profiles["admin-sid"] = &user.Profile{Email: "admin@example.com", Name: "Admin"}
	u, _, err := f.service.CreateSession(context.Background(), "admin-sid")
	require.NoError(t, err)
	return u
}

func TestUpdateUserRole_PromotesViewerToEditor(t *testing.T) {
	f := newFixture()
	actor := adminActor(f, t)
	f.provider.profiles["sid-2"] = &user.Profile{Email: "bob@example.com", Name: "Bob"}
	target, _, err := f.service.CreateSession(context.Background(), "sid-2")
	require.NoError(t, err)

	updated, err := f.service.UpdateUserRole(context.Background(), actor, target.UserID, user.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, user.RoleEditor, updated.Role)

	entry := f.auditLog.entries[len(f.auditLog.entries)-1]
	assert.Equal(t, audit.ActionUpdate, entry.Action)
	assert.Equal(t, "user", entry.ContentType)
	assert.Equal(t, "viewer", entry.Details["old_role"])
	assert.Equal(t, "editor", entry.Details["new_role"])
}

func TestUpdateUserRole_RejectsSelfChange(t *testing.T) {
	f := newFixture()
	actor := adminActor(f, t)

	_, err := f.service.UpdateUserRole(context.Background(), actor, actor.UserID, user.RoleViewer)
	assert.ErrorIs(t, err, user.ErrInvalidRole)
	assert.Contains(t, err.Error(), "own role")

	// Role không đổi.
	got, err := f.repo.GetByID(context.Background(), actor.UserID)
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, got.Role)
}

func TestUpdateUserRole_InvalidRole(t *testing.T) {
	f := newFixture()
	actor := adminActor(f, t)

	_, err := f.service.UpdateUserRole(context.Background(), actor, "user_x", user.Role("superuser"))
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestUpdateUserRole_TargetNotFound(t *testing.T) {
	f := newFixture()
	actor := adminActor(f, t)

	_, err := f.service.UpdateUserRole(context.Background(), actor, "user_missing", user.RoleEditor)
	assert.ErrorIs(t, err, user.ErrNotFound)
}
