package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogarvis-backend/internal/domains/user"
	"gogarvis-backend/internal/shared/authority"
)

func canonicalOperator() *Item {
	return &Item{
		Type: KindOperator,
		ID:   "op-1",
		Data: map[string]interface{}{
			"operator_id":  "op-1",
			"name":         "Nathan Jon",
			"tai_d":        "PP-001",
			"is_canonical": true,
		},
	}
}

func TestGuard_BlocksNonSovereign(t *testing.T) {
	guard := NewGuard(authority.NewChecker("sovereign@example.com"))

	// Admin role không bypass được canonical protection.
	admin := &user.User{UserID: "u1", Email: "admin@example.com", Role: user.RoleAdmin}
	err := guard.Authorize(admin, canonicalOperator(), "update")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Contains(t, err.Error(), "PP-001")
}

func TestGuard_AllowsSovereign(t *testing.T) {
	guard := NewGuard(authority.NewChecker("sovereign@example.com"))

	sovereign := &user.User{UserID: "u2", Email: "Sovereign@Example.com", Role: user.RoleEditor}
	assert.NoError(t, guard.Authorize(sovereign, canonicalOperator(), "delete"))
}

func TestGuard_IgnoresNonCanonical(t *testing.T) {
	guard := NewGuard(authority.NewChecker("sovereign@example.com"))
	editor := &user.User{UserID: "u3", Email: "editor@example.com", Role: user.RoleEditor}

	userOperator := &Item{
		Type: KindOperator,
		ID:   "op-2",
		Data: map[string]interface{}{"name": "Custom", "tai_d": "PP-900", "is_canonical": false},
	}
	assert.NoError(t, guard.Authorize(editor, userOperator, "update"))

	document := &Item{
		Type: KindDocument,
		ID:   "doc-1",
		Data: map[string]interface{}{"title": "Runbook"},
	}
	assert.NoError(t, guard.Authorize(editor, document, "update"))
}

func TestGuard_NilActorBlocked(t *testing.T) {
	guard := NewGuard(authority.NewChecker("sovereign@example.com"))
	assert.ErrorIs(t, guard.Authorize(nil, canonicalOperator(), "update"), ErrForbidden)
}
