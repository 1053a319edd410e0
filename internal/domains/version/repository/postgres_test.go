package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"gogarvis-backend/internal/domains/version"
)

// Non-UUID ids phải được chặn trước khi chạm connection pool, nên
// repository với nil pool là đủ cho các case này.
func TestRepository_MalformedIDIsNotFound(t *testing.T) {
	repo := NewPostgresRepository(nil)
	ctx := context.Background()
	good := uuid.NewString()

	for _, id := range []string{"abc", "123", "../etc/passwd", ""} {
		_, err := repo.Get(ctx, id, "documents", good)
		assert.ErrorIs(t, err, version.ErrNotFound, "Get version %q", id)

		_, err = repo.Get(ctx, good, "documents", id)
		assert.ErrorIs(t, err, version.ErrNotFound, "Get content %q", id)

		history, err := repo.History(ctx, "documents", id)
		assert.NoError(t, err, "History %q", id)
		assert.Empty(t, history, "History %q", id)
	}
}
