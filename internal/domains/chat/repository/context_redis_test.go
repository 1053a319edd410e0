package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogarvis-backend/internal/domains/chat"
)

// memoryCache giả lập Redis JSON round-trip để test window logic.
type memoryCache struct {
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	m.ttls[key] = ttl
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *memoryCache) Ping(_ context.Context) error { return nil }

func TestContextStore_AppendAndLoad(t *testing.T) {
	mem := newMemoryCache()
	store := NewRedisContextStore(mem, 24*time.Hour)

	err := store.Append(context.Background(), "user_1",
		chat.ContextMessage{Role: chat.RoleUser, Content: "q"},
		chat.ContextMessage{Role: chat.RoleAssistant, Content: "a"},
	)
	require.NoError(t, err)

	msgs, err := store.Load(context.Background(), "user_1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "q", msgs[0].Content)
	assert.Equal(t, chat.RoleAssistant, msgs[1].Role)

	// TTL refresh mỗi lần Append.
	assert.Equal(t, 24*time.Hour, mem.ttls["chat_ctx:user_1"])
}

func TestContextStore_WindowCapsOldestTurns(t *testing.T) {
	mem := newMemoryCache()
	store := NewRedisContextStore(mem, time.Hour)

	for i := 0; i < chat.ContextWindow; i++ {
		require.NoError(t, store.Append(context.Background(), "user_1",
			chat.ContextMessage{Role: chat.RoleUser, Content: fmt.Sprintf("turn-%d", i)},
		))
	}
	require.NoError(t, store.Append(context.Background(), "user_1",
		chat.ContextMessage{Role: chat.RoleUser, Content: "newest"},
	))

	msgs, err := store.Load(context.Background(), "user_1")
	require.NoError(t, err)
	require.Len(t, msgs, chat.ContextWindow)
	// Turn cũ nhất rơi ra, turn mới nhất ở cuối.
	assert.Equal(t, "turn-1", msgs[0].Content)
	assert.Equal(t, "newest", msgs[len(msgs)-1].Content)
}

func TestContextStore_LoadMissingKey(t *testing.T) {
	store := NewRedisContextStore(newMemoryCache(), time.Hour)

	msgs, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestContextStore_Clear(t *testing.T) {
	mem := newMemoryCache()
	store := NewRedisContextStore(mem, time.Hour)

	require.NoError(t, store.Append(context.Background(), "user_1",
		chat.ContextMessage{Role: chat.RoleUser, Content: "q"},
	))
	require.NoError(t, store.Clear(context.Background(), "user_1"))

	msgs, err := store.Load(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
