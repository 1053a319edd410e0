package repository

import (
	"context"
	"fmt"
	"time"

	"gogarvis-backend/internal/domains/chat"
	"gogarvis-backend/pkg/cache"
)

// redisContextStore giữ rolling conversation context per user.
// Hết TTL thì conversation tự reset - history trong Postgres không đụng tới.
type redisContextStore struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewRedisContextStore(c cache.Cache, ttl time.Duration) chat.ContextStore {
	return &redisContextStore{cache: c, ttl: ttl}
}

func contextKey(userID string) string {
	return fmt.Sprintf("chat_ctx:%s", userID)
}

func (s *redisContextStore) Load(ctx context.Context, userID string) ([]chat.ContextMessage, error) {
	var msgs []chat.ContextMessage
	found, err := s.cache.Get(ctx, contextKey(userID), &msgs)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat context: %w", err)
	}
	if !found {
		return []chat.ContextMessage{}, nil
	}
	return msgs, nil
}

// Append thêm turns và refresh TTL. Window cap ở ContextWindow turns -
// những turn cũ nhất rơi ra ngoài.
func (s *redisContextStore) Append(ctx context.Context, userID string, msgs ...chat.ContextMessage) error {
	existing, err := s.Load(ctx, userID)
	if err != nil {
		return err
	}
	combined := append(existing, msgs...)
	if len(combined) > chat.ContextWindow {
		combined = combined[len(combined)-chat.ContextWindow:]
	}
	if err := s.cache.Set(ctx, contextKey(userID), combined, s.ttl); err != nil {
		return fmt.Errorf("failed to save chat context: %w", err)
	}
	return nil
}

func (s *redisContextStore) Clear(ctx context.Context, userID string) error {
	if err := s.cache.Delete(ctx, contextKey(userID)); err != nil {
		return fmt.Errorf("failed to clear chat context: %w", err)
	}
	return nil
}
