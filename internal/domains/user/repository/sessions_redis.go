package repository

import (
	"context"
	"fmt"
	"time"

	"gogarvis-backend/internal/domains/user"
	"gogarvis-backend/pkg/cache"
)

// redisSessionStore lưu opaque session tokens trong Redis với TTL.
// Thay thế session map in-process của bản cũ: eviction tự động,
// không phụ thuộc process lifetime.
//
// Keys:
//   session:<token>     -> user.Session (JSON)
//   user_session:<uid>  -> token hiện tại của user (để logout)
type redisSessionStore struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewRedisSessionStore(c cache.Cache, ttl time.Duration) user.SessionStore {
	return &redisSessionStore{cache: c, ttl: ttl}
}

func (s *redisSessionStore) Save(ctx context.Context, sess user.Session) error {
	// Mỗi user chỉ giữ một session active - xóa session cũ trước
	if err := s.DeleteForUser(ctx, sess.UserID); err != nil {
		return err
	}

	if err := s.cache.Set(ctx, sessionKey(sess.Token), sess, s.ttl); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := s.cache.Set(ctx, userSessionKey(sess.UserID), sess.Token, s.ttl); err != nil {
		return fmt.Errorf("save user session pointer: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Lookup(ctx context.Context, token string) (*user.Session, error) {
	var sess user.Session
	found, err := s.cache.Get(ctx, sessionKey(token), &sess)
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if !found {
		return nil, user.ErrSessionExpired
	}
	if time.Now().After(sess.ExpiresAt) {
		// TTL của Redis là cơ chế chính; check này chặn trường hợp
		// TTL bị set dài hơn expires_at do cấu hình lệch.
		return nil, user.ErrSessionExpired
	}
	return &sess, nil
}

func (s *redisSessionStore) DeleteForUser(ctx context.Context, userID string) error {
	var token string
	found, err := s.cache.Get(ctx, userSessionKey(userID), &token)
	if err != nil {
		return fmt.Errorf("lookup user session pointer: %w", err)
	}
	if !found {
		return nil
	}
	return s.cache.Delete(ctx, sessionKey(token), userSessionKey(userID))
}

func sessionKey(token string) string {
	return "session:" + token
}

func userSessionKey(userID string) string {
	return "user_session:" + userID
}
