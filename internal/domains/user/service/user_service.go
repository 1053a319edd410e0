package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gogarvis-backend/internal/domains/audit"
	"gogarvis-backend/internal/domains/user"
	"gogarvis-backend/internal/infrastructure/identity"
	"gogarvis-backend/pkg/logger"
)

type userService struct {
	provider   identity.Provider
	repo       user.Repository
	sessions   user.SessionStore
	auditLog   audit.Repository
	sessionTTL time.Duration
}

func NewUserService(
	provider identity.Provider,
	repo user.Repository,
	sessions user.SessionStore,
	auditLog audit.Repository,
	sessionTTL time.Duration,
) user.Service {
	return &userService{
		provider:   provider,
		repo:       repo,
		sessions:   sessions,
		auditLog:   auditLog,
		sessionTTL: sessionTTL,
	}
}

// CreateSession: exchange với identity provider -> upsert user -> phát hành
// session token. Provider là nguồn sự thật duy nhất về danh tính;
// backend không bao giờ tự tin tưởng email do client gửi.
func (s *userService) CreateSession(ctx context.Context, sessionID string) (*user.User, string, error) {
	profile, err := s.provider.Exchange(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	u, err := s.repo.GetByEmail(ctx, profile.Email)
	switch {
	case errors.Is(err, user.ErrNotFound):
		u, err = s.registerUser(ctx, profile)
		if err != nil {
			return nil, "", err
		}
	case err != nil:
		return nil, "", err
	default:
		// Profile có thể đổi giữa các lần login (tên, avatar).
		if err := s.repo.UpdateProfile(ctx, u.UserID, profile.Name, profile.Picture); err != nil {
			return nil, "", err
		}
		u.Name = profile.Name
		u.Picture = profile.Picture
	}

	token := profile.SessionToken
	if token == "" {
		token = uuid.New().String()
	}
	session := user.Session{
		UserID:    u.UserID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, "", fmt.Errorf("failed to save session: %w", err)
	}

	s.recordAudit(ctx, u, audit.ActionLogin, nil)
	return u, token, nil
}

// registerUser tạo user mới. User ĐẦU TIÊN trong hệ thống tự động là admin -
// bootstrap không cần seed script hay manual DB edit.
func (s *userService) registerUser(ctx context.Context, profile *user.Profile) (*user.User, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	role := user.RoleViewer
	if count == 0 {
		role = user.RoleAdmin
		logger.Info("first user registered as admin", map[string]interface{}{"email": profile.Email})
	}

	u := &user.User{
		UserID:    "user_" + uuid.New().String(),
		Email:     profile.Email,
		Name:      profile.Name,
		Picture:   profile.Picture,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) ResolveSession(ctx context.Context, token string) (*user.User, error) {
	session, err := s.sessions.Lookup(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, session.UserID)
}

func (s *userService) Logout(ctx context.Context, userID string) error {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.sessions.DeleteForUser(ctx, userID); err != nil {
		return err
	}
	s.recordAudit(ctx, u, audit.ActionLogout, nil)
	return nil
}

func (s *userService) ListUsers(ctx context.Context) ([]user.User, error) {
	return s.repo.List(ctx)
}

// UpdateUserRole đổi role của một user khác. Admin không tự đổi role
// của chính mình - tránh hệ thống rơi vào trạng thái không còn admin.
func (s *userService) UpdateUserRole(ctx context.Context, actor *user.User, userID string, role user.Role) (*user.User, error) {
	if !role.IsValid() {
		return nil, user.ErrInvalidRole
	}
	if actor != nil && actor.UserID == userID {
		return nil, fmt.Errorf("%w: cannot change own role", user.ErrInvalidRole)
	}

	target, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	oldRole := target.Role

	if err := s.repo.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}
	target.Role = role

	if actor != nil {
		entry := audit.Entry{
			LogID:        uuid.New().String(),
			UserID:       actor.UserID,
			UserName:     actor.Name,
			UserEmail:    actor.Email,
			Action:       audit.ActionUpdate,
			ContentType:  "user",
			ContentID:    target.UserID,
			ContentTitle: target.Name,
			Details: map[string]interface{}{
				"old_role": string(oldRole),
				"new_role": string(role),
			},
			Timestamp: time.Now().UTC(),
		}
		if err := s.auditLog.Append(ctx, entry); err != nil {
			logger.Error("failed to append audit entry", err)
		}
	}
	return target, nil
}

func (s *userService) recordAudit(ctx context.Context, u *user.User, action audit.Action, details map[string]interface{}) {
	entry := audit.Entry{
		LogID:        uuid.New().String(),
		UserID:       u.UserID,
		UserName:     u.Name,
		UserEmail:    u.Email,
		Action:       action,
		ContentType:  "user",
		ContentID:    u.UserID,
		ContentTitle: u.Name,
		Details:      details,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.auditLog.Append(ctx, entry); err != nil {
		logger.Error("failed to append audit entry", err)
	}
}
