package user

import "errors"

var (
	ErrNotFound         = errors.New("user not found")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidRole      = errors.New("invalid role")
	ErrSessionExpired   = errors.New("session expired")
	ErrProviderFailure  = errors.New("identity provider unavailable")
)
