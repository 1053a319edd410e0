package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gogarvis-backend/internal/domains/user"
)

// Provider exchange một opaque session id lấy user profile.
// Đây là external collaborator - backend không reimplement protocol,
// chỉ gọi HTTP và map kết quả.
type Provider interface {
	Exchange(ctx context.Context, sessionID string) (*user.Profile, error)
}

type httpProvider struct {
	url    string
	client *http.Client
}

func NewHTTPProvider(url string) Provider {
	return &httpProvider{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (p *httpProvider) Exchange(ctx context.Context, sessionID string) (*user.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build identity request: %w", err)
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned status %d", user.ErrNotAuthenticated, resp.StatusCode)
	}

	var profile user.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("%w: provider returned empty email", user.ErrNotAuthenticated)
	}
	return &profile, nil
}
