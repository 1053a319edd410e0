package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogarvis-backend/internal/domains/user"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type staticResolver struct {
	users map[string]*user.User // token -> user
}

func (r *staticResolver) ResolveSession(_ context.Context, token string) (*user.User, error) {
	u, ok := r.users[token]
	if !ok {
		return nil, user.ErrSessionExpired
	}
	return u, nil
}

func newRouter(resolver SessionResolver, gate gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{Auth(resolver)}
	if gate != nil {
		handlers = append(handlers, gate)
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/protected", handlers...)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testResolver() *staticResolver {
	return &staticResolver{users: map[string]*user.User{
		"t-admin":  {UserID: "user_a", Role: user.RoleAdmin},
		"t-editor": {UserID: "user_e", Role: user.RoleEditor},
		"t-viewer": {UserID: "user_v", Role: user.RoleViewer},
	}}
}

func TestAuth_MissingToken(t *testing.T) {
	r := newRouter(testResolver(), nil)
	w := doRequest(t, r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ExpiredSession(t *testing.T) {
	r := newRouter(testResolver(), nil)
	w := doRequest(t, r, "stale")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Session expired")
}

func TestAuth_CookieToken(t *testing.T) {
	r := newRouter(testResolver(), nil)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "t-viewer"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireEditor(t *testing.T) {
	r := newRouter(testResolver(), RequireEditor())

	assert.Equal(t, http.StatusForbidden, doRequest(t, r, "t-viewer").Code)
	assert.Equal(t, http.StatusOK, doRequest(t, r, "t-editor").Code)
	assert.Equal(t, http.StatusOK, doRequest(t, r, "t-admin").Code)
}

func TestRequireAdmin(t *testing.T) {
	r := newRouter(testResolver(), RequireAdmin())

	assert.Equal(t, http.StatusForbidden, doRequest(t, r, "t-viewer").Code)
	assert.Equal(t, http.StatusForbidden, doRequest(t, r, "t-editor").Code)
	assert.Equal(t, http.StatusOK, doRequest(t, r, "t-admin").Code)
}

func TestCurrentUser_WithoutAuth(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, CurrentUser(c))
}
