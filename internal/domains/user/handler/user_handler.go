package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"gogarvis-backend/internal/domains/user"
	"gogarvis-backend/internal/shared/middleware"
	"gogarvis-backend/internal/shared/response"
)

type Handler struct {
	service       user.Service
	cookieMaxAge  int
	secureCookies bool
}

func NewHandler(service user.Service, cookieMaxAge int, secureCookies bool) *Handler {
	return &Handler{
		service:       service,
		cookieMaxAge:  cookieMaxAge,
		secureCookies: secureCookies,
	}
}

type createSessionRequest struct {
	SessionID string `json:"session_id"`
}

func (r createSessionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SessionID, validation.Required),
	)
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

// CreateSession - POST /auth/session
// Exchange session_id từ identity provider lấy session token, set cookie.
func (h *Handler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	u, token, err := h.service.CreateSession(c.Request.Context(), req.SessionID)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotAuthenticated):
			response.Unauthorized(c, "Session exchange rejected")
		case errors.Is(err, user.ErrProviderFailure):
			response.ServiceUnavailable(c, "Identity provider unavailable")
		default:
			response.InternalServerError(c, "Internal server error")
		}
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("session_token", token, h.cookieMaxAge, "/", "", h.secureCookies, true)
	response.Success(c, http.StatusOK, gin.H{
		"user":          u,
		"session_token": token,
	})
}

// Me - GET /auth/me
func (h *Handler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, middleware.CurrentUser(c))
}

// Logout - POST /auth/logout
func (h *Handler) Logout(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if err := h.service.Logout(c.Request.Context(), u.UserID); err != nil {
		response.InternalServerError(c, "Internal server error")
		return
	}
	c.SetCookie("session_token", "", -1, "/", "", h.secureCookies, true)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

// ListUsers - GET /admin/users (admin)
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, users)
}

// UpdateRole - PUT /admin/users/:id/role (admin)
func (h *Handler) UpdateRole(c *gin.Context) {
	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateUserRole(
		c.Request.Context(),
		middleware.CurrentUser(c),
		c.Param("id"),
		user.Role(req.Role),
	)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidRole):
			response.BadRequest(c, err.Error())
		case errors.Is(err, user.ErrNotFound):
			response.NotFound(c, "User not found")
		default:
			response.InternalServerError(c, "Internal server error")
		}
		return
	}
	response.Success(c, http.StatusOK, updated)
}
