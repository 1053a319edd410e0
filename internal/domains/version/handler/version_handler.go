package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gogarvis-backend/internal/domains/content"
	"gogarvis-backend/internal/domains/version"
	"gogarvis-backend/internal/shared/middleware"
	"gogarvis-backend/internal/shared/response"
)

type Handler struct {
	versions version.Repository
	contents content.Service
}

func NewHandler(versions version.Repository, contents content.Service) *Handler {
	return &Handler{versions: versions, contents: contents}
}

// History - GET /versions/:type/:id
// Trả về snapshots newest-first, cap tại HistoryLimit.
func (h *Handler) History(c *gin.Context) {
	kind, ok := content.ParseKind(c.Param("type"))
	if !ok {
		response.BadRequest(c, "Invalid content type")
		return
	}

	snapshots, err := h.versions.History(c.Request.Context(), string(kind), c.Param("id"))
	if err != nil {
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, snapshots)
}

// Rollback - POST /versions/:type/:id/rollback/:version_id (editor+)
// Đi qua mutation orchestrator: guard chạy lại, 2 snapshots + 1 audit entry.
func (h *Handler) Rollback(c *gin.Context) {
	kind, ok := content.ParseKind(c.Param("type"))
	if !ok {
		response.BadRequest(c, "Invalid content type")
		return
	}

	item, err := h.contents.Rollback(
		c.Request.Context(),
		middleware.CurrentUser(c),
		kind,
		c.Param("id"),
		c.Param("version_id"),
	)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrNotFound):
			response.NotFound(c, "Version not found")
		case errors.Is(err, content.ErrForbidden):
			response.Forbidden(c, err.Error())
		default:
			response.InternalServerError(c, "Internal server error")
		}
		return
	}
	response.Success(c, http.StatusOK, item)
}
