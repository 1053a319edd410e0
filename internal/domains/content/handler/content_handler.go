package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gogarvis-backend/internal/domains/content"
	"gogarvis-backend/internal/shared/middleware"
	"gogarvis-backend/internal/shared/response"
)

// Handler phục vụ cả 5 content kinds. Kind được bind lúc đăng ký route,
// DTO decode theo kind trong bindCreate/bindUpdate.
type Handler struct {
	service content.Service
}

func NewHandler(service content.Service) *Handler {
	return &Handler{service: service}
}

// List - GET /:kind
// Query params: category, search, limit, offset
func (h *Handler) List(kind content.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := content.ListFilter{
			Category: c.Query("category"),
			Search:   c.Query("search"),
		}
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
				filter.Limit = n
			}
		}
		if v := c.Query("offset"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 {
				filter.Offset = n
			}
		}

		items, err := h.service.List(c.Request.Context(), kind, filter)
		if err != nil {
			h.handleError(c, err)
			return
		}

		// Operators list kèm canonical/user counts - frontend hiển thị
		// banner "X canonical, Y user-defined".
		if kind == content.KindOperator {
			stats, err := h.service.OperatorStats(c.Request.Context())
			if err != nil {
				h.handleError(c, err)
				return
			}
			response.Success(c, http.StatusOK, gin.H{
				"items":           items,
				"canonical_count": stats.CanonicalCount,
				"user_count":      stats.UserCount,
			})
			return
		}

		if filter.Limit > 0 {
			response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
				Page:  filter.Offset/filter.Limit + 1,
				Limit: filter.Limit,
			})
			return
		}
		response.Success(c, http.StatusOK, items)
	}
}

// Get - GET /:kind/:id
func (h *Handler) Get(kind content.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := h.service.Get(c.Request.Context(), kind, c.Param("id"))
		if err != nil {
			h.handleError(c, err)
			return
		}
		response.Success(c, http.StatusOK, item)
	}
}

// Create - POST /:kind (editor+)
func (h *Handler) Create(kind content.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := bindCreate(c, kind)
		if err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
		if err := payload.Validate(); err != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
			return
		}

		item, err := h.service.Create(c.Request.Context(), middleware.CurrentUser(c), kind, payload)
		if err != nil {
			h.handleError(c, err)
			return
		}
		response.Success(c, http.StatusCreated, item)
	}
}

// Update - PUT /:kind/:id (editor+, canonical guard áp dụng)
func (h *Handler) Update(kind content.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := bindUpdate(c, kind)
		if err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
		if err := payload.Validate(); err != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
			return
		}

		item, err := h.service.Update(c.Request.Context(), middleware.CurrentUser(c), kind, c.Param("id"), payload)
		if err != nil {
			h.handleError(c, err)
			return
		}
		response.Success(c, http.StatusOK, item)
	}
}

// Delete - DELETE /:kind/:id (editor+, soft delete)
func (h *Handler) Delete(kind content.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.service.Delete(c.Request.Context(), middleware.CurrentUser(c), kind, c.Param("id")); err != nil {
			h.handleError(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"deleted": true})
	}
}

// Categories - GET /:kind/categories
func (h *Handler) Categories(kind content.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := h.service.Categories(c.Request.Context(), kind)
		if err != nil {
			h.handleError(c, err)
			return
		}
		response.Success(c, http.StatusOK, categories)
	}
}

// DashboardStats - GET /dashboard/stats
func (h *Handler) DashboardStats(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, content.ErrNotFound):
		response.NotFound(c, "Content not found")
	case errors.Is(err, content.ErrForbidden):
		response.Forbidden(c, err.Error())
	case errors.Is(err, content.ErrDuplicateTAID):
		response.Conflict(c, "An operator with this tai_d already exists")
	case errors.Is(err, content.ErrInvalidContentType):
		response.BadRequest(c, "Invalid content type")
	case errors.Is(err, content.ErrNoFields):
		response.BadRequest(c, "No fields to update")
	default:
		response.InternalServerError(c, "Internal server error")
	}
}

func bindCreate(c *gin.Context, kind content.Kind) (content.Payload, error) {
	switch kind {
	case content.KindDocument:
		var req content.CreateDocumentRequest
		err := c.ShouldBindJSON(&req)
		return req, err
	case content.KindGlossary:
		var req content.CreateGlossaryRequest
		err := c.ShouldBindJSON(&req)
		return req, err
	case content.KindComponent:
		var req content.CreateComponentRequest
		err := c.ShouldBindJSON(&req)
		return req, err
	case content.KindOperator:
		var req content.CreateOperatorRequest
		err := c.ShouldBindJSON(&req)
		return req, err
	case content.KindBrand:
		var req content.CreateBrandRequest
		err := c.ShouldBindJSON(&req)
		return req, err
	}
	return nil, content.ErrInvalidContentType
}

func bindUpdate(c *gin.Context, kind content.Kind) (content.Payload, error) {
	switch kind {
	case content.KindDocument:
		var req content.UpdateDocumentRequest
		err := c.ShouldBindJSON(&req)
		return req, err
	case content.KindGlossary:
		var req content.UpdateGlossaryRequest
		err := c.ShouldBindJSON(&req)
		return req, err
	case content.KindComponent:
		var req content.UpdateComponentRequest
		err := c.ShouldBindJSON(&req)
		return req, err
	case content.KindOperator:
		var req content.UpdateOperatorRequest
		err := c.ShouldBindJSON(&req)
		return req, err
	case content.KindBrand:
		var req content.UpdateBrandRequest
		err := c.ShouldBindJSON(&req)
		return req, err
	}
	return nil, content.ErrInvalidContentType
}
