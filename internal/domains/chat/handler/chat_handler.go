package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"gogarvis-backend/internal/domains/chat"
	"gogarvis-backend/internal/shared/middleware"
	"gogarvis-backend/internal/shared/response"
)

type Handler struct {
	service chat.Service
}

func NewHandler(service chat.Service) *Handler {
	return &Handler{service: service}
}

type chatRequest struct {
	Message string   `json:"message"`
	FileIDs []string `json:"file_ids"`
}

func (r chatRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Message, validation.Required, validation.Length(1, 10000)),
	)
}

// Chat - POST /chat
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	reply, err := h.service.Chat(c.Request.Context(), middleware.CurrentUser(c), req.Message, req.FileIDs)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reply)
}

// History - GET /chat/history
func (h *Handler) History(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	messages, err := h.service.History(c.Request.Context(), middleware.CurrentUser(c).UserID, limit)
	if err != nil {
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, messages)
}

// ClearSession - POST /chat/session/clear
// Reset rolling context; persisted history giữ nguyên.
func (h *Handler) ClearSession(c *gin.Context) {
	if err := h.service.ClearSession(c.Request.Context(), middleware.CurrentUser(c).UserID); err != nil {
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}

// UploadFile - POST /chat/files (multipart)
func (h *Handler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Missing file field")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Cannot read uploaded file")
		return
	}
	defer src.Close()

	f, err := h.service.UploadFile(c.Request.Context(), middleware.CurrentUser(c), chat.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      src,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, f)
}

// ListFiles - GET /chat/files
func (h *Handler) ListFiles(c *gin.Context) {
	files, err := h.service.ListFiles(c.Request.Context(), middleware.CurrentUser(c).UserID)
	if err != nil {
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, files)
}

// DeleteFile - DELETE /chat/files/:id
func (h *Handler) DeleteFile(c *gin.Context) {
	if err := h.service.DeleteFile(c.Request.Context(), middleware.CurrentUser(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrNotFound):
		response.NotFound(c, "File not found")
	case errors.Is(err, chat.ErrFileTooLarge):
		response.ErrorResponse(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "File exceeds maximum upload size")
	case errors.Is(err, chat.ErrUnsupportedFileType):
		response.BadRequest(c, err.Error())
	case errors.Is(err, chat.ErrAssistantFailure):
		response.ServiceUnavailable(c, "Assistant unavailable")
	default:
		response.InternalServerError(c, "Internal server error")
	}
}
