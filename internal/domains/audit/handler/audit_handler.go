package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"gogarvis-backend/internal/domains/audit"
	"gogarvis-backend/internal/shared/response"
	"gogarvis-backend/pkg/logger"
)

type Handler struct {
	repo audit.Repository
}

func NewHandler(repo audit.Repository) *Handler {
	return &Handler{repo: repo}
}

// List - GET /audit-log (admin)
// Query params: content_type, user_id, limit
func (h *Handler) List(c *gin.Context) {
	filter := audit.Filter{
		ContentType: c.Query("content_type"),
		UserID:      c.Query("user_id"),
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 1000 {
			filter.Limit = n
		}
	}

	entries, err := h.repo.Query(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "Internal server error")
		return
	}
	response.Success(c, http.StatusOK, entries)
}

// Export - GET /audit-log/export (admin)
// Xuất audit trail ra file XLSX cho compliance review.
func (h *Handler) Export(c *gin.Context) {
	filter := audit.Filter{
		ContentType: c.Query("content_type"),
		UserID:      c.Query("user_id"),
		Limit:       1000,
	}

	entries, err := h.repo.Query(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "Internal server error")
		return
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Error("failed to close excel file", err)
		}
	}()

	const sheet = "Audit Log"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Timestamp", "User", "Email", "Action", "Content Type", "Content", "Content ID"}
	for i, head := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, head)
	}

	for row, e := range entries {
		values := []interface{}{
			e.Timestamp.Format(time.RFC3339),
			e.UserName,
			e.UserEmail,
			string(e.Action),
			e.ContentType,
			e.ContentTitle,
			e.ContentID,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("audit-log-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		logger.Error("failed to write excel export", err)
	}
}
