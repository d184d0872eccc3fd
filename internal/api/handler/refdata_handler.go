package handler

import (
	"github.com/gin-gonic/gin"

	"defense-hub/internal/service"
	"defense-hub/pkg/response"
)

// RefDataHandler 基础数据 HTTP 处理器
type RefDataHandler struct {
	refSvc service.RefDataService
}

// NewRefDataHandler 创建 RefDataHandler
func NewRefDataHandler(refSvc service.RefDataService) *RefDataHandler {
	return &RefDataHandler{refSvc: refSvc}
}

// ListDepartments 获取系部列表
// GET /api/v1/departments
func (h *RefDataHandler) ListDepartments(c *gin.Context) {
	depts, err := h.refSvc.ListDepartments(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": depts})
}

// ListClassGroups 获取班级组列表
// GET /api/v1/class-groups
func (h *RefDataHandler) ListClassGroups(c *gin.Context) {
	groups, err := h.refSvc.ListClassGroups(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": groups})
}

// ListAcademicYears 获取学年列表
// GET /api/v1/academic-years
func (h *RefDataHandler) ListAcademicYears(c *gin.Context) {
	years, err := h.refSvc.ListAcademicYears(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": years})
}
