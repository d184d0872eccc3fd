package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"defense-hub/internal/dto"
	"defense-hub/internal/service"
	"defense-hub/pkg/response"
)

// DefenseHandler 答辩模块 HTTP 处理器
type DefenseHandler struct {
	defenseSvc service.DefenseService
}

// NewDefenseHandler 创建 DefenseHandler
func NewDefenseHandler(defenseSvc service.DefenseService) *DefenseHandler {
	return &DefenseHandler{defenseSvc: defenseSvc}
}

// CreateSession 创建答辩场次
// POST /api/v1/defenses
func (h *DefenseHandler) CreateSession(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "参数校验失败")
		return
	}

	result, err := h.defenseSvc.CreateSession(c.Request.Context(), &req)
	if err != nil {
		h.handleDefenseError(c, err)
		return
	}

	response.Created(c, result)
}

// GetSession 获取单个答辩场次
// GET /api/v1/defenses/:id
func (h *DefenseHandler) GetSession(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "场次ID不能为空")
		return
	}

	result, err := h.defenseSvc.GetSession(c.Request.Context(), id)
	if err != nil {
		h.handleDefenseError(c, err)
		return
	}

	response.OK(c, result)
}

// ListAll 列出全部答辩场次
// GET /api/v1/defenses
func (h *DefenseHandler) ListAll(c *gin.Context) {
	items, err := h.defenseSvc.ListAll(c.Request.Context())
	if err != nil {
		h.handleDefenseError(c, err)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// AddSlot 向场次添加答辩时段
// POST /api/v1/defenses/:id/slots
func (h *DefenseHandler) AddSlot(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		response.BadRequest(c, 12001, "场次ID不能为空")
		return
	}

	var req dto.AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "参数校验失败")
		return
	}

	result, err := h.defenseSvc.AddSlot(c.Request.Context(), sessionID, &req)
	if err != nil {
		h.handleDefenseError(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateSlot 修改答辩时段
// PUT /api/v1/defenses/slots/:id
func (h *DefenseHandler) UpdateSlot(c *gin.Context) {
	slotID := c.Param("id")
	if slotID == "" {
		response.BadRequest(c, 12001, "时段ID不能为空")
		return
	}

	var req dto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 12001, "参数校验失败")
		return
	}

	result, err := h.defenseSvc.UpdateSlot(c.Request.Context(), slotID, &req)
	if err != nil {
		h.handleDefenseError(c, err)
		return
	}

	response.OK(c, result)
}

// GetSessionSlots 列出场次下的全部时段
// GET /api/v1/defenses/:id/slots
func (h *DefenseHandler) GetSessionSlots(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		response.BadRequest(c, 12001, "场次ID不能为空")
		return
	}

	items, err := h.defenseSvc.GetSessionSlots(c.Request.Context(), sessionID)
	if err != nil {
		h.handleDefenseError(c, err)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// ListSessionsForStudent 学生可见的场次列表
// GET /api/v1/defenses/student/:id
// :id 既可以是学生档案 id，也可以是其账号 id
func (h *DefenseHandler) ListSessionsForStudent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "学生ID不能为空")
		return
	}

	items, err := h.defenseSvc.ListSessionsForStudent(c.Request.Context(), id)
	if err != nil {
		h.handleDefenseError(c, err)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// ListSlotsForStudent 学生视角的时段列表
// GET /api/v1/defenses/student/:id/slots
func (h *DefenseHandler) ListSlotsForStudent(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "学生ID不能为空")
		return
	}

	items, err := h.defenseSvc.ListSlotsForStudent(c.Request.Context(), id)
	if err != nil {
		h.handleDefenseError(c, err)
		return
	}

	response.OK(c, gin.H{"list": items})
}

// ListSessionsForReviewer 导师的场次列表
// GET /api/v1/defenses/reviewer/:id
func (h *DefenseHandler) ListSessionsForReviewer(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 12001, "导师ID不能为空")
		return
	}

	items, err := h.defenseSvc.ListSessionsForReviewer(c.Request.Context(), id)
	if err != nil {
		h.handleDefenseError(c, err)
		return
	}

	response.OK(c, gin.H{"list": items})
}

func (h *DefenseHandler) handleDefenseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDefenseDate):
		response.BadRequest(c, 12002, "答辩日期格式无效，应为 YYYY-MM-DD")
	case errors.Is(err, service.ErrStudentRequired):
		response.BadRequest(c, 12003, "答辩时段必须指定学生")
	case errors.Is(err, service.ErrSessionNotFound):
		response.NotFound(c, 12101, "答辩场次不存在")
	case errors.Is(err, service.ErrSlotNotFound):
		response.NotFound(c, 12102, "答辩时段不存在")
	case errors.Is(err, service.ErrReviewerNotFound):
		response.NotFound(c, 12103, "评审导师档案不存在")
	case errors.Is(err, service.ErrStudentNotFound):
		response.NotFound(c, 12104, "学生档案不存在")
	case errors.Is(err, service.ErrReferenceNotFound):
		response.NotFound(c, 12105, "引用的系部/班级组/学年不存在")
	case errors.Is(err, service.ErrSessionVanished):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/defense_handler.go
