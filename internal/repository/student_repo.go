package repository

import (
	"context"

	"gorm.io/gorm"

	"defense-hub/internal/model"
)

// StudentRepository 学生档案数据访问接口
//
// GetByAccountID 是歧义 ID 解析的第二查找路径：
// 调用方传来的 id 可能是档案主键，也可能是其归属账号的 id。
type StudentRepository interface {
	GetByID(ctx context.Context, id string) (*model.Student, error)
	GetByAccountID(ctx context.Context, accountID string) (*model.Student, error)
}

type studentRepo struct {
	db *gorm.DB
}

func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) GetByID(ctx context.Context, id string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("ClassGroup").
		Preload("AcademicYear").
		Where("student_id = ?", id).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *studentRepo) GetByAccountID(ctx context.Context, accountID string) (*model.Student, error) {
	var student model.Student
	err := r.db.WithContext(ctx).
		Preload("Department").
		Preload("ClassGroup").
		Preload("AcademicYear").
		Where("account_id = ?", accountID).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

