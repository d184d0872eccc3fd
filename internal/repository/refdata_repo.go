package repository

import (
	"context"

	"gorm.io/gorm"

	"defense-hub/internal/model"
)

// DepartmentRepository 系部数据访问接口
type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (*model.Department, error)
	List(ctx context.Context) ([]model.Department, error)
}

// ClassGroupRepository 班级组数据访问接口
type ClassGroupRepository interface {
	GetByID(ctx context.Context, id string) (*model.ClassGroup, error)
	List(ctx context.Context) ([]model.ClassGroup, error)
}

// AcademicYearRepository 学年数据访问接口
type AcademicYearRepository interface {
	GetByID(ctx context.Context, id string) (*model.AcademicYear, error)
	List(ctx context.Context) ([]model.AcademicYear, error)
}

// ── Department 实现 ──

type departmentRepo struct {
	db *gorm.DB
}

func NewDepartmentRepo(db *gorm.DB) DepartmentRepository {
	return &departmentRepo{db: db}
}

func (r *departmentRepo) GetByID(ctx context.Context, id string) (*model.Department, error) {
	var dept model.Department
	err := r.db.WithContext(ctx).Where("department_id = ?", id).First(&dept).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) List(ctx context.Context) ([]model.Department, error) {
	var depts []model.Department
	err := r.db.WithContext(ctx).Order("name ASC").Find(&depts).Error
	return depts, err
}

// ── ClassGroup 实现 ──

type classGroupRepo struct {
	db *gorm.DB
}

func NewClassGroupRepo(db *gorm.DB) ClassGroupRepository {
	return &classGroupRepo{db: db}
}

func (r *classGroupRepo) GetByID(ctx context.Context, id string) (*model.ClassGroup, error) {
	var cg model.ClassGroup
	err := r.db.WithContext(ctx).Where("class_group_id = ?", id).First(&cg).Error
	if err != nil {
		return nil, err
	}
	return &cg, nil
}

func (r *classGroupRepo) List(ctx context.Context) ([]model.ClassGroup, error) {
	var groups []model.ClassGroup
	err := r.db.WithContext(ctx).Order("name ASC").Find(&groups).Error
	return groups, err
}

// ── AcademicYear 实现 ──

type academicYearRepo struct {
	db *gorm.DB
}

func NewAcademicYearRepo(db *gorm.DB) AcademicYearRepository {
	return &academicYearRepo{db: db}
}

func (r *academicYearRepo) GetByID(ctx context.Context, id string) (*model.AcademicYear, error) {
	var year model.AcademicYear
	err := r.db.WithContext(ctx).Where("academic_year_id = ?", id).First(&year).Error
	if err != nil {
		return nil, err
	}
	return &year, nil
}

func (r *academicYearRepo) List(ctx context.Context) ([]model.AcademicYear, error) {
	var years []model.AcademicYear
	err := r.db.WithContext(ctx).Order("label DESC").Find(&years).Error
	return years, err
}

