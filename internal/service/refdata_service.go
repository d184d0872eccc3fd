package service

import (
	"context"

	"go.uber.org/zap"

	"defense-hub/internal/dto"
	"defense-hub/internal/repository"
)

// RefDataService 基础数据查询接口
//
// 系部 / 班级组 / 学年在本系统里是只读字典，由导入脚本维护，
// 这里只为前端建场次表单提供下拉列表。
type RefDataService interface {
	// ListDepartments 列出全部系部
	ListDepartments(ctx context.Context) ([]dto.DepartmentBrief, error)
	// ListClassGroups 列出全部班级组
	ListClassGroups(ctx context.Context) ([]dto.ClassGroupBrief, error)
	// ListAcademicYears 列出全部学年
	ListAcademicYears(ctx context.Context) ([]dto.AcademicYearBrief, error)
}

type refDataService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewRefDataService 创建 RefDataService 实例
func NewRefDataService(repo *repository.Repository, logger *zap.Logger) RefDataService {
	return &refDataService{repo: repo, logger: logger}
}

func (s *refDataService) ListDepartments(ctx context.Context) ([]dto.DepartmentBrief, error) {
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("查询系部列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DepartmentBrief, 0, len(depts))
	for _, d := range depts {
		result = append(result, dto.DepartmentBrief{ID: d.DepartmentID, Name: d.Name})
	}
	return result, nil
}

func (s *refDataService) ListClassGroups(ctx context.Context) ([]dto.ClassGroupBrief, error) {
	groups, err := s.repo.ClassGroup.List(ctx)
	if err != nil {
		s.logger.Error("查询班级组列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ClassGroupBrief, 0, len(groups))
	for _, cg := range groups {
		result = append(result, dto.ClassGroupBrief{ID: cg.ClassGroupID, Name: cg.Name})
	}
	return result, nil
}

func (s *refDataService) ListAcademicYears(ctx context.Context) ([]dto.AcademicYearBrief, error) {
	years, err := s.repo.AcademicYear.List(ctx)
	if err != nil {
		s.logger.Error("查询学年列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AcademicYearBrief, 0, len(years))
	for _, ay := range years {
		result = append(result, dto.AcademicYearBrief{ID: ay.AcademicYearID, Label: ay.Label})
	}
	return result, nil
}
