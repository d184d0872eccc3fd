package repository

import (
	"context"

	"gorm.io/gorm"

	"defense-hub/internal/model"
)

// ReviewerRepository 评审导师档案数据访问接口
type ReviewerRepository interface {
	GetByID(ctx context.Context, id string) (*model.Reviewer, error)
	GetByAccountID(ctx context.Context, accountID string) (*model.Reviewer, error)
}

type reviewerRepo struct {
	db *gorm.DB
}

func NewReviewerRepo(db *gorm.DB) ReviewerRepository {
	return &reviewerRepo{db: db}
}

func (r *reviewerRepo) GetByID(ctx context.Context, id string) (*model.Reviewer, error) {
	var reviewer model.Reviewer
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("reviewer_id = ?", id).
		First(&reviewer).Error
	if err != nil {
		return nil, err
	}
	return &reviewer, nil
}

func (r *reviewerRepo) GetByAccountID(ctx context.Context, accountID string) (*model.Reviewer, error) {
	var reviewer model.Reviewer
	err := r.db.WithContext(ctx).
		Preload("Department").
		Where("account_id = ?", accountID).
		First(&reviewer).Error
	if err != nil {
		return nil, err
	}
	return &reviewer, nil
}
